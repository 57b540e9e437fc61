package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Ashfaaq98/openday-console/internal/openday"
	"github.com/Ashfaaq98/openday-console/internal/view"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of programs as plain text",
	Long: `Print programs from the event document in a simple text format.
This command works in any terminal environment and provides an alternative
to the TUI when terminal capabilities are limited or output is piped.

Examples:
  # First page in document order
  openday list

  # Programs in Hall A, latest first, second page
  openday list --location "Hall A" --sort latest --page 2

  # Show the available locations and program types
  openday list --show-filters`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listLocation    string
	listProgramType string
	listSort        string
	listPage        int
	listShowFilters bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listLocation, "location", openday.All, "Only programs at this location")
	listCmd.Flags().StringVar(&listProgramType, "type", openday.All, "Only programs of this type")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort by start time: earliest or latest (default: document order)")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page to show (5 programs per page)")
	listCmd.Flags().BoolVar(&listShowFilters, "show-filters", false, "Print available locations and program types")
}

// listOptions are the selections applied before printing.
type listOptions struct {
	Location    string
	ProgramType string
	Sort        string
	Page        int
	ShowFilters bool
}

func runList(cmd *cobra.Command, args []string) error {
	config := GetConfig()
	logger := newLogger(config, "[list] ", os.Stderr)

	l, c := newLoader(config, logger)
	defer c.Close()

	ev, err := l.Load(cmd.Context())
	if err != nil {
		return err
	}

	return renderList(cmd.OutOrStdout(), ev, listOptions{
		Location:    listLocation,
		ProgramType: listProgramType,
		Sort:        listSort,
		Page:        listPage,
		ShowFilters: listShowFilters,
	})
}

// renderList drives a controller with the given selections and prints the
// resulting page.
func renderList(w io.Writer, ev *openday.Event, opts listOptions) error {
	if opts.Page < 1 {
		return fmt.Errorf("invalid --page value %d: pages start at 1", opts.Page)
	}

	surface := view.NewTextSurface()
	controller := view.NewController(ev, surface, nil)
	controller.Start()

	if opts.Location != "" && opts.Location != openday.All {
		controller.SetLocation(opts.Location)
	}
	if opts.ProgramType != "" && opts.ProgramType != openday.All {
		controller.SetProgramType(opts.ProgramType)
	}
	switch openday.SortOrder(opts.Sort) {
	case "":
	case openday.OrderEarliest, openday.OrderLatest:
		controller.SetOrder(openday.SortOrder(opts.Sort))
	default:
		return fmt.Errorf("invalid --sort value %q (use earliest or latest)", opts.Sort)
	}

	for controller.State().Page < opts.Page {
		if !controller.Next() {
			return fmt.Errorf("page %d out of range: %d page(s) available", opts.Page, controller.State().TotalPages())
		}
	}

	return surface.Print(w, opts.ShowFilters)
}
