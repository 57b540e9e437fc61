package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Ashfaaq98/openday-console/internal/loader"
	"github.com/Ashfaaq98/openday-console/internal/ui"
	"github.com/spf13/cobra"
)

var (
	forceTUI    bool
	watchSource bool
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse programs in the terminal UI",
	Long: `Start the interactive terminal view of the event document.

Controls:
  Tab / Shift-Tab   move between the selectors and pager buttons
  Enter             open a selector or press a button
  n / p             next / previous page
  t                 cycle color theme
  r                 reload the document
  q, Ctrl-C         quit

With --watch, a local document is reloaded whenever it changes on disk.

Examples:
  openday browse
  openday browse --source ./OpenDay.json --watch
  openday browse --source https://example.org/OpenDay.json --theme light`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().BoolVar(&forceTUI, "force-tui", false, "Force TUI mode even in unsupported terminals")
	browseCmd.Flags().BoolVar(&watchSource, "watch", false, "Reload a local document when it changes")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	config := GetConfig()

	if !forceTUI && !canInitializeTUI() {
		fmt.Fprintf(os.Stderr, "Terminal UI unavailable (%s); printing the first page instead.\n", getTerminalInfo())
		return runList(cmd, args)
	}

	logger, logFile := newTUILogger(config, "[browse] ")
	if logFile != nil {
		defer logFile.Close()
	}
	logger.Printf("Starting openday browse (source=%s)", config.Source)

	l, c := newLoader(config, logger)
	defer c.Close()

	tui, err := ui.NewUI(ctx, l, ui.Options{Theme: config.UI.Theme, Logger: logger})
	if err != nil {
		return err
	}

	svcCtx, svcCancel := context.WithCancel(ctx)
	defer svcCancel()

	if watchSource {
		w, err := loader.NewWatcher(l, loader.WatchOptions{
			OnReload: tui.ApplyReload,
			OnError:  tui.ApplyError,
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", config.Source, err)
		}
		go func() {
			if err := w.Run(svcCtx); err != nil && err != context.Canceled {
				logger.Printf("watch failed: %v", err)
			}
		}()
	}

	if err := tui.Start(ctx); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	logger.Println("TUI exited")
	return nil
}
