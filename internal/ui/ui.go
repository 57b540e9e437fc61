package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Ashfaaq98/openday-console/internal/loader"
	"github.com/Ashfaaq98/openday-console/internal/openday"
	"github.com/Ashfaaq98/openday-console/internal/view"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// DocumentLoader loads the event document. Reload skips any cached copy.
type DocumentLoader interface {
	Load(ctx context.Context) (*openday.Event, error)
	Reload(ctx context.Context) (*openday.Event, error)
}

// sortOptions maps sort selector entries to sort orders.
var sortOptions = []struct {
	label string
	order openday.SortOrder
}{
	{"Earliest first", openday.OrderEarliest},
	{"Latest first", openday.OrderLatest},
}

// UI represents the terminal user interface. It implements view.Surface.
type UI struct {
	app        *tview.Application
	loader     DocumentLoader
	controller *view.Controller
	logger     *log.Logger

	// Layout components, one per named region of the page
	header            *tview.TextView
	locationSelect    *tview.DropDown
	programTypeSelect *tview.DropDown
	sortSelect        *tview.DropDown
	eventsContainer   *tview.Flex
	pageLabel         *tview.TextView
	prevButton        *tview.Button
	nextButton        *tview.Button
	statusBar         *tview.TextView

	focusOrder    []tview.Primitive
	focusedSelect *tview.DropDown

	// State
	prevDisabled bool
	nextDisabled bool
	unavailable  bool
	lastHeader   view.Header
	lastCards    []view.Card

	// Theme state
	theme        Theme
	themeName    string
	hasTrueColor bool

	ctx    context.Context
	cancel context.CancelFunc
}

var _ view.Surface = (*UI)(nil)

// Options configures the terminal UI.
type Options struct {
	Theme  string
	Logger *log.Logger
}

// NewUI creates a new terminal user interface
func NewUI(ctx context.Context, l DocumentLoader, opts Options) (*UI, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(log.Writer(), "[UI] ", log.LstdFlags)
	}

	theme, err := ThemeByName(opts.Theme)
	if err != nil {
		return nil, err
	}
	themeName := opts.Theme
	if themeName == "" {
		themeName = "dark"
	}

	uiCtx, cancel := context.WithCancel(ctx)
	ui := &UI{
		app:          tview.NewApplication(),
		loader:       l,
		logger:       logger,
		theme:        theme,
		themeName:    themeName,
		hasTrueColor: detectTrueColor(),
		ctx:          uiCtx,
		cancel:       cancel,
	}

	ui.setupLayout()
	ui.setupKeybindings()
	ui.applyTheme()

	return ui, nil
}

// Start loads the event document in the background and runs the TUI until
// it is stopped or ctx is cancelled.
func (ui *UI) Start(ctx context.Context) error {
	ui.logger.Printf("Starting TUI application (truecolor=%v, theme=%s)", ui.hasTrueColor, ui.themeName)
	ui.setStatusDirect("[%s]Loading event data...[-]", ui.theme.TagWarning)

	go ui.load(ui.loader.Load)

	go func() {
		select {
		case <-ctx.Done():
			ui.logger.Println("External context cancelled, stopping TUI")
		case <-ui.ctx.Done():
		}
		ui.cancel()
		ui.app.Stop()
	}()

	err := ui.app.Run()
	ui.logger.Printf("app.Run() returned with error: %v", err)
	return err
}

// Stop stops the TUI application
func (ui *UI) Stop() {
	ui.logger.Println("Stopping TUI application")
	ui.cancel()
	ui.app.Stop()
}

// ApplyReload hands a reloaded event to the UI goroutine. Safe to call from
// any goroutine.
func (ui *UI) ApplyReload(ev *openday.Event) {
	ui.app.QueueUpdateDraw(func() { ui.show(ev) })
}

// ApplyError reports a failed reload on the UI goroutine. Safe to call from
// any goroutine.
func (ui *UI) ApplyError(err error) {
	ui.app.QueueUpdateDraw(func() {
		if ui.controller == nil {
			ui.showUnavailable(err)
			return
		}
		ui.setStatusDirect("[%s]Reload failed: %s[-]", ui.theme.TagError, tview.Escape(err.Error()))
	})
}

func (ui *UI) load(fetch func(context.Context) (*openday.Event, error)) {
	ev, err := fetch(ui.ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		ui.ApplyError(err)
		return
	}
	ui.ApplyReload(ev)
}

// show renders ev, creating the controller on first use. UI goroutine only.
func (ui *UI) show(ev *openday.Event) {
	ui.unavailable = false
	if ui.controller == nil {
		ui.controller = view.NewController(ev, ui, ui.logger)
		ui.controller.Start()
		ui.app.SetFocus(ui.locationSelect)
		ui.setStatusDirect("[%s]Loaded %d programs[-]", ui.theme.TagSuccess, ev.ProgramCount())
		return
	}
	ui.controller.Reload(ev)
	ui.setStatusDirect("[%s]Reloaded %d programs[-]", ui.theme.TagSuccess, ev.ProgramCount())
}

// showUnavailable replaces the page with a data-unavailable notice.
func (ui *UI) showUnavailable(err error) {
	ui.unavailable = true
	title := "Could not load event data"
	if errors.Is(err, loader.ErrUnavailable) {
		title = "Event data unavailable"
	}
	ui.header.SetText(fmt.Sprintf("[%s::b]%s[-::-]\n[%s]%s[-]",
		ui.theme.TagError, title, ui.theme.TagMuted, tview.Escape(err.Error())))
	ui.eventsContainer.Clear()
	ui.pageLabel.SetText("")
	ui.setButtons(true, true)
	ui.setStatusDirect("[%s]Could not load event data. Press r to retry, q to quit.[-]", ui.theme.TagError)
}

// setupLayout creates the main layout
func (ui *UI) setupLayout() {
	ui.header = tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	ui.header.SetBorder(true)
	ui.header.SetTitle(" Open Day ")
	ui.header.SetTitleAlign(tview.AlignLeft)

	ui.locationSelect = tview.NewDropDown().SetLabel("Location: ")
	ui.programTypeSelect = tview.NewDropDown().SetLabel("Type: ")
	ui.sortSelect = tview.NewDropDown().SetLabel("Sort: ")

	labels := make([]string, 0, len(sortOptions))
	for _, o := range sortOptions {
		labels = append(labels, o.label)
	}
	ui.sortSelect.SetOptions(labels, nil)
	ui.sortSelect.SetCurrentOption(0)
	ui.sortSelect.SetSelectedFunc(ui.onSortSelected)

	for _, d := range []*tview.DropDown{ui.locationSelect, ui.programTypeSelect, ui.sortSelect} {
		d := d
		d.SetFocusFunc(func() {
			ui.focusedSelect = d
			ui.styleSelect(d)
		})
		d.SetBlurFunc(func() {
			if ui.focusedSelect == d {
				ui.focusedSelect = nil
			}
			ui.styleSelect(d)
		})
	}

	controls := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(ui.locationSelect, 0, 1, true).
		AddItem(ui.programTypeSelect, 0, 1, false).
		AddItem(ui.sortSelect, 0, 1, false)

	ui.eventsContainer = tview.NewFlex().SetDirection(tview.FlexRow)
	ui.eventsContainer.SetBorder(true)
	ui.eventsContainer.SetTitle(" Programs ")
	ui.eventsContainer.SetTitleAlign(tview.AlignLeft)

	ui.prevButton = tview.NewButton("< Prev").SetSelectedFunc(ui.onPrev)
	ui.nextButton = tview.NewButton("Next >").SetSelectedFunc(ui.onNext)
	ui.pageLabel = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	pager := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(ui.prevButton, 10, 0, false).
		AddItem(ui.pageLabel, 0, 1, false).
		AddItem(ui.nextButton, 10, 0, false)

	ui.statusBar = tview.NewTextView().SetDynamicColors(true)

	root := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(ui.header, 5, 0, false).
		AddItem(controls, 1, 0, true).
		AddItem(ui.eventsContainer, 0, 1, false).
		AddItem(pager, 1, 0, false).
		AddItem(ui.statusBar, 1, 0, false)

	ui.focusOrder = []tview.Primitive{
		ui.locationSelect,
		ui.programTypeSelect,
		ui.sortSelect,
		ui.prevButton,
		ui.nextButton,
	}

	ui.setButtons(true, true)
	ui.app.SetRoot(root, true)
	ui.app.SetFocus(ui.locationSelect)
}

// setupKeybindings sets up global keybindings
func (ui *UI) setupKeybindings() {
	ui.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// An open drop-down list owns the keyboard
		if _, ok := ui.app.GetFocus().(*tview.List); ok {
			return event
		}

		switch event.Key() {
		case tcell.KeyCtrlC:
			ui.Stop()
			return nil
		case tcell.KeyTab:
			ui.cycleFocus(1)
			return nil
		case tcell.KeyBacktab:
			ui.cycleFocus(-1)
			return nil
		case tcell.KeyEsc:
			ui.setStatusDirect("[%s]Ready[-]", ui.theme.TagAccent)
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				ui.Stop()
				return nil
			case 'n':
				ui.onNext()
				return nil
			case 'p':
				ui.onPrev()
				return nil
			case 't':
				ui.cycleTheme()
				return nil
			case 'r', 'R':
				ui.setStatusDirect("[%s]Reloading...[-]", ui.theme.TagAccent)
				go ui.load(ui.loader.Reload)
				return nil
			}
		}
		return event
	})
}

func (ui *UI) cycleFocus(step int) {
	current := ui.app.GetFocus()
	idx := 0
	for i, p := range ui.focusOrder {
		if p == current {
			idx = (i + step + len(ui.focusOrder)) % len(ui.focusOrder)
			break
		}
	}
	ui.app.SetFocus(ui.focusOrder[idx])
}

func (ui *UI) onPrev() {
	if ui.controller == nil || ui.prevDisabled {
		return
	}
	ui.controller.Prev()
}

func (ui *UI) onNext() {
	if ui.controller == nil || ui.nextDisabled {
		return
	}
	ui.controller.Next()
}

func (ui *UI) onLocationSelected(text string, _ int) {
	if ui.controller == nil || text == ui.controller.State().Location {
		return
	}
	ui.controller.SetLocation(text)
}

func (ui *UI) onProgramTypeSelected(text string, _ int) {
	if ui.controller == nil || text == ui.controller.State().ProgramType {
		return
	}
	ui.controller.SetProgramType(text)
}

func (ui *UI) onSortSelected(_ string, index int) {
	if ui.controller == nil || index < 0 || index >= len(sortOptions) {
		return
	}
	order := sortOptions[index].order
	if order == ui.controller.State().Order {
		return
	}
	ui.controller.SetOrder(order)
}

// SetHeader shows the cover image, headline and dates.
func (ui *UI) SetHeader(h view.Header) {
	ui.lastHeader = h
	ui.header.SetText(fmt.Sprintf("[%s]Cover:[-] %s\n[%s::b]%s[-::-]\n[%s]%s[-]",
		ui.theme.TagMuted, tview.Escape(h.CoverImage),
		ui.theme.TagHeader, tview.Escape(h.Headline),
		ui.theme.TagAccent, tview.Escape(h.Dates)))
}

// SetFilters fills the location and program type selectors.
func (ui *UI) SetFilters(f view.Filters) {
	fill(ui.locationSelect, f.Locations, f.Location, ui.onLocationSelected)
	fill(ui.programTypeSelect, f.ProgramTypes, f.ProgramType, ui.onProgramTypeSelected)
}

// fill replaces the options of d without firing its selection handler.
func fill(d *tview.DropDown, options []string, selected string, handler func(string, int)) {
	d.SetOptions(options, nil)
	for i, o := range options {
		if o == selected {
			d.SetCurrentOption(i)
			break
		}
	}
	d.SetSelectedFunc(handler)
}

// RenderCards replaces the events container content.
func (ui *UI) RenderCards(cards []view.Card) {
	ui.lastCards = cards
	ui.eventsContainer.Clear()
	if len(cards) == 0 {
		empty := tview.NewTextView().
			SetDynamicColors(true).
			SetText(fmt.Sprintf("[%s]No programs match the selected filters.[-]", ui.theme.TagMuted))
		empty.SetBackgroundColor(ui.theme.Surface)
		ui.eventsContainer.AddItem(empty, 0, 1, false)
		return
	}
	for _, c := range cards {
		ui.eventsContainer.AddItem(ui.newCard(c), 6, 0, false)
	}
}

func (ui *UI) newCard(c view.Card) *tview.TextView {
	card := tview.NewTextView().SetDynamicColors(true)
	card.SetBorder(true)
	card.SetTitle(" " + tview.Escape(c.Title) + " ")
	card.SetTitleAlign(tview.AlignLeft)
	card.SetTitleColor(ui.theme.Header)
	card.SetBorderColor(ui.theme.Border)
	card.SetBackgroundColor(ui.theme.Surface)
	card.SetTextColor(ui.theme.TextPrimary)

	muted := ui.theme.TagMuted
	text := fmt.Sprintf("[%s]Description:[-] %s\n[%s]Start Time:[-] %s  [%s]End Time:[-] %s\n[%s]Location:[-] %s",
		muted, tview.Escape(c.Description),
		muted, tview.Escape(c.StartTime), muted, tview.Escape(c.EndTime),
		muted, tview.Escape(c.Location))
	if c.Topic != "" {
		text += fmt.Sprintf("  [%s]Topic:[-] %s", muted, tview.Escape(c.Topic))
	}
	card.SetText(text)
	return card
}

// SetPagination updates the pager label and buttons.
func (ui *UI) SetPagination(p view.Pagination) {
	ui.pageLabel.SetText(p.Label())
	ui.setButtons(p.PrevDisabled, p.NextDisabled)
}

func (ui *UI) setButtons(prevDisabled, nextDisabled bool) {
	ui.prevDisabled = prevDisabled
	ui.nextDisabled = nextDisabled
	ui.styleButton(ui.prevButton, prevDisabled)
	ui.styleButton(ui.nextButton, nextDisabled)
}

// styleSelect highlights the label of the focused selector.
func (ui *UI) styleSelect(d *tview.DropDown) {
	if d == ui.focusedSelect {
		d.SetLabelColor(ui.theme.FocusBorder)
		return
	}
	d.SetLabelColor(ui.theme.Accent)
}

func (ui *UI) styleButton(b *tview.Button, disabled bool) {
	b.SetBackgroundColor(ui.theme.FieldBg)
	b.SetBackgroundColorActivated(ui.theme.FocusBorder)
	b.SetLabelColorActivated(ui.theme.Surface)
	if disabled {
		b.SetLabelColor(ui.theme.TextMuted)
		return
	}
	b.SetLabelColor(ui.theme.Accent)
}

// setStatusDirect updates the status bar immediately.
// Use this only from the UI goroutine.
func (ui *UI) setStatusDirect(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("15:04:05")
	ui.statusBar.SetText(fmt.Sprintf("[%s]%s[-] | %s [%s]| Tab:navigate n/p:page t:theme r:reload q:quit[-]",
		ui.theme.TagMuted, timestamp, message, ui.theme.TagMuted))
}

// applyTheme pushes theme colors to widgets
func (ui *UI) applyTheme() {
	ui.logger.Printf("Applying theme: %s", ui.themeName)

	ui.header.SetBackgroundColor(ui.theme.Surface)
	ui.header.SetBorderColor(ui.theme.Border)
	ui.header.SetTitleColor(ui.theme.Header)
	ui.header.SetTextColor(ui.theme.TextPrimary)

	for _, d := range []*tview.DropDown{ui.locationSelect, ui.programTypeSelect, ui.sortSelect} {
		d.SetBackgroundColor(ui.theme.Surface)
		ui.styleSelect(d)
		d.SetFieldBackgroundColor(ui.theme.FieldBg)
		d.SetFieldTextColor(ui.theme.TextPrimary)
	}

	ui.eventsContainer.SetBackgroundColor(ui.theme.Surface)
	ui.eventsContainer.SetBorderColor(ui.theme.Border)
	ui.eventsContainer.SetTitleColor(ui.theme.Header)

	ui.pageLabel.SetBackgroundColor(ui.theme.Surface)
	ui.pageLabel.SetTextColor(ui.theme.TextPrimary)
	ui.setButtons(ui.prevDisabled, ui.nextDisabled)

	ui.statusBar.SetBackgroundColor(ui.theme.Surface)
	ui.statusBar.SetTextColor(ui.theme.TextPrimary)

	// Re-render markup that embeds color tags
	if ui.controller != nil && !ui.unavailable {
		ui.SetHeader(ui.lastHeader)
		ui.RenderCards(ui.lastCards)
	}
}

// cycleTheme moves to the next theme in sequence
func (ui *UI) cycleTheme() {
	ui.setTheme(nextThemeName(ui.themeName))
}

// setTheme applies a named theme
func (ui *UI) setTheme(name string) {
	theme, err := ThemeByName(name)
	if err != nil {
		ui.logger.Printf("setTheme: %v", err)
		return
	}
	ui.themeName = name
	ui.theme = theme
	ui.applyTheme()
	ui.setStatusDirect("[%s]Theme: %s[-]", ui.theme.TagAccent, name)
}

// IsUnavailable reports whether the last load failed before any data was shown.
func (ui *UI) IsUnavailable() bool { return ui.unavailable }
