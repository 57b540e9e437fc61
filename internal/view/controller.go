package view

import (
	"io"
	"log"

	"github.com/Ashfaaq98/openday-console/internal/openday"
)

// Header is the event-level information shown above the listing.
type Header struct {
	CoverImage string
	Headline   string
	Dates      string
}

// Filters carries the selector options (each starting with openday.All) and
// the current selections.
type Filters struct {
	Locations    []string
	ProgramTypes []string
	Location     string
	ProgramType  string
}

// Card is one rendered program.
type Card struct {
	Title       string
	Description string
	StartTime   string
	EndTime     string
	Location    string
	Topic       string
}

// Surface is where the controller renders. Implementations own layout.
type Surface interface {
	SetHeader(Header)
	SetFilters(Filters)
	RenderCards([]Card)
	SetPagination(Pagination)
}

// Controller drives a Surface from the full event and the current State.
// It is not safe for concurrent use; call it from a single goroutine.
type Controller struct {
	event   *openday.Event
	state   State
	surface Surface
	logger  *log.Logger
}

// NewController creates a controller for ev.
func NewController(ev *openday.Event, surface Surface, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Controller{
		event:   ev,
		state:   NewState(ev),
		surface: surface,
		logger:  logger,
	}
}

// State returns the current view state.
func (c *Controller) State() State { return c.state }

// Event returns the full event the controller renders from.
func (c *Controller) Event() *openday.Event { return c.event }

// Start sets the header and selector options, then renders page 1.
func (c *Controller) Start() {
	c.surface.SetHeader(HeaderOf(c.event))
	c.surface.SetFilters(c.filters())
	c.Render()
}

// Render draws the current page and the pager.
func (c *Controller) Render() {
	visible := c.state.Visible()
	cards := make([]Card, 0, len(visible))
	for _, p := range visible {
		cards = append(cards, CardOf(p))
	}
	c.surface.RenderCards(cards)
	c.surface.SetPagination(c.state.Pagination())
}

// Next advances one page and re-renders. It reports whether the page changed.
func (c *Controller) Next() bool {
	next, ok := c.state.Next()
	if ok {
		c.state = next
		c.Render()
	}
	return ok
}

// Prev goes back one page and re-renders. It reports whether the page changed.
func (c *Controller) Prev() bool {
	prev, ok := c.state.Prev()
	if ok {
		c.state = prev
		c.Render()
	}
	return ok
}

// SetOrder re-sorts by order and re-renders from page 1.
func (c *Controller) SetOrder(order openday.SortOrder) {
	c.state = c.state.WithOrder(c.event, order)
	c.logger.Printf("sort=%s programs=%d", order, c.state.Total())
	c.Render()
}

// SetLocation filters by location and re-renders from page 1.
func (c *Controller) SetLocation(location string) {
	c.state = c.state.WithLocation(c.event, location)
	c.logger.Printf("location=%q programs=%d", location, c.state.Total())
	c.Render()
}

// SetProgramType filters by program type and re-renders from page 1.
func (c *Controller) SetProgramType(programType string) {
	c.state = c.state.WithProgramType(c.event, programType)
	c.logger.Printf("type=%q programs=%d", programType, c.state.Total())
	c.Render()
}

// Reload swaps in a new event. Selections that no longer exist fall back to
// openday.All; the list is recomputed and shown from page 1.
func (c *Controller) Reload(ev *openday.Event) {
	c.event = ev
	if !contains(openday.Locations(ev.Topics), c.state.Location) {
		c.state.Location = openday.All
	}
	if !contains(openday.ProgramTypes(ev.Topics), c.state.ProgramType) {
		c.state.ProgramType = openday.All
	}
	c.state = c.state.recompute(ev)
	c.logger.Printf("reloaded: programs=%d", c.state.Total())
	c.Start()
}

func (c *Controller) filters() Filters {
	return Filters{
		Locations:    openday.WithAll(openday.Locations(c.event.Topics)),
		ProgramTypes: openday.WithAll(openday.ProgramTypes(c.event.Topics)),
		Location:     c.state.Location,
		ProgramType:  c.state.ProgramType,
	}
}

// HeaderOf builds the header for ev; dates are passed through verbatim.
func HeaderOf(ev *openday.Event) Header {
	return Header{
		CoverImage: ev.CoverImage,
		Headline:   ev.Description,
		Dates:      ev.DateRange(),
	}
}

// CardOf builds the card for p.
func CardOf(p openday.Program) Card {
	return Card{
		Title:       p.Title,
		Description: p.Description,
		StartTime:   p.StartTime,
		EndTime:     p.EndTime,
		Location:    p.Location.Title,
		Topic:       p.TopicTitle,
	}
}

func contains(values []string, v string) bool {
	if v == openday.All {
		return true
	}
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
