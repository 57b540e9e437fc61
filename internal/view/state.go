package view

import (
	"fmt"

	"github.com/Ashfaaq98/openday-console/internal/openday"
)

// PageSize is the fixed number of programs shown per page.
const PageSize = 5

// State is the view state of the program listing. Methods return updated
// copies; the zero value is not meaningful, use NewState.
type State struct {
	Page        int
	Location    string
	ProgramType string
	Order       openday.SortOrder
	Working     []openday.Program
}

// NewState returns the startup state: page 1, no filters, earliest-first
// selected, and the programs in document order.
func NewState(ev *openday.Event) State {
	return State{
		Page:        1,
		Location:    openday.All,
		ProgramType: openday.All,
		Order:       openday.OrderEarliest,
		Working:     openday.Flatten(ev.Topics),
	}
}

// Derive recomputes the working list from the full event.
func Derive(ev *openday.Event, location, programType string, order openday.SortOrder) []openday.Program {
	filtered := openday.Filter(openday.Flatten(ev.Topics), location, programType)
	return openday.Sort(filtered, order)
}

// Total is the length of the working list.
func (s State) Total() int { return len(s.Working) }

// TotalPages is ceil(Total / PageSize); zero for an empty list.
func (s State) TotalPages() int {
	return (s.Total() + PageSize - 1) / PageSize
}

// Visible returns the programs on the current page.
func (s State) Visible() []openday.Program {
	start := (s.Page - 1) * PageSize
	if start < 0 || start >= len(s.Working) {
		return nil
	}
	end := start + PageSize
	if end > len(s.Working) {
		end = len(s.Working)
	}
	return s.Working[start:end]
}

// CanPrev reports whether a previous page exists.
func (s State) CanPrev() bool { return s.Page > 1 }

// CanNext reports whether a next page exists.
func (s State) CanNext() bool { return s.Page < s.TotalPages() }

// Next moves forward one page if possible.
func (s State) Next() (State, bool) {
	if !s.CanNext() {
		return s, false
	}
	s.Page++
	return s, true
}

// Prev moves back one page if possible.
func (s State) Prev() (State, bool) {
	if !s.CanPrev() {
		return s, false
	}
	s.Page--
	return s, true
}

// WithOrder applies a new sort order and returns to page 1.
func (s State) WithOrder(ev *openday.Event, order openday.SortOrder) State {
	s.Order = order
	return s.recompute(ev)
}

// WithLocation applies a location filter and returns to page 1.
func (s State) WithLocation(ev *openday.Event, location string) State {
	s.Location = location
	return s.recompute(ev)
}

// WithProgramType applies a program type filter and returns to page 1.
func (s State) WithProgramType(ev *openday.Event, programType string) State {
	s.ProgramType = programType
	return s.recompute(ev)
}

func (s State) recompute(ev *openday.Event) State {
	s.Page = 1
	s.Working = Derive(ev, s.Location, s.ProgramType, s.Order)
	return s
}

// Pagination describes the pager controls.
type Pagination struct {
	Page         int
	TotalPages   int
	PrevDisabled bool
	NextDisabled bool
}

// Label is the pager text, e.g. "Page 1 of 2".
func (p Pagination) Label() string {
	return fmt.Sprintf("Page %d of %d", p.Page, p.TotalPages)
}

// Pagination returns the pager state for s.
func (s State) Pagination() Pagination {
	return Pagination{
		Page:         s.Page,
		TotalPages:   s.TotalPages(),
		PrevDisabled: !s.CanPrev(),
		NextDisabled: !s.CanNext(),
	}
}
