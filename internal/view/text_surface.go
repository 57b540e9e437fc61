package view

import (
	"fmt"
	"io"
	"strings"
)

// TextSurface records the latest render so it can be printed as plain text.
type TextSurface struct {
	header     Header
	filters    Filters
	cards      []Card
	pagination Pagination
}

// NewTextSurface creates an empty text surface.
func NewTextSurface() *TextSurface { return &TextSurface{} }

func (t *TextSurface) SetHeader(h Header)         { t.header = h }
func (t *TextSurface) SetFilters(f Filters)       { t.filters = f }
func (t *TextSurface) RenderCards(cards []Card)   { t.cards = cards }
func (t *TextSurface) SetPagination(p Pagination) { t.pagination = p }

// Cards returns the cards of the last render.
func (t *TextSurface) Cards() []Card { return t.cards }

// Pagination returns the pager of the last render.
func (t *TextSurface) Pagination() Pagination { return t.pagination }

// Print writes the last render to w.
func (t *TextSurface) Print(w io.Writer, showFilters bool) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", t.header.Headline)
	fmt.Fprintf(&b, "%s\n", t.header.Dates)
	if t.header.CoverImage != "" {
		fmt.Fprintf(&b, "Cover: %s\n", t.header.CoverImage)
	}
	b.WriteString("\n")

	if showFilters {
		fmt.Fprintf(&b, "Locations: %s\n", strings.Join(t.filters.Locations, ", "))
		fmt.Fprintf(&b, "Program types: %s\n\n", strings.Join(t.filters.ProgramTypes, ", "))
	}

	if len(t.cards) == 0 {
		b.WriteString("No programs found.\n\n")
	}
	for i, c := range t.cards {
		n := (t.pagination.Page-1)*PageSize + i + 1
		fmt.Fprintf(&b, "%d. %s\n", n, c.Title)
		if c.Topic != "" {
			fmt.Fprintf(&b, "   Topic: %s\n", c.Topic)
		}
		fmt.Fprintf(&b, "   Description: %s\n", c.Description)
		fmt.Fprintf(&b, "   Start Time: %s\n", c.StartTime)
		fmt.Fprintf(&b, "   End Time: %s\n", c.EndTime)
		fmt.Fprintf(&b, "   Location: %s\n\n", c.Location)
	}

	b.WriteString(t.pagination.Label())
	if !t.pagination.PrevDisabled {
		b.WriteString("  [prev]")
	}
	if !t.pagination.NextDisabled {
		b.WriteString("  [next]")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
