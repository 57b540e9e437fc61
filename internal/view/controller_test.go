package view

import (
	"bytes"
	"testing"

	"github.com/Ashfaaq98/openday-console/internal/openday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSurface captures every call made by the controller.
type recordingSurface struct {
	header      Header
	filters     Filters
	cards       []Card
	pagination  Pagination
	renders     int
	filterCalls int
}

func (r *recordingSurface) SetHeader(h Header)         { r.header = h }
func (r *recordingSurface) SetFilters(f Filters)       { r.filters = f; r.filterCalls++ }
func (r *recordingSurface) RenderCards(cards []Card)   { r.cards = cards; r.renders++ }
func (r *recordingSurface) SetPagination(p Pagination) { r.pagination = p }

func cardTitles(cards []Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Title)
	}
	return out
}

func TestControllerStart(t *testing.T) {
	surface := &recordingSurface{}
	c := NewController(sevenProgramEvent(), surface, nil)
	c.Start()

	assert.Equal(t, Header{
		CoverImage: "https://example.org/cover.jpg",
		Headline:   "Open Day",
		Dates:      "2024-05-11T09:00:00 - 2024-05-11T17:00:00",
	}, surface.header)

	assert.Equal(t, []string{"All", "Hall A", "Hall B", "Dome", "Lab 1"}, surface.filters.Locations)
	assert.Equal(t, []string{"All", "Workshop", "Lecture", "Tour"}, surface.filters.ProgramTypes)
	assert.Equal(t, openday.All, surface.filters.Location)

	require.Len(t, surface.cards, 5)
	first := surface.cards[0]
	assert.Equal(t, "Robots", first.Title)
	assert.Equal(t, "Robots description", first.Description)
	assert.Equal(t, "Hall A", first.Location)
	assert.Equal(t, "Engineering", first.Topic)
	assert.Equal(t, "Page 1 of 2", surface.pagination.Label())
}

func TestControllerPaging(t *testing.T) {
	surface := &recordingSurface{}
	c := NewController(sevenProgramEvent(), surface, nil)
	c.Start()

	assert.False(t, c.Prev())
	assert.Equal(t, 1, surface.renders, "no re-render when already on the first page")

	require.True(t, c.Next())
	assert.Equal(t, []string{"Atoms", "Rocks"}, cardTitles(surface.cards))
	assert.True(t, surface.pagination.NextDisabled)

	assert.False(t, c.Next())
	require.True(t, c.Prev())
	assert.Len(t, surface.cards, 5)
}

func TestControllerSortAndFilter(t *testing.T) {
	surface := &recordingSurface{}
	c := NewController(sevenProgramEvent(), surface, nil)
	c.Start()
	c.Next()

	c.SetOrder(openday.OrderLatest)
	assert.Equal(t, 1, c.State().Page)
	assert.Equal(t, []string{"Rocks", "Atoms", "Circuits", "Stars", "Robots"}, cardTitles(surface.cards))

	c.SetLocation("Hall A")
	assert.Equal(t, []string{"Atoms", "Circuits", "Robots"}, cardTitles(surface.cards))
	assert.True(t, surface.pagination.PrevDisabled)
	assert.True(t, surface.pagination.NextDisabled)

	c.SetProgramType("Workshop")
	assert.Equal(t, []string{"Robots"}, cardTitles(surface.cards))

	c.SetProgramType("Tour")
	assert.Empty(t, surface.cards)
	assert.Equal(t, "Page 1 of 0", surface.pagination.Label())
}

func TestControllerReload(t *testing.T) {
	surface := &recordingSurface{}
	c := NewController(sevenProgramEvent(), surface, nil)
	c.Start()
	c.SetLocation("Dome")
	c.SetProgramType("Tour")

	updated := sevenProgramEvent()
	updated.Description = "Open Day (updated)"
	// Dome disappears, Tour remains
	updated.Topics[1].Programs[0].Location.Title = "Hall B"

	c.Reload(updated)

	assert.Equal(t, "Open Day (updated)", surface.header.Headline)
	assert.Equal(t, 2, surface.filterCalls)
	assert.Equal(t, openday.All, surface.filters.Location)
	assert.Equal(t, "Tour", surface.filters.ProgramType)
	assert.NotContains(t, surface.filters.Locations, "Dome")
	assert.Equal(t, []string{"Stars", "Rocks"}, cardTitles(surface.cards))
	assert.Same(t, updated, c.Event())
}

func TestTextSurfacePrint(t *testing.T) {
	surface := NewTextSurface()
	c := NewController(sevenProgramEvent(), surface, nil)
	c.Start()
	c.Next()

	var buf bytes.Buffer
	require.NoError(t, surface.Print(&buf, true))
	out := buf.String()

	assert.Contains(t, out, "Open Day\n2024-05-11T09:00:00 - 2024-05-11T17:00:00\n")
	assert.Contains(t, out, "Locations: All, Hall A, Hall B, Dome, Lab 1")
	assert.Contains(t, out, "6. Atoms\n")
	assert.Contains(t, out, "   Location: Hall B\n")
	assert.Contains(t, out, "Page 2 of 2  [prev]\n")
	assert.NotContains(t, out, "[next]")
}

func TestTextSurfaceEmpty(t *testing.T) {
	surface := NewTextSurface()
	c := NewController(sevenProgramEvent(), surface, nil)
	c.Start()
	c.SetLocation("Nowhere")

	var buf bytes.Buffer
	require.NoError(t, surface.Print(&buf, false))
	assert.Contains(t, buf.String(), "No programs found.")
	assert.Contains(t, buf.String(), "Page 1 of 0\n")
	assert.NotContains(t, buf.String(), "Locations:")
}
