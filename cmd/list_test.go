package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ashfaaq98/openday-console/internal/openday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadSample(t *testing.T) *openday.Event {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "OpenDay.json"))
	require.NoError(t, err)
	ev, err := openday.Parse(data)
	require.NoError(t, err)
	return ev
}

func list(t *testing.T, ev *openday.Event, opts listOptions) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, renderList(&buf, ev, opts))
	return buf.String()
}

// assertOrder checks that each title appears after the previous one.
func assertOrder(t *testing.T, out string, titles ...string) {
	t.Helper()
	last := -1
	for _, title := range titles {
		idx := strings.Index(out, ". "+title+"\n")
		require.NotEqual(t, -1, idx, "missing %s", title)
		assert.Greater(t, idx, last, "%s out of order", title)
		last = idx
	}
}

func TestRenderListFirstPageInDocumentOrder(t *testing.T) {
	out := list(t, loadSample(t), listOptions{Page: 1})

	assert.True(t, strings.HasPrefix(out, "Campus Open Day 2024\n2024-05-11T09:00:00 - 2024-05-11T17:00:00\n"))
	assert.Contains(t, out, "Cover: https://example.org/openday/cover.jpg")
	assertOrder(t, out, "Robots", "Bridges", "Circuits", "Stars", "Cells")
	assert.NotContains(t, out, "Atoms")
	assert.Contains(t, out, "   Topic: Engineering\n")
	assert.True(t, strings.HasSuffix(out, "Page 1 of 2  [next]\n"))
	assert.NotContains(t, out, "Locations:")
}

func TestRenderListSecondPage(t *testing.T) {
	out := list(t, loadSample(t), listOptions{Page: 2})

	assert.Contains(t, out, "6. Atoms\n")
	assert.Contains(t, out, "7. Rocks\n")
	assert.NotContains(t, out, "Robots")
	assert.True(t, strings.HasSuffix(out, "Page 2 of 2  [prev]\n"))
}

func TestRenderListFilterAndSort(t *testing.T) {
	ev := loadSample(t)

	t.Run("location sorts earliest by default", func(t *testing.T) {
		out := list(t, ev, listOptions{Location: "Hall A", Page: 1})
		assertOrder(t, out, "Robots", "Circuits", "Atoms")
		assert.True(t, strings.HasSuffix(out, "Page 1 of 1\n"))
	})

	t.Run("location latest first", func(t *testing.T) {
		out := list(t, ev, listOptions{Location: "Hall A", Sort: "latest", Page: 1})
		assertOrder(t, out, "Atoms", "Circuits", "Robots")
	})

	t.Run("location and type", func(t *testing.T) {
		out := list(t, ev, listOptions{Location: "Hall B", ProgramType: "Tour", Page: 1})
		assert.Contains(t, out, "1. Rocks\n")
		assert.NotContains(t, out, "Bridges")
	})

	t.Run("sort only", func(t *testing.T) {
		out := list(t, ev, listOptions{Sort: "earliest", Page: 1})
		assertOrder(t, out, "Bridges", "Cells", "Robots", "Stars", "Circuits")
	})

	t.Run("no match", func(t *testing.T) {
		out := list(t, ev, listOptions{Location: "Dome", ProgramType: "Lecture", Page: 1})
		assert.Contains(t, out, "No programs found.")
		assert.True(t, strings.HasSuffix(out, "Page 1 of 0\n"))
	})
}

func TestRenderListShowFilters(t *testing.T) {
	out := list(t, loadSample(t), listOptions{Page: 1, ShowFilters: true})
	assert.Contains(t, out, "Locations: All, Hall A, Hall B, Dome, Lab 1\n")
	assert.Contains(t, out, "Program types: All, Workshop, Lecture, Tour\n")
}

func TestRenderListRejectsBadOptions(t *testing.T) {
	ev := loadSample(t)
	var buf bytes.Buffer

	assert.Error(t, renderList(&buf, ev, listOptions{Page: 0}))
	assert.Error(t, renderList(&buf, ev, listOptions{Page: 3}))
	assert.Error(t, renderList(&buf, ev, listOptions{Page: 1, Sort: "newest"}))
	assert.Empty(t, buf.String())
}

func TestListCommandReadsSource(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "OpenDay.json"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "OpenDay.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"list", "--source", path, "--log-level", "error", "--type", "Tour"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		listProgramType = openday.All
	})

	require.NoError(t, Execute(context.Background()))
	assertOrder(t, out.String(), "Stars", "Rocks")
	assert.Contains(t, out.String(), "Page 1 of 1")
}

func TestListCommandMissingSource(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"list", "--source", filepath.Join(t.TempDir(), "missing.json"), "--log-level", "error"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unavailable")
	assert.Empty(t, out.String())
}
