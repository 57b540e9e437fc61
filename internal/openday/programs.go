package openday

import (
	"sort"
	"time"

	"github.com/araddon/dateparse"
)

// Flatten converts the topic -> program tree into a flat list in topic order,
// then program order within each topic. Each program carries its topic title.
func Flatten(topics []Topic) []Program {
	out := make([]Program, 0, countPrograms(topics))
	for _, t := range topics {
		for _, p := range t.Programs {
			p.TopicTitle = t.Title
			out = append(out, p)
		}
	}
	return out
}

func countPrograms(topics []Topic) int {
	n := 0
	for _, t := range topics {
		n += len(t.Programs)
	}
	return n
}

// Sort returns a copy of programs ordered by start time. OrderEarliest sorts
// ascending; any other order sorts descending. Ties keep their input order.
func Sort(programs []Program, order SortOrder) []Program {
	out := make([]Program, len(programs))
	copy(out, programs)

	keys := make([]time.Time, len(out))
	for i := range out {
		keys[i] = ParseTime(out[i].StartTime)
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	ascending := order == OrderEarliest
	sort.SliceStable(idx, func(a, b int) bool {
		ta, tb := keys[idx[a]], keys[idx[b]]
		if ascending {
			return ta.Before(tb)
		}
		return ta.After(tb)
	})

	sorted := make([]Program, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

// ParseTime parses a document timestamp. Strings without a zone are read in
// the local zone. Unparseable values yield the zero time.
func ParseTime(s string) time.Time {
	t, err := dateparse.ParseIn(s, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Filter keeps programs matching both the location and the program type.
// Either selection may be All.
func Filter(programs []Program, location, programType string) []Program {
	out := make([]Program, 0, len(programs))
	for _, p := range programs {
		if location != All && p.Location.Title != location {
			continue
		}
		if programType != All && p.ProgramType.Type != programType {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Locations returns the distinct location titles in order of first appearance.
func Locations(topics []Topic) []string {
	return distinct(topics, func(p Program) string { return p.Location.Title })
}

// ProgramTypes returns the distinct program types in order of first appearance.
func ProgramTypes(topics []Topic) []string {
	return distinct(topics, func(p Program) string { return p.ProgramType.Type })
}

func distinct(topics []Topic, key func(Program) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, t := range topics {
		for _, p := range t.Programs {
			k := key(p)
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// WithAll prefixes options with the All sentinel.
func WithAll(options []string) []string {
	out := make([]string, 0, len(options)+1)
	out = append(out, All)
	return append(out, options...)
}
