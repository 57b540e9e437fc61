package openday

import (
	"encoding/json"
	"fmt"
)

// All is the filter sentinel that matches every location or program type.
const All = "All"

// SortOrder selects the direction programs are ordered by start time.
type SortOrder string

const (
	OrderEarliest SortOrder = "earliest"
	OrderLatest   SortOrder = "latest"
)

// Event is the top-level open day document
type Event struct {
	CoverImage  string  `json:"cover_image"`
	Description string  `json:"description"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Topics      []Topic `json:"topics"`
}

// Topic groups programs under a thematic title
type Topic struct {
	Title    string    `json:"title"`
	Programs []Program `json:"programs"`
}

// Program is one scheduled entry of the open day.
// TopicTitle is not part of the document; Flatten fills it from the parent topic.
type Program struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartTime   string      `json:"start_time"`
	EndTime     string      `json:"end_time"`
	Location    Location    `json:"location"`
	ProgramType ProgramType `json:"programType"`
	TopicTitle  string      `json:"topicTitle,omitempty"`
}

// Location is where a program takes place
type Location struct {
	Title string `json:"title"`
}

// ProgramType classifies a program (lecture, tour, workshop...)
type ProgramType struct {
	Type string `json:"type"`
}

// DateRange returns the event dates line, verbatim as they appear in the document.
func (e *Event) DateRange() string {
	return fmt.Sprintf("%s - %s", e.StartTime, e.EndTime)
}

// ProgramCount returns the number of programs across all topics.
func (e *Event) ProgramCount() int {
	return countPrograms(e.Topics)
}

// Parse decodes an event document.
func Parse(data []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return nil, fmt.Errorf("failed to parse event document: %w", err)
	}
	return &ev, nil
}
