package formbox

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Result is the read-side join of a form with its responses: every answered
// field position resolved to its human-readable label.
type Result struct {
	Form    Form          `json:"form"`
	Entries []ResultEntry `json:"entries"`
}

// ResultEntry is one response rendered for display. Rows are ordered by
// ascending field position.
type ResultEntry struct {
	ResponseID  ResponseID  `json:"responseId"`
	SubmittedAt time.Time   `json:"submittedAt"`
	Rows        []ResultRow `json:"rows"`
}

// ResultRow is one answered field of one response.
type ResultRow struct {
	Position int      `json:"position"`
	Label    string   `json:"label"`
	Values   []string `json:"values"`
}

// BuildResult renders responses against form. Responses are kept in the
// given order (the store serves them most recent first). A position outside
// the form's current field range resolves to the synthesized label
// "Question N"; forms are never edited after creation, so this only covers
// drift from data written outside this module.
func BuildResult(form Form, responses []Response) Result {
	entries := make([]ResultEntry, 0, len(responses))
	for _, response := range responses {
		entry := ResultEntry{
			ResponseID:  response.ID,
			SubmittedAt: response.SubmittedAt,
			Rows:        []ResultRow{},
		}
		for key, value := range response.Answers {
			position, err := strconv.Atoi(key)
			if err != nil {
				// Keys that are not positions cannot be resolved to a field;
				// drop them rather than fail the whole view.
				continue
			}
			entry.Rows = append(entry.Rows, ResultRow{
				Position: position,
				Label:    labelAt(form, position),
				Values:   answerStrings(value),
			})
		}
		sort.Slice(entry.Rows, func(a, b int) bool {
			return entry.Rows[a].Position < entry.Rows[b].Position
		})
		entries = append(entries, entry)
	}
	return Result{Form: form, Entries: entries}
}

func labelAt(form Form, position int) string {
	if position >= 0 && position < len(form.Fields) {
		return form.Fields[position].Label
	}
	return fmt.Sprintf("Question %d", position+1)
}

func answerStrings(value any) []string {
	if answer, ok := DecodeAnswer(value); ok {
		return answer.Strings()
	}
	// Values that passed no validator (foreign writes); render something
	// rather than nothing.
	return []string{fmt.Sprint(value)}
}
