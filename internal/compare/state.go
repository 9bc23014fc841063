// Package compare holds the language-comparison widget's state machine.
//
// The widget is entirely client-side: a selected task and a selected
// language, mirrored into a fragment string of the form
// "task=<id>&lang=<id>". The fragment is the secondary durable
// representation of the selection; each transition re-derives it in the
// same update, so state and fragment are never observably out of sync.
// The widget has no terminal state, only re-entrant transitions.
package compare

import (
	"fmt"
	"net/url"
	"strings"
)

// State is the widget's selection: one task and one comparison language.
type State struct {
	TaskID string
	LangID string
}

// DefaultState selects the first task and first language.
func DefaultState() State {
	return State{
		TaskID: tasks[0].ID,
		LangID: languages[0].ID,
	}
}

// StateFromFragment restores a selection from a fragment string.
// Invalid or absent values silently fall back to the default for that
// field; no error is surfaced.
func StateFromFragment(fragment string) State {
	s := DefaultState()

	values, err := url.ParseQuery(strings.TrimPrefix(fragment, "#"))
	if err != nil {
		return s
	}

	if taskID := values.Get("task"); validTaskID(taskID) {
		s.TaskID = taskID
	}
	if langID := values.Get("lang"); validLangID(langID) {
		s.LangID = langID
	}
	return s
}

// Fragment derives the fragment string for the current selection.
// Key order is fixed: task first, then lang.
func (s State) Fragment() string {
	return fmt.Sprintf(
		"task=%s&lang=%s",
		url.QueryEscape(s.TaskID),
		url.QueryEscape(s.LangID),
	)
}

// SelectTask returns the state with the given task selected. An unknown
// ID leaves the state unchanged.
func (s State) SelectTask(taskID string) State {
	if validTaskID(taskID) {
		s.TaskID = taskID
	}
	return s
}

// SelectLanguage returns the state with the given language selected.
// An unknown ID leaves the state unchanged.
func (s State) SelectLanguage(langID string) State {
	if validLangID(langID) {
		s.LangID = langID
	}
	return s
}

// NextTask cycles to the next task in display order.
func (s State) NextTask() State {
	for i, t := range tasks {
		if t.ID == s.TaskID {
			s.TaskID = tasks[(i+1)%len(tasks)].ID
			return s
		}
	}
	s.TaskID = tasks[0].ID
	return s
}

// NextLanguage cycles to the next comparison language in display order.
func (s State) NextLanguage() State {
	for i, l := range languages {
		if l.ID == s.LangID {
			s.LangID = languages[(i+1)%len(languages)].ID
			return s
		}
	}
	s.LangID = languages[0].ID
	return s
}

// Metrics are the derived measurements for the current selection:
// non-blank line count and character count for the selected sample, and
// the signed differences (selected minus reference).
type Metrics struct {
	Lines      int
	Chars      int
	DeltaLines int
	DeltaChars int
}

// Metrics computes the derived measurements for the current selection.
func (s State) Metrics() Metrics {
	selected, _ := SampleFor(s.TaskID, s.LangID)
	reference, _ := ReferenceSampleFor(s.TaskID)

	selLines, selChars := measure(selected)
	refLines, refChars := measure(reference)

	return Metrics{
		Lines:      selLines,
		Chars:      selChars,
		DeltaLines: selLines - refLines,
		DeltaChars: selChars - refChars,
	}
}

// measure counts non-blank lines and total characters.
func measure(src string) (lines, chars int) {
	for _, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) != "" {
			lines++
		}
	}
	return lines, len(src)
}
