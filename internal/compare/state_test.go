package compare

import (
	"strings"
	"testing"
)

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	if s.TaskID != "fizzbuzz" {
		t.Errorf("TaskID = %q, want fizzbuzz", s.TaskID)
	}
	if s.LangID != "Go" {
		t.Errorf("LangID = %q, want Go", s.LangID)
	}
}

func TestFragmentKeyOrder(t *testing.T) {
	s := State{TaskID: "fibonacci", LangID: "Python"}
	got := s.Fragment()
	want := "task=fibonacci&lang=Python"
	if got != want {
		t.Errorf("Fragment() = %q, want %q", got, want)
	}
}

func TestFragmentRoundTrip(t *testing.T) {
	for _, task := range Tasks() {
		for _, lang := range Languages() {
			s := State{TaskID: task.ID, LangID: lang.ID}
			restored := StateFromFragment(s.Fragment())
			if restored != s {
				t.Errorf("round trip %v = %v", s, restored)
			}
		}
	}
}

func TestStateFromFragmentInvalid(t *testing.T) {
	cases := []struct {
		name     string
		fragment string
		want     State
	}{
		{name: "empty", fragment: "", want: DefaultState()},
		{name: "garbage", fragment: "%%%not-a-query", want: DefaultState()},
		{
			name:     "unknown ids",
			fragment: "task=quicksort&lang=COBOL",
			want:     DefaultState(),
		},
		{
			name:     "partial valid",
			fragment: "task=wordcount&lang=COBOL",
			want:     State{TaskID: "wordcount", LangID: DefaultState().LangID},
		},
		{
			name:     "leading hash",
			fragment: "#task=fibonacci&lang=JavaScript",
			want:     State{TaskID: "fibonacci", LangID: "JavaScript"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StateFromFragment(tc.fragment); got != tc.want {
				t.Errorf("StateFromFragment(%q) = %v, want %v",
					tc.fragment, got, tc.want)
			}
		})
	}
}

func TestSelectRejectsUnknownIDs(t *testing.T) {
	s := DefaultState()
	if got := s.SelectTask("quicksort"); got != s {
		t.Errorf("SelectTask with unknown ID changed state: %v", got)
	}
	if got := s.SelectLanguage("COBOL"); got != s {
		t.Errorf("SelectLanguage with unknown ID changed state: %v", got)
	}
}

func TestNextTaskCycles(t *testing.T) {
	s := DefaultState()
	seen := map[string]bool{}
	for i := 0; i < len(Tasks()); i++ {
		seen[s.TaskID] = true
		s = s.NextTask()
	}
	if s.TaskID != DefaultState().TaskID {
		t.Errorf("full cycle ended on %q, want %q", s.TaskID, DefaultState().TaskID)
	}
	if len(seen) != len(Tasks()) {
		t.Errorf("cycle visited %d tasks, want %d", len(seen), len(Tasks()))
	}
}

func TestNextLanguageCycles(t *testing.T) {
	s := DefaultState()
	for i := 0; i < len(Languages()); i++ {
		s = s.NextLanguage()
	}
	if s.LangID != DefaultState().LangID {
		t.Errorf("full cycle ended on %q", s.LangID)
	}
}

func TestMetricsMatchSampleText(t *testing.T) {
	s := State{TaskID: "fizzbuzz", LangID: "Go"}

	selected, ok := SampleFor(s.TaskID, s.LangID)
	if !ok {
		t.Fatal("missing sample for fizzbuzz/Go")
	}
	reference, ok := ReferenceSampleFor(s.TaskID)
	if !ok {
		t.Fatal("missing reference sample for fizzbuzz")
	}

	m := s.Metrics()

	if m.Chars != len(selected) {
		t.Errorf("Chars = %d, want %d", m.Chars, len(selected))
	}

	wantLines := 0
	for _, line := range strings.Split(selected, "\n") {
		if strings.TrimSpace(line) != "" {
			wantLines++
		}
	}
	if m.Lines != wantLines {
		t.Errorf("Lines = %d, want %d", m.Lines, wantLines)
	}

	if m.DeltaChars != len(selected)-len(reference) {
		t.Errorf("DeltaChars = %d, want %d", m.DeltaChars, len(selected)-len(reference))
	}
}

func TestEverySampleExists(t *testing.T) {
	for _, task := range Tasks() {
		if _, ok := ReferenceSampleFor(task.ID); !ok {
			t.Errorf("no reference sample for task %q", task.ID)
		}
		for _, lang := range Languages() {
			if _, ok := SampleFor(task.ID, lang.ID); !ok {
				t.Errorf("no sample for %q/%q", task.ID, lang.ID)
			}
		}
	}
}
