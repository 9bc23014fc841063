package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestIntBoolUnmarshal(t *testing.T) {
	cases := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{input: "0", want: false},
		{input: "1", want: true},
		{input: "false", want: false},
		{input: "true", want: true},
		{input: "2", wantErr: true},
		{input: `"yes"`, wantErr: true},
	}

	for _, tc := range cases {
		var b IntBool
		err := json.Unmarshal([]byte(tc.input), &b)
		if tc.wantErr {
			if err == nil {
				t.Errorf("unmarshal %q: expected error, got %v", tc.input, b)
			}
			continue
		}
		if err != nil {
			t.Errorf("unmarshal %q: %v", tc.input, err)
			continue
		}
		if bool(b) != tc.want {
			t.Errorf("unmarshal %q = %v, want %v", tc.input, bool(b), tc.want)
		}
	}
}

func TestIntBoolMarshalsAsInteger(t *testing.T) {
	data, err := json.Marshal(IntBool(true))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "1" {
		t.Errorf("marshal true = %s, want 1", data)
	}

	data, err = json.Marshal(IntBool(false))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "0" {
		t.Errorf("marshal false = %s, want 0", data)
	}
}

func TestTimestampUnmarshal(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{
			name:  "rfc3339",
			input: `"2026-08-30T10:15:00Z"`,
			want:  time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC),
		},
		{
			name:  "sql datetime",
			input: `"2026-08-30 10:15:00"`,
			want:  time.Date(2026, 8, 30, 10, 15, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: `"2026-08-30"`,
			want:  time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "epoch seconds",
			input: "1756548900",
			want:  time.Unix(1756548900, 0),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			if err := json.Unmarshal([]byte(tc.input), &ts); err != nil {
				t.Fatalf("unmarshal %s: %v", tc.input, err)
			}
			if !ts.Equal(tc.want) {
				t.Errorf("unmarshal %s = %v, want %v", tc.input, ts.Time, tc.want)
			}
		})
	}
}

func TestTimestampUnmarshalEmpty(t *testing.T) {
	for _, input := range []string{"null", `""`} {
		var ts Timestamp
		if err := json.Unmarshal([]byte(input), &ts); err != nil {
			t.Fatalf("unmarshal %s: %v", input, err)
		}
		if !ts.IsZero() {
			t.Errorf("unmarshal %s = %v, want zero time", input, ts.Time)
		}
	}
}

func TestTodoDecodesIntegerCompleted(t *testing.T) {
	payload := `{"id":7,"title":"write report","description":"","completed":1}`

	var todo Todo
	if err := json.Unmarshal([]byte(payload), &todo); err != nil {
		t.Fatalf("unmarshal todo: %v", err)
	}
	if todo.ID != 7 {
		t.Errorf("ID = %d, want 7", todo.ID)
	}
	if !bool(todo.Completed) {
		t.Error("Completed = false, want true")
	}
}
