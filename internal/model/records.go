package model

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// Credential is the token+username pair identifying a logged-in session.
// It lives in the system keyring and is the only state shared across views.
type Credential struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// IntBool is a boolean whose wire representation may be 0/1 or true/false.
// The dashboard API stores todo completion as an integer column, so list
// responses carry 0/1 while the client must treat the field as a two-valued
// flag. It marshals back to 0/1, which is what PUT /api/todos/:id expects.
type IntBool bool

// UnmarshalJSON accepts 0, 1, true, and false.
func (b *IntBool) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "0", "false":
		*b = false
	case "1", "true":
		*b = true
	default:
		return fmt.Errorf("invalid boolean value %q", data)
	}
	return nil
}

// MarshalJSON emits 0 or 1.
func (b IntBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// timestampLayouts are the formats the API has been observed to emit,
// tried in order.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp is a time.Time that tolerates the API's loose date formats:
// RFC 3339 strings, SQL-style datetime strings, or Unix epoch seconds.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON parses any of the supported timestamp representations.
// An empty or null value leaves the zero time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(bytes.TrimSpace(data))
	if s == "null" || s == `""` || s == "" {
		t.Time = time.Time{}
		return nil
	}

	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}

	if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = time.Unix(epoch, 0)
		return nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported timestamp %q", s)
}

// MarshalJSON emits RFC 3339.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(strconv.Quote(t.Format(time.RFC3339))), nil
}

// Todo is a single todo item as returned by GET /api/todos.
type Todo struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   IntBool `json:"completed"`
}

// Message is a single chat message as returned by GET /api/messages.
// The server returns messages newest-first; rendering reverses them.
type Message struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	CreatedAt Timestamp `json:"created_at"`
}

// File is a stored file's metadata as returned by GET /api/files.
// Uploads carry metadata only; no byte payload crosses the wire.
type File struct {
	Filename   string    `json:"filename"`
	Filesize   int64     `json:"filesize"`
	UploadedAt Timestamp `json:"uploaded_at"`
}

// Stats is the per-user summary returned by GET /api/stats.
type Stats struct {
	Username       string `json:"username"`
	TodoCount      int    `json:"todoCount"`
	CompletedCount int    `json:"completedCount"`
	FileCount      int    `json:"fileCount"`
	MessageCount   int    `json:"messageCount"`
}

// Analytics is the site-wide summary returned by GET /api/analytics.
type Analytics struct {
	TotalUsers    int `json:"totalUsers"`
	TotalTodos    int `json:"totalTodos"`
	TotalMessages int `json:"totalMessages"`
	TotalFiles    int `json:"totalFiles"`
}
