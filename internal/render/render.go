// Package render maps fetched collections to display rows.
//
// Everything here is a pure function of its inputs: rendering the same
// collection twice yields identical rows, so a poll cycle that delivers
// an unchanged (or older) snapshot merely redraws the same content. The
// terminal binding lives in the ui packages; this layer never touches
// styles or the screen.
package render

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nhle/demodash/internal/model"
)

// Placeholders shown instead of an empty container.
const (
	NoTodosPlaceholder    = "No todos yet. Press n to add one."
	NoMessagesPlaceholder = "No messages yet. Say hello!"
	NoFilesPlaceholder    = "No files uploaded yet."
)

// TodoFilter selects a client-side subset of the fetched todo collection.
// Active and Completed partition the collection; All is their union.
type TodoFilter int

const (
	FilterAll TodoFilter = iota
	FilterActive
	FilterCompleted
)

// String returns the filter's display label.
func (f TodoFilter) String() string {
	switch f {
	case FilterActive:
		return "active"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// Next cycles all -> active -> completed -> all.
func (f TodoFilter) Next() TodoFilter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// FilterTodos returns the subset of todos matching the filter. Filtering
// happens over the full fetched collection; nothing is delegated to the
// server.
func FilterTodos(todos []model.Todo, f TodoFilter) []model.Todo {
	if f == FilterAll {
		return todos
	}
	var out []model.Todo
	for _, t := range todos {
		completed := bool(t.Completed)
		if (f == FilterCompleted) == completed {
			out = append(out, t)
		}
	}
	return out
}

// TodoRow is a display-ready todo with untrusted fields sanitized.
type TodoRow struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
}

// TodoRows converts a todo collection to display rows.
func TodoRows(todos []model.Todo) []TodoRow {
	rows := make([]TodoRow, len(todos))
	for i, t := range todos {
		rows[i] = TodoRow{
			ID:          t.ID,
			Title:       Sanitize(t.Title),
			Description: Sanitize(t.Description),
			Completed:   bool(t.Completed),
		}
	}
	return rows
}

// MessageLines converts the chat history to display lines, oldest first.
// The server returns newest-first; the reversal here is what puts the
// conversation in chronological top-to-bottom order. An empty history
// renders the placeholder line.
func MessageLines(messages []model.Message) []string {
	if len(messages) == 0 {
		return []string{NoMessagesPlaceholder}
	}

	lines := make([]string, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		m := messages[i]
		stamp := ""
		if !m.CreatedAt.IsZero() {
			stamp = m.CreatedAt.Format("15:04") + " "
		}
		lines = append(lines, fmt.Sprintf(
			"%s%s: %s",
			stamp,
			Sanitize(m.Username),
			Sanitize(m.Message),
		))
	}
	return lines
}

// FileRow is a display-ready file entry with a humanized size.
type FileRow struct {
	Filename string
	Size     string
	Uploaded string
}

// FileRows converts the file listing to display rows.
func FileRows(files []model.File, now time.Time) []FileRow {
	rows := make([]FileRow, len(files))
	for i, f := range files {
		uploaded := ""
		if !f.UploadedAt.IsZero() {
			uploaded = humanize.RelTime(f.UploadedAt.Time, now, "ago", "from now")
		}
		size := f.Filesize
		if size < 0 {
			// A negative size would wrap in the unsigned conversion.
			size = 0
		}
		rows[i] = FileRow{
			Filename: Sanitize(f.Filename),
			Size:     humanize.Bytes(uint64(size)),
			Uploaded: uploaded,
		}
	}
	return rows
}

// WelcomeLine derives the dashboard greeting from the stats payload.
func WelcomeLine(stats model.Stats) string {
	return fmt.Sprintf("Welcome back, %s!", Sanitize(stats.Username))
}

// StatsLines derives the per-user summary lines.
func StatsLines(stats model.Stats) []string {
	return []string{
		fmt.Sprintf("Todos:     %d (%d completed)", stats.TodoCount, stats.CompletedCount),
		fmt.Sprintf("Messages:  %d", stats.MessageCount),
		fmt.Sprintf("Files:     %d", stats.FileCount),
	}
}

// AnalyticsLines derives the site-wide summary lines.
func AnalyticsLines(a model.Analytics) []string {
	return []string{
		fmt.Sprintf("Users:     %d", a.TotalUsers),
		fmt.Sprintf("Todos:     %d", a.TotalTodos),
		fmt.Sprintf("Messages:  %d", a.TotalMessages),
		fmt.Sprintf("Files:     %d", a.TotalFiles),
	}
}
