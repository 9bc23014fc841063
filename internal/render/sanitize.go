package render

import "strings"

// Sanitize neutralizes untrusted text before it reaches the terminal.
// Every record field that originated from another user (titles,
// descriptions, message bodies, usernames, filenames) must pass through
// here before display: raw ESC bytes would let a remote user inject
// terminal control sequences, the TUI analog of script injection.
//
// Control characters (C0, DEL, and C1) are dropped; printable text,
// including markup-looking strings such as "<script>", passes through
// verbatim and is displayed as literal text. Tabs collapse to a single
// space so columns stay aligned.
func Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteRune(' ')
		case r < 0x20, r == 0x7f, r >= 0x80 && r <= 0x9f:
			// drop
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
