package notebookx

import (
	"strings"

	"github.com/notebookx/notebookx/internal/logging"
)

// The page capacity models a printed US Letter page:
// 8.5" x 11" with 1" margins leaves a 6.5" x 9" text area,
// roughly 46 lines of 80 characters at a typical 14px font.
const (
	MaxLinesPerPage = 46
	MaxCharsPerLine = 80
	PageCapacity    = MaxLinesPerPage * MaxCharsPerLine
)

// lookback is the number of characters before the capacity limit that
// are searched for a break point.
const lookback = 200

// contSuffix marks a page that continues an overflowing page.
const contSuffix = " (cont.)"

// Overflows tells if content exceeds the given capacity.
// Lengths are measured in characters, not bytes.
func Overflows(content string, capacity int) bool {
	return len([]rune(content)) > capacity
}

// Split breaks overflowing content in two.
//
// The split point is searched backwards from the capacity limit through
// the lookback window: the most recent newline wins, otherwise the most
// recent space. A window with neither forces a hard split exactly at
// the capacity limit, mid-word if need be. In all cases the break
// character stays on the kept side.
//
// Content that fits within the capacity is returned unchanged with
// ok=false.
func Split(content string, capacity int) (kept, overflow string, ok bool) {
	chars := []rune(content)
	if len(chars) <= capacity {
		return content, "", false
	}

	at := capacity
	space := -1
	lo := capacity - lookback
	if lo < 0 {
		lo = 0
	}
	for i := capacity - 1; i >= lo; i-- {
		if chars[i] == '\n' {
			at = i + 1
			break
		}
		if space < 0 && chars[i] == ' ' {
			space = i + 1
		}
	}
	if at == capacity && space >= 0 {
		at = space
	}

	return string(chars[:at]), string(chars[at:]), true
}

// ContinuationTitle returns the title for a page that continues the
// page with the given title. The suffix is not applied twice, so
// repeated overflows of the same logical page keep a single suffix.
func ContinuationTitle(title string) string {
	if strings.Contains(title, contSuffix) {
		return title
	}

	return title + contSuffix
}

// SplitPage checks the page with the given ID for overflow and, if it
// overflows, moves the overflowing content to a new continuation page
// appended at the end of the notebook. The truncated page keeps its
// title; the continuation page is returned.
//
// A single call performs at most one split. If the continuation page
// itself still overflows, call SplitPage again with its ID.
func (n *Notebook) SplitPage(id string, capacity int) (*Page, bool) {
	p, ok := n.Page(id)
	if !ok {
		return nil, false
	}

	kept, overflow, ok := Split(p.Content, capacity)
	if !ok {
		return nil, false
	}
	logging.Debug("Split page %q at %v characters", p.ID, capacity)

	cont := NewPage(ContinuationTitle(p.Title), overflow, 0)
	n.UpdatePage(id, p.Title, kept)
	n.AddPage(cont)

	return cont, true
}
