package notebookx

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"
	"time"

	"github.com/notebookx/notebookx/internal/logging"
)

// The NotebookX file format is a line-oriented plain-text format,
// designed to stay readable and editable by hand. A document starts
// with a notebook header block, followed by one block per page, with
// pages separated by a page-break marker.

// Markers, each on a line of its own.
const (
	markerHeaderStart = "--- NOTEBOOKX NOTEBOOK ---"
	markerHeaderEnd   = "--- END NOTEBOOK HEADER ---"
	markerPageBreak   = "--- PAGE BREAK ---"
	markerMetaStart   = "--- NOTEBOOKX METADATA ---"
	markerMetaEnd     = "--- END METADATA ---"
)

// Field prefixes for the header and metadata blocks.
const (
	fieldNotebookID    = "NOTEBOOK_ID: "
	fieldNotebookTitle = "NOTEBOOK_TITLE: "
	fieldPageID        = "PAGE_ID: "
	fieldPageTitle     = "TITLE: "
	fieldPageNumber    = "NUMBER: "
	fieldCreated       = "CREATED: "
	fieldModified      = "MODIFIED: "
)

// Default titles for documents that carry no header or metadata.
const (
	defaultNotebookTitle = "Untitled Notebook"
	defaultPageTitle     = "Untitled"
)

const tsFormat = time.RFC3339Nano

// WriteNotebook writes the notebook to w in the NotebookX text format.
func WriteNotebook(w io.Writer, n *Notebook) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, markerHeaderStart)
	fmt.Fprintf(bw, "%v%v\n", fieldNotebookID, n.ID)
	fmt.Fprintf(bw, "%v%v\n", fieldNotebookTitle, n.Title)
	fmt.Fprintf(bw, "%v%v\n", fieldCreated, n.Created.Format(tsFormat))
	fmt.Fprintf(bw, "%v%v\n", fieldModified, n.Modified.Format(tsFormat))
	fmt.Fprintln(bw, markerHeaderEnd)
	fmt.Fprintln(bw)

	for i, p := range n.Pages {
		if i > 0 {
			fmt.Fprintln(bw, markerPageBreak)
			fmt.Fprintln(bw)
		}

		fmt.Fprintln(bw, markerMetaStart)
		fmt.Fprintf(bw, "%v%v\n", fieldPageID, p.ID)
		fmt.Fprintf(bw, "%v%v\n", fieldPageTitle, p.Title)
		if p.Number > 0 {
			fmt.Fprintf(bw, "%v%v\n", fieldPageNumber, p.Number)
		}
		fmt.Fprintf(bw, "%v%v\n", fieldCreated, p.Created.Format(tsFormat))
		fmt.Fprintf(bw, "%v%v\n", fieldModified, p.Modified.Format(tsFormat))
		fmt.Fprintln(bw, markerMetaEnd)
		fmt.Fprintln(bw)

		bw.WriteString(p.Content)
		bw.WriteString("\n\n")
	}

	return bw.Flush()
}

// MarshalNotebook serializes the notebook to the NotebookX text format.
func MarshalNotebook(n *Notebook) []byte {
	var buf bytes.Buffer
	WriteNotebook(&buf, n)
	return buf.Bytes()
}

// UnmarshalNotebook parses a document in the NotebookX text format.
//
// Parsing is deliberately tolerant: a document with missing markers,
// malformed timestamps or unparseable page segments degrades to a
// best-effort reconstruction instead of failing. Unrecognized lines in
// header and metadata blocks are ignored. A segment without metadata
// markers becomes a page holding the segment as content; if that
// content is empty after trimming, the segment is skipped.
func UnmarshalNotebook(data []byte) *Notebook {
	segments := strings.Split(string(data), markerPageBreak)

	header, rest := splitHeader(segments[0])
	n := parseHeader(header)

	if p, ok := parsePageSegment(rest); ok {
		n.Pages = append(n.Pages, p)
	}
	for _, segment := range segments[1:] {
		if p, ok := parsePageSegment(segment); ok {
			n.Pages = append(n.Pages, p)
		}
	}

	return n
}

// ReadNotebook parses a document from the given reader.
// Only the read itself can fail; see UnmarshalNotebook.
func ReadNotebook(r io.Reader) (*Notebook, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return UnmarshalNotebook(data), nil
}

// splitHeader cuts the notebook header block out of the first segment.
// If the header markers are missing, the header is empty and the whole
// segment counts as page content.
func splitHeader(s string) (header, rest string) {
	start := strings.Index(s, markerHeaderStart)
	end := strings.Index(s, markerHeaderEnd)
	if start < 0 || end < start {
		logging.Debug("Document has no notebook header")
		return "", s
	}

	end += len(markerHeaderEnd)
	return s[start:end], s[end:]
}

func parseHeader(header string) *Notebook {
	n := NewNotebook(defaultNotebookTitle)

	for _, line := range strings.Split(header, "\n") {
		switch {
		case strings.HasPrefix(line, fieldNotebookID):
			n.ID = strings.TrimPrefix(line, fieldNotebookID)
		case strings.HasPrefix(line, fieldNotebookTitle):
			n.Title = strings.TrimPrefix(line, fieldNotebookTitle)
		case strings.HasPrefix(line, fieldCreated):
			if ts, ok := parseTimestamp(strings.TrimPrefix(line, fieldCreated)); ok {
				n.Created = ts
			}
		case strings.HasPrefix(line, fieldModified):
			if ts, ok := parseTimestamp(strings.TrimPrefix(line, fieldModified)); ok {
				n.Modified = ts
			}
		}
	}

	return n
}

// parsePageSegment parses a single page block. The bool result is false
// only for segments that contribute no page (no metadata and no content).
func parsePageSegment(s string) (*Page, bool) {
	start := strings.Index(s, markerMetaStart)
	end := strings.Index(s, markerMetaEnd)
	if start < 0 || end < start {
		// No metadata block, the whole segment is content.
		content := strings.TrimSpace(s)
		if content == "" {
			logging.Debug("Skip page segment with empty content")
			return nil, false
		}
		return NewPage(defaultPageTitle, content, 0), true
	}

	p := NewPage(defaultPageTitle, "", 0)
	for _, line := range strings.Split(s[start:end], "\n") {
		switch {
		case strings.HasPrefix(line, fieldPageID):
			p.ID = strings.TrimPrefix(line, fieldPageID)
		case strings.HasPrefix(line, fieldPageTitle):
			p.Title = strings.TrimPrefix(line, fieldPageTitle)
		case strings.HasPrefix(line, fieldPageNumber):
			if num, err := strconv.Atoi(strings.TrimPrefix(line, fieldPageNumber)); err == nil && num > 0 {
				p.Number = num
			} else {
				logging.Debug("Ignore malformed page number %q", line)
			}
		case strings.HasPrefix(line, fieldCreated):
			if ts, ok := parseTimestamp(strings.TrimPrefix(line, fieldCreated)); ok {
				p.Created = ts
			}
		case strings.HasPrefix(line, fieldModified):
			if ts, ok := parseTimestamp(strings.TrimPrefix(line, fieldModified)); ok {
				p.Modified = ts
			}
		}
	}
	p.Content = strings.TrimSpace(s[end+len(markerMetaEnd):])

	return p, true
}

// parseTimestamp parses an RFC3339 timestamp.
// A malformed value is ignored, the field keeps its previous value.
func parseTimestamp(s string) (time.Time, bool) {
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		logging.Debug("Ignore malformed timestamp %q", s)
		return time.Time{}, false
	}

	return ts, true
}
