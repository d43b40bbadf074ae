package notebookx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	defer fakeClock(time.Date(2024, 3, 1, 10, 0, 0, 500000000, time.UTC))()

	n := NewNotebook("My Notebook")
	n.AddPage(NewPage("Intro", "First page content.", 0))
	n.AddPage(NewPage("Body", "Second page,\nwith a line break.", 0))
	n.AddPage(NewPage("Appendix", "Third page content.", 0))

	parsed := UnmarshalNotebook(MarshalNotebook(n))

	assert.Equal(t, n.ID, parsed.ID)
	assert.Equal(t, n.Title, parsed.Title)
	assert.True(t, parsed.Created.Equal(n.Created), "created timestamp must round-trip")
	assert.True(t, parsed.Modified.Equal(n.Modified), "modified timestamp must round-trip")

	require.Equal(t, len(n.Pages), len(parsed.Pages))
	for i, p := range n.Pages {
		q := parsed.Pages[i]
		assert.Equal(t, p.ID, q.ID)
		assert.Equal(t, p.Title, q.Title)
		assert.Equal(t, p.Content, q.Content)
		assert.Equal(t, p.Number, q.Number)
		assert.True(t, q.Created.Equal(p.Created), "page created timestamp must round-trip")
		assert.True(t, q.Modified.Equal(p.Modified), "page modified timestamp must round-trip")
	}
}

func TestMarshalFormat(t *testing.T) {
	n := NewNotebook("My Notebook")
	n.AddPage(NewPage("One", "first", 0))
	n.AddPage(NewPage("Two", "second", 0))

	s := string(MarshalNotebook(n))

	assert.True(t, strings.HasPrefix(s, markerHeaderStart+"\n"))
	assert.Contains(t, s, "NOTEBOOK_TITLE: My Notebook\n")
	assert.Contains(t, s, markerHeaderEnd+"\n")
	assert.Contains(t, s, "TITLE: One\n")
	assert.Contains(t, s, "NUMBER: 1\n")
	assert.Contains(t, s, "NUMBER: 2\n")
	// one page break between two pages, none before the first
	assert.Equal(t, 1, strings.Count(s, markerPageBreak))
}

func TestUnmarshalMissingHeader(t *testing.T) {
	doc := "just some plain text\nwith two lines"

	n := UnmarshalNotebook([]byte(doc))

	assert.Equal(t, defaultNotebookTitle, n.Title)
	assert.NotEmpty(t, n.ID)
	require.Equal(t, 1, len(n.Pages))
	assert.Equal(t, defaultPageTitle, n.Pages[0].Title)
	assert.Equal(t, doc, n.Pages[0].Content)
}

func TestUnmarshalMalformedFields(t *testing.T) {
	doc := markerHeaderStart + "\n" +
		"NOTEBOOK_ID: nb-1\n" +
		"NOTEBOOK_TITLE: Damaged\n" +
		"CREATED: not-a-timestamp\n" +
		"SOMETHING_ELSE: ignored\n" +
		markerHeaderEnd + "\n\n" +
		markerMetaStart + "\n" +
		"PAGE_ID: p-1\n" +
		"TITLE: First\n" +
		"NUMBER: twelve\n" +
		"MODIFIED: 2024-03-01T10:00:00Z\n" +
		markerMetaEnd + "\n\n" +
		"page content\n"

	n := UnmarshalNotebook([]byte(doc))

	assert.Equal(t, "nb-1", n.ID)
	assert.Equal(t, "Damaged", n.Title)
	// malformed CREATED keeps the default (now), it must not abort the parse
	assert.False(t, n.Created.IsZero())

	require.Equal(t, 1, len(n.Pages))
	p := n.Pages[0]
	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, "First", p.Title)
	assert.Equal(t, 0, p.Number, "non-numeric NUMBER is ignored")
	assert.Equal(t, "page content", p.Content)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), p.Modified.UTC())
}

func TestUnmarshalSegmentWithoutMetadata(t *testing.T) {
	doc := markerHeaderStart + "\n" +
		"NOTEBOOK_TITLE: Mixed\n" +
		markerHeaderEnd + "\n\n" +
		markerMetaStart + "\n" +
		"TITLE: Proper\n" +
		markerMetaEnd + "\n\n" +
		"first page\n\n" +
		markerPageBreak + "\n\n" +
		"bare content, no metadata\n\n" +
		markerPageBreak + "\n\n" +
		"   \n" // empty after trim, contributes no page

	n := UnmarshalNotebook([]byte(doc))

	require.Equal(t, 2, len(n.Pages))
	assert.Equal(t, "Proper", n.Pages[0].Title)
	assert.Equal(t, "first page", n.Pages[0].Content)
	assert.Equal(t, defaultPageTitle, n.Pages[1].Title)
	assert.Equal(t, "bare content, no metadata", n.Pages[1].Content)
	assert.NotEmpty(t, n.Pages[1].ID, "fallback pages get a fresh id")
}

func TestUnmarshalEmptyDocument(t *testing.T) {
	n := UnmarshalNotebook([]byte(""))

	assert.Equal(t, defaultNotebookTitle, n.Title)
	assert.Equal(t, 0, len(n.Pages))
}
