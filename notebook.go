package notebookx

import (
	"time"

	"github.com/google/uuid"
)

// now is the clock used for all timestamps.
// Tests replace this to get deterministic values.
var now = func() time.Time {
	return time.Now().UTC()
}

// A Page is a single titled unit of text content within a notebook.
type Page struct {
	ID      string
	Title   string
	Content string
	// Number is the 1-based position of the page in its notebook,
	// 0 while the page has not been added to one.
	// It is recomputed after every structural change.
	Number   int
	Created  time.Time
	Modified time.Time
}

// NewPage creates a page with a fresh ID.
//
// The number is advisory only and is overwritten as soon as the page is
// added to a notebook.
func NewPage(title, content string, number int) *Page {
	ts := now()
	return &Page{
		ID:       uuid.New().String(),
		Title:    title,
		Content:  content,
		Number:   number,
		Created:  ts,
		Modified: ts,
	}
}

func (p *Page) update(title, content string) {
	p.Title = title
	p.Content = content
	p.Modified = now()
}

func (p *Page) setNumber(number int) {
	p.Number = number
	p.Modified = now()
}

func (p *Page) Validate() error {
	if p.ID == "" {
		return NewValidationError("page has no id")
	}

	return nil
}

// A Notebook is an ordered collection of pages.
// The page order is meaningful (it is the reading order and drives page
// numbering), so all mutations go through the notebook's methods, which
// keep the numbering and the modified timestamp consistent.
type Notebook struct {
	ID       string
	Title    string
	Pages    []*Page
	Created  time.Time
	Modified time.Time
}

// NewNotebook creates an empty notebook with a fresh ID.
func NewNotebook(title string) *Notebook {
	ts := now()
	return &Notebook{
		ID:       uuid.New().String(),
		Title:    title,
		Pages:    make([]*Page, 0),
		Created:  ts,
		Modified: ts,
	}
}

// AddPage appends a page to the end of the notebook and renumbers.
func (n *Notebook) AddPage(p *Page) {
	n.Pages = append(n.Pages, p)
	n.Modified = now()
	n.renumber()
}

// RemovePage removes the page with the given ID and renumbers the
// remaining pages. The second return value is false if no page with
// that ID exists.
func (n *Notebook) RemovePage(id string) (*Page, bool) {
	for i, p := range n.Pages {
		if p.ID == id {
			n.Pages = append(n.Pages[:i], n.Pages[i+1:]...)
			n.Modified = now()
			n.renumber()
			return p, true
		}
	}

	return nil, false
}

// Page looks up a page by ID.
// Page IDs are unique within a notebook, so there is at most one match.
func (n *Notebook) Page(id string) (*Page, bool) {
	for _, p := range n.Pages {
		if p.ID == id {
			return p, true
		}
	}

	return nil, false
}

// UpdatePage replaces title and content of the page with the given ID.
// It returns false (and leaves the notebook untouched) if no such page
// exists; callers must check the result.
func (n *Notebook) UpdatePage(id, title, content string) bool {
	p, ok := n.Page(id)
	if !ok {
		return false
	}

	p.update(title, content)
	n.Modified = now()
	return true
}

// ReorderPage moves the page at index from to index to.
// Out-of-range indices leave the notebook unchanged; the return value
// tells whether anything moved.
func (n *Notebook) ReorderPage(from, to int) bool {
	if from < 0 || from >= len(n.Pages) {
		return false
	}
	if to < 0 || to >= len(n.Pages) {
		return false
	}

	p := n.Pages[from]
	n.Pages = append(n.Pages[:from], n.Pages[from+1:]...)
	n.Pages = append(n.Pages, nil)
	copy(n.Pages[to+1:], n.Pages[to:])
	n.Pages[to] = p

	n.renumber()
	n.Modified = now()
	return true
}

// renumber does a full pass over all pages, assigning 1-based numbers
// in list order. A full pass is always consistent, regardless of which
// mutation triggered it.
func (n *Notebook) renumber() {
	for i, p := range n.Pages {
		p.setNumber(i + 1)
	}
}

func (n *Notebook) Validate() error {
	if n.ID == "" {
		return NewValidationError("notebook has no id")
	}

	seen := make(map[string]bool)
	for i, p := range n.Pages {
		err := p.Validate()
		if err != nil {
			return err
		}

		if seen[p.ID] {
			return NewValidationError("duplicate page id %q", p.ID)
		}
		seen[p.ID] = true

		// Number 0 (=unset) is allowed for freshly parsed pages.
		if p.Number != 0 && p.Number != i+1 {
			return NewValidationError("page %q has number %v, expected %v", p.ID, p.Number, i+1)
		}
	}

	return nil
}
