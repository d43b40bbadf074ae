package main

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/notebookx/notebookx"
)

// doImport reads a plain text file and turns it into a notebook,
// splitting the text over as many pages as the page capacity requires.
func doImport(dir, src, dst, title string) error {
	data, err := ioutil.ReadFile(src)
	if err != nil {
		return err
	}

	if title == "" {
		base := filepath.Base(src)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	n := notebookx.NewNotebook(title)
	n.AddPage(notebookx.NewPage(title, string(data), 0))

	// Each SplitPage call performs at most one split, so keep going
	// until the last continuation page fits.
	page := n.Pages[0]
	for {
		cont, ok := n.SplitPage(page.ID, notebookx.PageCapacity)
		if !ok {
			break
		}
		page = cont
	}

	storage := notebookx.NewFilesystemStorage(dir)
	err = notebookx.Save(storage, dst, n)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %v as %q (%d pages)\n", src, title, len(n.Pages))
	return nil
}
