package main

import (
	"fmt"

	"github.com/notebookx/notebookx"
)

func doNew(dir, file, title string) error {
	storage := notebookx.NewFilesystemStorage(dir)

	n := notebookx.NewNotebook(title)
	n.AddPage(notebookx.NewPage("New Page", "", 0))

	err := notebookx.Save(storage, file, n)
	if err != nil {
		return err
	}

	fmt.Printf("Created notebook %q in %v\n", title, file)
	return nil
}
