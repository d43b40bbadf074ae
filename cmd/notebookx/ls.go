package main

import (
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/notebookx/notebookx"
)

const notebookExt = ".txt"

func doLs(dir string) error {
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		return err
	}

	storage := notebookx.NewFilesystemStorage(dir)
	dateFormat := "Jan 02 2006, 15:04"

	found := false
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != notebookExt {
			continue
		}

		n, err := notebookx.Load(storage, entry.Name())
		if err != nil {
			fmt.Printf("%v  (unreadable: %v)\n", entry.Name(), err)
			continue
		}

		found = true
		fmt.Printf("%v  %2d pages  %v  | %v\n",
			n.Modified.Format(dateFormat),
			len(n.Pages),
			entry.Name(),
			n.Title)
	}

	if !found {
		fmt.Println("Found no notebooks.")
	}

	return nil
}
