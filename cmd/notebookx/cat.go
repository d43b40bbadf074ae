package main

import (
	"fmt"
	"strings"

	"github.com/notebookx/notebookx"
)

func doCat(dir, file string) error {
	storage := notebookx.NewFilesystemStorage(dir)
	n, err := notebookx.Load(storage, file)
	if err != nil {
		return err
	}

	fmt.Println(n.Title)
	fmt.Println(strings.Repeat("-", len(n.Title)))

	for _, p := range n.Pages {
		fmt.Printf("\n[%d] %v\n\n", p.Number, p.Title)
		fmt.Println(p.Content)
	}

	return nil
}
