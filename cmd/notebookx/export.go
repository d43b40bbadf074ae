package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/notebookx/notebookx"
	"github.com/notebookx/notebookx/pkg/export"
)

const (
	checkmark = "\u2713"
	crossmark = "\u2717"
	ellipsis  = "\u2026"
)

func doExport(dir string, files []string, outDir string) error {
	storage := notebookx.NewFilesystemStorage(dir)

	var group errgroup.Group
	for _, file := range files {
		file := file
		group.Go(func() error {
			return exportPdf(storage, file, outDir)
		})
	}
	return group.Wait()
}

func exportPdf(storage notebookx.Storage, file, outDir string) error {
	fmt.Printf("%v load %q\n", ellipsis, file)
	n, err := notebookx.Load(storage, file)
	if err != nil {
		fmt.Printf("%v Failed to load %q: %v\n", crossmark, file, err)
		return err
	}

	name := strings.TrimSuffix(file, filepath.Ext(file)) + ".pdf"
	path := filepath.Join(outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = export.PDF(n, f)
	if err != nil {
		fmt.Printf("%v Failed to render %q: %v\n", crossmark, file, err)
		return err
	}

	fmt.Printf("%v notebook %q saved as %q.\n", checkmark, n.Title, path)
	return nil
}
