package main

import (
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/notebookx/notebookx"
)

func main() {
	app := kingpin.New("notebookx", "NotebookX notebook tool")
	app.HelpFlag.Short('h')

	var (
		logLevel = app.Flag("log", "Log level").Default("warning").String()
		dir      = app.Flag("dir", "Notebook directory").Short('d').Default(".").String()
	)

	app.Command("ls", "List notebook files").Default()

	cat := app.Command("cat", "Show a notebook")
	catFile := cat.Arg("file", "Notebook file").Required().String()

	create := app.Command("new", "Create an empty notebook")
	var (
		newFile  = create.Arg("file", "Notebook file").Required().String()
		newTitle = create.Arg("title", "Notebook title").Required().String()
	)

	imp := app.Command("import", "Import a plain text file, split into pages")
	var (
		impSrc   = imp.Arg("src", "Text file to import").Required().String()
		impDst   = imp.Arg("file", "Notebook file to create").Required().String()
		impTitle = imp.Flag("title", "Notebook title").Short('t').String()
	)

	export := app.Command("export", "Export notebooks to PDF")
	var (
		expFiles = export.Arg("files", "Notebook files").Required().Strings()
		expOut   = export.Flag("output", "Output directory").Short('o').Default(".").String()
	)

	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	notebookx.SetLogLevel(*logLevel)

	var err error
	switch command {
	case "ls":
		err = doLs(*dir)
	case "cat":
		err = doCat(*dir, *catFile)
	case "new":
		err = doNew(*dir, *newFile, *newTitle)
	case "import":
		err = doImport(*dir, *impSrc, *impDst, *impTitle)
	case "export":
		err = doExport(*dir, *expFiles, *expOut)
	default:
		err = fmt.Errorf("unknown command: %q", command)
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
