package notebookx

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func TestFilesystemStorageRoundTrip(t *testing.T) {
	dir, err := ioutil.TempDir("", "notebookx")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	storage := NewFilesystemStorage(dir)

	n := NewNotebook("Stored")
	n.AddPage(NewPage("One", "some content", 0))

	err = Save(storage, "stored.txt", n)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(storage, "stored.txt")
	if err != nil {
		t.Fatal(err)
	}

	if loaded.ID != n.ID {
		t.Errorf("unexpected notebook id: %q", loaded.ID)
	}
	if len(loaded.Pages) != 1 {
		t.Fatalf("unexpected page count: %v", len(loaded.Pages))
	}
	if loaded.Pages[0].Content != "some content" {
		t.Errorf("unexpected page content: %q", loaded.Pages[0].Content)
	}

	// the write must not leave temp files behind
	entries, err := ioutil.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("unexpected files in storage dir: %v", len(entries))
	}
}

func TestFilesystemStorageNotFound(t *testing.T) {
	dir, err := ioutil.TempDir("", "notebookx")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	storage := NewFilesystemStorage(dir)

	_, err = Load(storage, "missing.txt")
	if err == nil {
		t.Fatalf("loading a missing document should fail")
	}
	if !IsNotFound(err) {
		t.Errorf("expected a not-found error, got: %v", err)
	}
}

func TestFilesystemStorageLoadsMalformed(t *testing.T) {
	dir, err := ioutil.TempDir("", "notebookx")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "damaged.txt")
	err = ioutil.WriteFile(path, []byte("no markers at all"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	storage := NewFilesystemStorage(dir)
	n, err := Load(storage, "damaged.txt")
	if err != nil {
		t.Fatalf("malformed documents still load: %v", err)
	}

	if len(n.Pages) != 1 {
		t.Fatalf("unexpected page count: %v", len(n.Pages))
	}
	if n.Pages[0].Content != "no markers at all" {
		t.Errorf("unexpected page content: %q", n.Pages[0].Content)
	}
}
