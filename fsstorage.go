package notebookx

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/notebookx/notebookx/internal/fs"
	"github.com/notebookx/notebookx/internal/logging"
)

type fsStorage struct {
	Base string
}

// NewFilesystemStorage creates a storage that keeps each document as a
// single file under the given base directory.
func NewFilesystemStorage(base string) Storage {
	return &fsStorage{base}
}

func (f *fsStorage) ReadDocument(name string) ([]byte, error) {
	path := filepath.Join(f.Base, name)
	data, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewNotFound("no document %q", name)
		}
		return nil, err
	}

	return data, nil
}

// WriteDocument writes to a temporary file first and moves it in place,
// so a failed write cannot leave a half-written document behind.
func (f *fsStorage) WriteDocument(name string, data []byte) error {
	tmp, err := ioutil.TempFile(f.Base, name+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	_, err = tmp.Write(data)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}

	path := filepath.Join(f.Base, name)
	logging.Debug("Write document %q", path)
	return fs.Replace(tmp.Name(), path)
}
