package fs

import (
	"io"
	"os"
)

// Replace moves the file at src over dst.
// It tries os.Rename() first and falls back on "copy and delete", which
// is needed when src and dst live on different file systems (e.g. a
// temp directory and the notebook directory).
//
// If src cannot be deleted after a successful copy, no error is
// returned and src remains as it was.
func Replace(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer w.Close()

	_, err = io.Copy(w, r)
	if err != nil {
		return err
	}

	os.Remove(src)
	return nil
}
