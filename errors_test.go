package notebookx

import (
	"errors"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	err := errors.New("some error")
	if IsNotFound(err) {
		t.Log("custom error type NotFound is wrongly recognized")
		t.Fail()
	}

	err = asNotFound(err)
	if !IsNotFound(err) {
		t.Log("custom error type NotFound is not recognized")
		t.Fail()
	}
}

func TestWrap(t *testing.T) {
	err := errors.New("inner")
	wrapped := Wrap(err, "context for %v", "outer")

	if wrapped.Error() != "context for outer: inner" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}
}
