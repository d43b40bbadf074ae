package notebookx

// Storage reads and writes whole documents by name.
//
// The core never touches the filesystem itself; a Storage
// implementation is the collaborator that does, and it is the only
// place where an operation can fail with an I/O error. A read returns
// either the complete document or an error, never a partial result.
type Storage interface {
	// ReadDocument returns the full content of the named document.
	ReadDocument(name string) ([]byte, error)
	// WriteDocument replaces the named document with the given content.
	WriteDocument(name string, data []byte) error
}

// Save serializes the notebook and writes it through s.
func Save(s Storage, name string, n *Notebook) error {
	err := s.WriteDocument(name, MarshalNotebook(n))
	if err != nil {
		return Wrap(err, "cannot save notebook %q", name)
	}

	return nil
}

// Load reads the named document through s and parses it.
// A malformed document still loads (see UnmarshalNotebook), only a
// failed read is an error.
func Load(s Storage, name string) (*Notebook, error) {
	data, err := s.ReadDocument(name)
	if err != nil {
		return nil, err
	}

	return UnmarshalNotebook(data), nil
}
