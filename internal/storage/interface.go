package storage

import "io"

// Interface abstracts cover-image storage backends. The local implementation
// serves files through the HTTP server; a cloud backend would return object
// URLs instead.
type Interface interface {
	// Save stores the file under key.
	Save(key string, reader io.Reader) error

	// Open returns the file for reading.
	Open(key string) (io.ReadCloser, error)

	// Delete removes the file. Deleting a missing key is not an error.
	Delete(key string) error

	// URL returns the public URL the file is served from.
	URL(key string) string
}
