package ingestion

import "fmt"

// DocumentError indicates a file that could not be converted to text.
type DocumentError struct {
	Path   string
	Format Format
	Cause  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("failed to extract %s text from %s: %v", e.Format, e.Path, e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// EmptyDocumentError indicates a document with no text after cleaning.
type EmptyDocumentError struct {
	Path string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("no job description text found in %s", e.Path)
}
