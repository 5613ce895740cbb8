package catalog

import "fmt"

// ErrInvalidCatalog indicates a catalog file that does not parse or does
// not match its schema.
type ErrInvalidCatalog struct {
	Path string
	Err  error
}

func (e *ErrInvalidCatalog) Error() string {
	return fmt.Sprintf("invalid catalog %s: %v", e.Path, e.Err)
}

func (e *ErrInvalidCatalog) Unwrap() error { return e.Err }
