package store

import "fmt"

// NotFoundError indicates no record exists with the requested name.
type NotFoundError struct {
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No such pattern '%s'", e.Name)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// MalformedError indicates a record file exists but could not be
// decoded.
type MalformedError struct {
	Path string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("Pattern file '%s' is malformed", e.Path)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// AlreadyExistsError indicates a save conflicted with an existing
// record file. The underlying cause is kept since the create-exclusive
// open can also fail for other reasons (permissions, bad name).
type AlreadyExistsError struct {
	Path string
	Err  error
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("Failed to create pattern file '%s': file may already exist", e.Path)
}

func (e *AlreadyExistsError) Unwrap() error { return e.Err }
