package internal

import "fmt"

// LoadError represents errors reading or decoding the case source
type LoadError struct {
	Path string
	Line int // 1-based, 0 when the failure is not tied to a single line
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load error [line %d] %s: %v", e.Line, e.Path, e.Err)
	}
	return fmt.Sprintf("load error %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// StorageError represents errors accessing annotation storage
type StorageError struct {
	Path string
	Op   string // "open", "read", "decode", "encode", "write", "rename"
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// TutorialError represents errors reading or decoding the tutorial file
// A missing tutorial file is not an error and never produces one of these
type TutorialError struct {
	Path string
	Err  error
}

func (e *TutorialError) Error() string {
	return fmt.Sprintf("tutorial error %s: %v", e.Path, e.Err)
}

func (e *TutorialError) Unwrap() error {
	return e.Err
}

// ExportError represents errors during export
type ExportError struct {
	Format string
	Path   string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s] %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}
