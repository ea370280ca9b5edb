package pipeline

import "fmt"

// DiscoveryError means the scan root cannot be used at all. It aborts the run
// before any transcription is attempted.
type DiscoveryError struct {
	Root string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discover inputs in %s: %v", e.Root, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// PersistenceError means a transcript artifact could not be written.
// Fatal to the whole run, not just the item.
type PersistenceError struct {
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist transcript %s: %v", e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
