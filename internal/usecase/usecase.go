// Package usecase defines the application use case interfaces and their
// input types.
package usecase

// ListInput carries the list parameters accepted by collection use cases.
// Page and page size are clamped to the configured bounds by the
// implementation.
type ListInput struct {
	Search   string
	Ordering string
	Page     int
	PageSize int
}
