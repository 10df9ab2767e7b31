package cfb

import "fmt"

// SourceUnavailableError reports that an upstream fetch failed with no
// usable cache to fall back on. Resource names the data that could not be
// served.
type SourceUnavailableError struct {
	Resource string
	Err      error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Resource, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}
