package gh

import "fmt"

// APIError is any non-200 response from the GitHub API. The raw body
// is kept for diagnosis.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github api returned status %d: %s", e.Status, e.Body)
}

// MalformedResponseError is a 200 response missing a field the rest of
// the run depends on.
type MalformedResponseError struct {
	Field string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("github response is missing %s", e.Field)
}
