package apiclient

import "fmt"

// APIError is the typed failure raised for every non-2xx response. Message
// carries the server-reported error when the body has one, Status the HTTP
// status code, and Details the decoded error body when it was valid JSON.
type APIError struct {
	Message string
	Status  int
	Details map[string]any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}
