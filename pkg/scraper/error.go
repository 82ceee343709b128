package scraper

import "fmt"

// StatusError is returned when the remote server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response http status %d (%s):\n%s", e.StatusCode, e.Status, e.Body)
}

func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
