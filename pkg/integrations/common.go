package integrations

import (
	"net/http"
	"time"

	errs "github.com/matzehuels/linguist/pkg/errors"
)

const httpTimeout = 30 * time.Second

// UserAgent is sent with every request.
const UserAgent = "linguist-go (https://github.com/matzehuels/linguist)"

// Sentinels carry error codes so callers can map them to exit or HTTP
// statuses with [errs.GetCode]. Match them with errors.Is.
var (
	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errs.New(errs.ErrCodeNotFound, "resource not found")

	// ErrNetwork is returned for connection errors and non-2xx responses.
	ErrNetwork = errs.New(errs.ErrCodeNetwork, "network error")

	// ErrTimeout is returned when a request exceeds the client timeout.
	ErrTimeout = errs.New(errs.ErrCodeTimeout, "request timed out")
)

// NewHTTPClient creates an HTTP client with the standard timeout.
// languages.yml is several hundred kilobytes, hence the generous limit.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
