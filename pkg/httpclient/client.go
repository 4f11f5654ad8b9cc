package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/arthur-debert/gig/internal/version"
	"github.com/arthur-debert/gig/pkg/errors"
	"github.com/arthur-debert/gig/pkg/logging"
)

// Message prefixes for client failures
const (
	MsgCallFailed   = "An error occurred during the API call: "
	MsgBodyDecoding = "An error occurred while decoding the API response body: "
)

// Getter fetches a path relative to a server and returns the body text
type Getter interface {
	Get(ctx context.Context, path string) (string, error)
}

// ErrorClass classifies client failures
type ErrorClass int

const (
	// ClassCall covers transport errors, timeouts and non-2xx statuses
	ClassCall ErrorClass = iota
	// ClassBodyDecoding covers unreadable and non UTF-8 bodies
	ClassBodyDecoding
	// ClassOther covers everything else, such as malformed URLs
	ClassOther
)

// String returns the string representation of the class
func (c ErrorClass) String() string {
	switch c {
	case ClassCall:
		return "call"
	case ClassBodyDecoding:
		return "body-decoding"
	default:
		return "other"
	}
}

// Error is the classified cause wrapped by client failures
type Error struct {
	Class      ErrorClass
	URL        string
	StatusCode int
	Cause      error
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Cause.Error()
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Client issues GET requests against a base URL
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// New creates a client for baseURL with the given request timeout
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		UserAgent: "gig/" + version.Version,
	}
}

// URLFor joins the base URL and path
func (c *Client) URLFor(path string) string {
	if path == "" {
		return c.BaseURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.BaseURL + path
}

// Get issues one GET request and returns the body as text
func (c *Client) Get(ctx context.Context, path string) (string, error) {
	logger := logging.GetLogger("httpclient")
	url := c.URLFor(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", failure(ClassOther, url, 0, err)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	logger.Debug().Str("url", url).Dur("timeout", c.HTTPClient.Timeout).Msg("GET")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Debug().Err(err).Str("url", url).Msg("Request failed")
		return "", failure(ClassCall, url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Debug().Int("status", resp.StatusCode).Str("url", url).Msg("Unexpected status")
		return "", failure(ClassCall, url, resp.StatusCode,
			fmt.Errorf("%s: status code %d", url, resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", failure(ClassBodyDecoding, url, resp.StatusCode, err)
	}
	if !utf8.Valid(data) {
		return "", failure(ClassBodyDecoding, url, resp.StatusCode,
			fmt.Errorf("%s: response body is not valid UTF-8", url))
	}

	logger.Debug().Int("bytes", len(data)).Str("url", url).Msg("Response received")
	return string(data), nil
}

func failure(class ErrorClass, url string, status int, cause error) *errors.ProgramExit {
	classified := &Error{Class: class, URL: url, StatusCode: status, Cause: cause}

	switch class {
	case ClassBodyDecoding:
		return errors.Wrap(classified, errors.ExitBodyParsing, MsgBodyDecoding)
	case ClassCall:
		return errors.Wrap(classified, errors.ExitHTTPClient, MsgCallFailed)
	default:
		return errors.Wrap(classified, errors.ExitGeneric, MsgCallFailed)
	}
}
