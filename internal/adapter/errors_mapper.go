package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// cloudinaryError is the error envelope returned by the upload API.
type cloudinaryError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := strings.TrimSpace(string(resp.Body()))
	if apiErr, ok := resp.Error().(*cloudinaryError); ok && apiErr.Error.Message != "" {
		message = apiErr.Error.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch {
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrImageHostUnavailable, resp.StatusCode(), message)
	case resp.StatusCode() == http.StatusTooManyRequests:
		return fmt.Errorf("%w: http %d: %s", ErrImageHostUnavailable, resp.StatusCode(), message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrImageHostRejected, resp.StatusCode(), message)
	}
}
