package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"syscall"
)

// RequestError is returned when the device answers with a status outside
// [200, 300). The response body is not kept.
type RequestError struct {
	StatusCode int    // HTTP status code
	StatusText string // Reason phrase from the status line (e.g. "Not Found")
}

// Error returns the server's status text.
func (e *RequestError) Error() string {
	if e.StatusText != "" {
		return e.StatusText
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// newRequestError extracts the reason phrase from a status line such as
// "404 Not Found". A bare or missing phrase falls back to http.StatusText.
func newRequestError(statusCode int, status string) *RequestError {
	text := strings.TrimSpace(strings.TrimPrefix(status, strconv.Itoa(statusCode)))
	if text == "" {
		text = http.StatusText(statusCode)
	}
	return &RequestError{StatusCode: statusCode, StatusText: text}
}

// IsRequestError checks if an error is an HTTP status failure
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}

// StatusCode returns the HTTP status code carried by err, or 0 when err is
// not a RequestError.
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}

// TroubleshootingHints returns user-facing advice for a failed call.
func TroubleshootingHints(err error) []string {
	if err == nil {
		return nil
	}

	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		switch {
		case reqErr.StatusCode == http.StatusUnauthorized || reqErr.StatusCode == http.StatusForbidden:
			return []string{
				"The device rejected the credentials",
				"Pass an Authorization header with --header",
			}
		case reqErr.StatusCode == http.StatusNotFound:
			return []string{
				"The device does not serve this route",
				"Check the firmware version and the configured routes",
			}
		case reqErr.StatusCode >= 500:
			return []string{
				fmt.Sprintf("The device returned HTTP %d", reqErr.StatusCode),
				"Try power cycling the device",
			}
		default:
			return []string{fmt.Sprintf("The device returned HTTP %d. Check the command arguments", reqErr.StatusCode)}
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return []string{
			"The device did not respond in time",
			"Check that the device is powered on",
			"Try a longer --timeout",
		}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return []string{
			fmt.Sprintf("Could not resolve %s", dnsErr.Name),
			"Use the device IP address instead of its hostname",
			"Run 'segtimer scan' to find devices on the network",
		}
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return []string{
			"The device refused the connection",
			"Verify the port in the device URL",
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return []string{
			"Network communication failed",
			"Check that you are on the same network as the device",
		}
	}

	return nil
}
