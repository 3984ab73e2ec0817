// Package logging provides structured logging for segtimer.
//
// This package wraps a global zap logger. Logging is silent by default so the
// CLI and the client library produce no output unless asked to:
//
//	export SEGTIMER_LOG_LEVEL=debug
//
// or, from code:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// The HTTP helpers log at debug level and mask Authorization headers:
//
//	logging.LogHTTPRequest(req.Method, req.URL, req.Header, len(req.Body))
//	logging.LogHTTPResponse(req.Method, req.URL, resp.StatusCode, len(resp.Body))
//
// Logs go to stderr in console format so they never mix with command output.
package logging
