// Package httpclient is a small JSON-over-HTTP request layer.
//
// A Client stores one base URL. Each call joins a relative path onto it, merges
// headers, encodes an optional JSON body, sends exactly one request and
// classifies the response:
//
//	c := httpclient.New("http://192.168.1.40")
//
//	res, err := httpclient.Get[map[string]any](ctx, c, "/status", nil)
//	if err != nil {
//	    return err
//	}
//	if res.Parsed {
//	    fmt.Println(res.Value["state"])
//	} else {
//	    fmt.Println(res.Raw)
//	}
//
// # Responses
//
// Status codes in [200, 300) succeed. Any other status fails with a
// *RequestError whose message is the server's reason phrase. A successful body
// that is not valid JSON for the requested type is not an error: the Result
// carries the raw text with Parsed set to false.
//
// Errors from the transport (DNS, connection refused, context cancellation) are
// returned unchanged.
//
// # Headers
//
// Every request carries Content-Type: application/json. Headers given with
// WithHeaders, then per-call RequestOptions, are overlaid in that order; the
// last value for a key wins.
//
// No retries, caching or client-side timeouts are applied beyond the transport
// timeout and the caller's context.
package httpclient
