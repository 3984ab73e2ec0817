// Package timer is a typed client for a networked seven-segment display/timer.
//
// Every method maps to one fixed device route and payload shape and issues a
// single request through package httpclient:
//
//	c := timer.NewClient("http://192.168.1.40")
//
//	red := timer.RGBColor{R: 255}
//	if err := c.StartTimer(ctx, timer.Time{Minutes: 5}, timer.Single(red)); err != nil {
//	    return err
//	}
//
// sends
//
//	POST /start-timer
//	{"time":{"minutes":5},"color":{"r":255,"g":0,"b":0}}
//
// # Operations
//
//	Off                   GET  /off
//	ShowCurrentTime       POST /off                    {"color":...}
//	StartTimer            POST /start-timer            {"time":...,"color":...}
//	CancelTimer           POST /cancel-timer
//	ChangeColor           POST /change-color           {"color":...}
//	ChangeMultipleColors  POST /change-multiple-colors {"colors":[...]}
//	StartAnimation        POST /start-animation        {"animation":...,"colors":[...]}
//	StopAnimation         POST /stop-animation
//
// Paths can be replaced per client with WithRoutes for firmware that differs
// from the stock build.
//
// Payloads are not validated locally; the device is the authority on what it
// accepts. Failures are *httpclient.RequestError for non-2xx replies and the
// transport's own error otherwise.
package timer
