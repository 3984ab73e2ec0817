// Package ui renders segtimer command output.
//
// Output follows a "run once and exit" pattern: a spinner while the device call
// is in flight (only when stdout is a terminal), then a single result box.
//
//	printer := ui.NewPrinter(os.Stdout)
//	err := ui.RunWithSpinner(ctx, os.Stdout, "Starting timer", func(ctx context.Context) error {
//	    return client.StartTimer(ctx, t, nil)
//	})
//	if err != nil {
//	    printer.PrintFailure("Start timer", err, httpclient.TroubleshootingHints(err))
//	    return err
//	}
//	printer.PrintSuccess("Timer started", ui.Detail{Key: "Duration", Value: t.String()})
//
// Logging is controlled separately via SEGTIMER_LOG_LEVEL so that zap output
// does not interleave with the boxes by default.
package ui
