package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/segtimer/internal/config"
	"github.com/muurk/segtimer/internal/httpclient"
	"github.com/muurk/segtimer/internal/logging"
	"github.com/muurk/segtimer/internal/timer"
	"github.com/muurk/segtimer/internal/ui"
	"github.com/muurk/segtimer/internal/version"
)

var configFlag string

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Config file (default: <user config dir>/segtimer/config.yaml)")
}

// registryPath returns --config or the OS default location
func registryPath() (string, error) {
	if configFlag != "" {
		return configFlag, nil
	}
	return config.GetConfigPath()
}

func loadRegistry() (*config.Registry, string, error) {
	path, err := registryPath()
	if err != nil {
		return nil, "", err
	}
	reg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return reg, path, nil
}

// parseHeaderFlags turns "Key: Value" strings into a header map
func parseHeaderFlags(values []string) (map[string]string, error) {
	headers := make(map[string]string, len(values))
	for _, v := range values {
		key, value, ok := strings.Cut(v, ":")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid header %q: want \"Key: Value\"", v)
		}
		headers[key] = strings.TrimSpace(value)
	}
	return headers, nil
}

// deviceTarget is a resolved device ready to receive calls
type deviceTarget struct {
	label    string
	client   *timer.Client
	registry *config.Registry
}

// newTarget resolves --device and builds a client with headers layered as
// User-Agent, then registry headers, then --header flags.
func newTarget() (*deviceTarget, error) {
	reg, _, err := loadRegistry()
	if err != nil {
		return nil, err
	}

	name, device, err := reg.Resolve(deviceFlag)
	if err != nil {
		return nil, err
	}

	extra, err := parseHeaderFlags(headerFlags)
	if err != nil {
		return nil, err
	}

	opts := []timer.ClientOption{
		timer.WithHTTPOptions(
			httpclient.WithTimeout(timeoutFlag),
			httpclient.WithHeaders(map[string]string{"User-Agent": version.UserAgent()}),
			httpclient.WithHeaders(device.Headers),
			httpclient.WithHeaders(extra),
		),
	}
	if device.Routes != nil {
		opts = append(opts, timer.WithRoutes(*device.Routes))
	}

	label := name
	if label == "" {
		label = device.URL
	}

	logging.Debug("Resolved device",
		zap.String("device", label),
		zap.String("url", device.URL))

	return &deviceTarget{
		label:    label,
		client:   timer.NewClient(device.URL, opts...),
		registry: reg,
	}, nil
}

// colorSelection builds the optional color for clock and timer commands.
// No flags falls back to the preferred color, if any.
func colorSelection(values []string, reg *config.Registry) (*timer.ColorSelection, error) {
	if len(values) == 0 && reg != nil && reg.Preferences != nil && reg.Preferences.DefaultColor != "" {
		values = []string{reg.Preferences.DefaultColor}
	}

	colors, err := timer.ParseColors(values)
	if err != nil {
		return nil, err
	}

	switch len(colors) {
	case 0:
		return nil, nil
	case 1:
		return timer.Single(colors[0]), nil
	default:
		return timer.Sequence(colors...), nil
	}
}

func formatColors(colors []timer.RGBColor) string {
	hex := make([]string, len(colors))
	for i, c := range colors {
		hex[i] = c.Hex()
	}
	return strings.Join(hex, " ")
}

// deviceCall runs one device operation with a spinner and renders the outcome
type deviceCall struct {
	action  string
	success string
	details []ui.Detail
	run     func(ctx context.Context, c *timer.Client) error
}

func runDeviceCall(cmd *cobra.Command, target *deviceTarget, call deviceCall) error {
	out := cmd.OutOrStdout()
	printer := ui.NewPrinter(out)

	err := ui.RunWithSpinner(cmd.Context(), out, call.action+"...", func(ctx context.Context) error {
		return call.run(ctx, target.client)
	})
	if err != nil {
		logging.Debug("Device call failed",
			zap.String("action", call.action),
			zap.String("device", target.label),
			zap.Error(err))
		printer.PrintFailure(call.action+" failed", err, httpclient.TroubleshootingHints(err))
		return &reportedError{err: fmt.Errorf("%s: %w", strings.ToLower(call.action), err)}
	}

	details := append([]ui.Detail{{Key: "Device", Value: target.label}}, call.details...)
	printer.PrintSuccess(call.success, details...)
	return nil
}
