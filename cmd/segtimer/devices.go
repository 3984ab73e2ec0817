package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/segtimer/internal/config"
	"github.com/muurk/segtimer/internal/discovery"
	"github.com/muurk/segtimer/internal/logging"
	"github.com/muurk/segtimer/internal/timer"
	"github.com/muurk/segtimer/internal/ui"
)

// Registry command flags
var (
	scanWait         time.Duration
	scanSave         bool
	addSetDefault    bool
	addShowTimeRoute string
)

func init() {
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(devicesCmd)

	devicesCmd.AddCommand(devicesListCmd)
	devicesCmd.AddCommand(devicesAddCmd)
	devicesCmd.AddCommand(devicesRemoveCmd)
	devicesCmd.AddCommand(devicesDefaultCmd)

	scanCmd.Flags().DurationVar(&scanWait, "wait", 0, "How long to listen for timers (default: discover_timeout from config)")
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "Add discovered timers to the device registry")

	devicesAddCmd.Flags().BoolVar(&addSetDefault, "default", false, "Make this the default device")
	devicesAddCmd.Flags().StringVar(&addShowTimeRoute, "show-time-route", "", "Route used to show the clock (default: "+timer.RouteOff+")")
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover timers on the local network",
	Long: `Discover timers using mDNS/DNS-SD.

Timers advertise an HTTP service under a hostname such as
segtimer-kitchen.local. Use --save to add what is found to the registry.`,
	Example: `  segtimer scan
  segtimer scan --wait 10s --save`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	reg, path, err := loadRegistry()
	if err != nil {
		return err
	}

	wait := scanWait
	if wait <= 0 {
		wait = time.Duration(reg.Preferences.DiscoverTimeout) * time.Second
	}
	if wait <= 0 {
		wait = discovery.DefaultScanTimeout
	}

	out := cmd.OutOrStdout()
	printer := ui.NewPrinter(out)

	var devices []*discovery.Device
	err = ui.RunWithSpinner(cmd.Context(), out, fmt.Sprintf("Scanning for timers (%s)...", wait), func(ctx context.Context) error {
		var scanErr error
		devices, scanErr = discovery.ScanForDevices(ctx, wait)
		return scanErr
	})
	if err != nil {
		printer.PrintFailure("Scan failed", err, []string{
			"Check that multicast traffic is allowed on this network",
			"Use --device with the timer's IP address instead",
		})
		return &reportedError{err: fmt.Errorf("scan failed: %w", err)}
	}

	if len(devices) == 0 {
		printer.PrintWarning("No timers found",
			ui.Detail{Key: "Listened", Value: wait.String()},
			ui.Detail{Key: "Hint", Value: "try a longer --wait"})
		return nil
	}

	rows := make([]ui.Detail, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, ui.Detail{Key: d.Name, Value: d.BaseURL()})
		logging.Debug("Discovered timer",
			zap.String("name", d.Name),
			zap.String("hostname", d.Hostname),
			zap.String("url", d.BaseURL()))
	}
	printer.PrintList(fmt.Sprintf("Discovered timers (%d)", len(devices)), rows)

	if !scanSave {
		return nil
	}
	for _, d := range devices {
		reg.MarkSeen(d.Name, d.BaseURL())
		reg.GetDevice(d.Name).Hostname = d.Hostname
	}
	if reg.Preferences.DefaultDevice == "" && len(devices) == 1 {
		reg.Preferences.DefaultDevice = devices[0].Name
	}
	if err := reg.Save(path); err != nil {
		return fmt.Errorf("failed to save registry: %w", err)
	}
	printer.PrintSuccess("Registry updated", ui.Detail{Key: "File", Value: path})
	return nil
}

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Manage the device registry",
}

var devicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered devices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := loadRegistry()
		if err != nil {
			return err
		}

		rows := make([]ui.Detail, 0, len(reg.Devices))
		for _, name := range reg.DeviceNames() {
			value := reg.Devices[name].URL
			if name == reg.Preferences.DefaultDevice {
				value += " (default)"
			}
			rows = append(rows, ui.Detail{Key: name, Value: value})
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintList("Devices", rows)
		return nil
	},
}

var devicesAddCmd = &cobra.Command{
	Use:   "add <name> <url>",
	Short: "Register a device",
	Long: `Register a device under a name.

Headers given with --header are stored with the device and sent on
every request to it.`,
	Example: `  segtimer devices add kitchen 192.168.1.40 --default
  segtimer devices add office http://timer.lan:8080 -H "Authorization: Bearer 0123"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, url := args[0], args[1]
		if strings.ContainsAny(name, ".:/") {
			return fmt.Errorf("invalid device name %q: names cannot contain '.', ':' or '/'", name)
		}
		if !strings.Contains(url, "://") {
			url = "http://" + url
		}

		headers, err := parseHeaderFlags(headerFlags)
		if err != nil {
			return err
		}

		reg, path, err := loadRegistry()
		if err != nil {
			return err
		}

		device := &config.Device{URL: url}
		if len(headers) > 0 {
			device.Headers = headers
		}
		if addShowTimeRoute != "" {
			device.Routes = &timer.Routes{ShowCurrentTime: addShowTimeRoute}
		}
		reg.SetDevice(name, device)
		if addSetDefault || reg.Preferences.DefaultDevice == "" {
			reg.Preferences.DefaultDevice = name
		}

		if err := reg.Save(path); err != nil {
			return fmt.Errorf("failed to save registry: %w", err)
		}

		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Device added",
			ui.Detail{Key: "Name", Value: name},
			ui.Detail{Key: "URL", Value: url})
		return nil
	},
}

var devicesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a registered device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, path, err := loadRegistry()
		if err != nil {
			return err
		}
		if !reg.RemoveDevice(args[0]) {
			return fmt.Errorf("unknown device %q", args[0])
		}
		if err := reg.Save(path); err != nil {
			return fmt.Errorf("failed to save registry: %w", err)
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Device removed", ui.Detail{Key: "Name", Value: args[0]})
		return nil
	},
}

var devicesDefaultCmd = &cobra.Command{
	Use:   "default <name>",
	Short: "Set the default device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, path, err := loadRegistry()
		if err != nil {
			return err
		}
		if reg.GetDevice(args[0]) == nil {
			return fmt.Errorf("unknown device %q", args[0])
		}
		reg.Preferences.DefaultDevice = args[0]
		if err := reg.Save(path); err != nil {
			return fmt.Errorf("failed to save registry: %w", err)
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Default device set", ui.Detail{Key: "Name", Value: args[0]})
		return nil
	},
}
