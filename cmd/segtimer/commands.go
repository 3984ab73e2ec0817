package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/muurk/segtimer/internal/timer"
	"github.com/muurk/segtimer/internal/ui"
)

// Command flags
var (
	timeColors  []string
	timerColors []string
)

func init() {
	rootCmd.AddCommand(offCmd)
	rootCmd.AddCommand(timeCmd)
	rootCmd.AddCommand(timerCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(colorsCmd)
	rootCmd.AddCommand(animationCmd)

	timerCmd.AddCommand(timerStartCmd)
	timerCmd.AddCommand(timerCancelCmd)
	animationCmd.AddCommand(animationStartCmd)
	animationCmd.AddCommand(animationStopCmd)

	timeCmd.Flags().StringArrayVarP(&timeColors, "color", "c", nil, "Display color; repeat for one color per digit")
	timerStartCmd.Flags().StringArrayVarP(&timerColors, "color", "c", nil, "Display color; repeat for one color per digit")
}

var offCmd = &cobra.Command{
	Use:   "off",
	Short: "Turn the display off",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := newTarget()
		if err != nil {
			return err
		}
		return runDeviceCall(cmd, target, deviceCall{
			action:  "Turning display off",
			success: "Display off",
			run: func(ctx context.Context, c *timer.Client) error {
				return c.Off(ctx)
			},
		})
	},
}

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Show the current time",
	Long: `Switch the display to clock mode.

Without --color the preferred color from the config file is used, or the
device keeps its current color.`,
	Example: `  segtimer time
  segtimer time --color "#ff8800"
  segtimer time -c "#ff0000" -c 0,255,0 -c 0,0,255 -c "#fff"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := newTarget()
		if err != nil {
			return err
		}
		sel, err := colorSelection(timeColors, target.registry)
		if err != nil {
			return err
		}
		return runDeviceCall(cmd, target, deviceCall{
			action:  "Showing current time",
			success: "Clock shown",
			details: selectionDetails(sel),
			run: func(ctx context.Context, c *timer.Client) error {
				return c.ShowCurrentTime(ctx, sel)
			},
		})
	},
}

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Start or cancel a countdown",
}

var timerStartCmd = &cobra.Command{
	Use:   "start <duration>",
	Short: "Start a countdown",
	Long: `Start a countdown on the display.

The duration is either a Go duration ("5m", "1h30m", "90s") or a clock
value ("05:30", "1:00:00").`,
	Example: `  segtimer timer start 5m
  segtimer timer start 25:00 --color "#ff0000"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := timer.ParseTime(args[0])
		if err != nil {
			return err
		}
		target, err := newTarget()
		if err != nil {
			return err
		}
		sel, err := colorSelection(timerColors, target.registry)
		if err != nil {
			return err
		}
		return runDeviceCall(cmd, target, deviceCall{
			action:  "Starting timer",
			success: "Timer started",
			details: append([]ui.Detail{{Key: "Duration", Value: t.String()}}, selectionDetails(sel)...),
			run: func(ctx context.Context, c *timer.Client) error {
				return c.StartTimer(ctx, t, sel)
			},
		})
	},
}

var timerCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the running countdown",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := newTarget()
		if err != nil {
			return err
		}
		return runDeviceCall(cmd, target, deviceCall{
			action:  "Cancelling timer",
			success: "Timer cancelled",
			run: func(ctx context.Context, c *timer.Client) error {
				return c.CancelTimer(ctx)
			},
		})
	},
}

var colorCmd = &cobra.Command{
	Use:   "color <color>",
	Short: "Set the display color",
	Example: `  segtimer color "#00ff88"
  segtimer color 255,136,0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		color, err := timer.ParseColor(args[0])
		if err != nil {
			return err
		}
		target, err := newTarget()
		if err != nil {
			return err
		}
		return runDeviceCall(cmd, target, deviceCall{
			action:  "Changing color",
			success: "Color changed",
			details: []ui.Detail{{Key: "Color", Value: color.Hex()}},
			run: func(ctx context.Context, c *timer.Client) error {
				return c.ChangeColor(ctx, color)
			},
		})
	},
}

var colorsCmd = &cobra.Command{
	Use:     "colors <color>...",
	Short:   "Set one color per digit",
	Example: `  segtimer colors "#ff0000" "#00ff00" "#0000ff" "#ffffff"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		colors, err := timer.ParseColors(args)
		if err != nil {
			return err
		}
		target, err := newTarget()
		if err != nil {
			return err
		}
		return runDeviceCall(cmd, target, deviceCall{
			action:  "Changing colors",
			success: "Colors changed",
			details: []ui.Detail{{Key: "Colors", Value: formatColors(colors)}},
			run: func(ctx context.Context, c *timer.Client) error {
				return c.ChangeMultipleColors(ctx, colors)
			},
		})
	},
}

var animationCmd = &cobra.Command{
	Use:   "animation",
	Short: "Start or stop a built-in animation",
}

var animationStartCmd = &cobra.Command{
	Use:   "start <name> [color...]",
	Short: "Start an animation",
	Long: `Start one of the firmware's built-in animations.

The animation name is passed to the device as-is. Colors form the
animation's palette and may be omitted.`,
	Example: `  segtimer animation start rainbow
  segtimer animation start pulse "#ff0000" "#0000ff"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		animation := timer.Animation(args[0])
		colors, err := timer.ParseColors(args[1:])
		if err != nil {
			return err
		}
		target, err := newTarget()
		if err != nil {
			return err
		}
		details := []ui.Detail{{Key: "Animation", Value: string(animation)}}
		if len(colors) > 0 {
			details = append(details, ui.Detail{Key: "Colors", Value: formatColors(colors)})
		}
		return runDeviceCall(cmd, target, deviceCall{
			action:  "Starting animation",
			success: "Animation started",
			details: details,
			run: func(ctx context.Context, c *timer.Client) error {
				return c.StartAnimation(ctx, animation, colors)
			},
		})
	},
}

var animationStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running animation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := newTarget()
		if err != nil {
			return err
		}
		return runDeviceCall(cmd, target, deviceCall{
			action:  "Stopping animation",
			success: "Animation stopped",
			run: func(ctx context.Context, c *timer.Client) error {
				return c.StopAnimation(ctx)
			},
		})
	},
}

func selectionDetails(sel *timer.ColorSelection) []ui.Detail {
	if sel == nil {
		return nil
	}
	return []ui.Detail{{Key: "Color", Value: formatColors(sel.Colors())}}
}
