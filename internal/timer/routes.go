package timer

// Device routes served by the timer firmware.
const (
	RouteOff                  = "/off"
	RouteStartTimer           = "/start-timer"
	RouteCancelTimer          = "/cancel-timer"
	RouteChangeColor          = "/change-color"
	RouteChangeMultipleColors = "/change-multiple-colors"
	RouteStartAnimation       = "/start-animation"
	RouteStopAnimation        = "/stop-animation"
)

// Routes maps each facade operation to a device path.
type Routes struct {
	Off                  string `yaml:"off,omitempty"`
	ShowCurrentTime      string `yaml:"show_current_time,omitempty"`
	StartTimer           string `yaml:"start_timer,omitempty"`
	CancelTimer          string `yaml:"cancel_timer,omitempty"`
	ChangeColor          string `yaml:"change_color,omitempty"`
	ChangeMultipleColors string `yaml:"change_multiple_colors,omitempty"`
	StartAnimation       string `yaml:"start_animation,omitempty"`
	StopAnimation        string `yaml:"stop_animation,omitempty"`
}

// DefaultRoutes returns the routes of the stock firmware.
//
// Showing the current time is a POST to the off route: GET /off blanks the
// display, POST /off with an optional color returns it to clock mode.
func DefaultRoutes() Routes {
	return Routes{
		Off:                  RouteOff,
		ShowCurrentTime:      RouteOff,
		StartTimer:           RouteStartTimer,
		CancelTimer:          RouteCancelTimer,
		ChangeColor:          RouteChangeColor,
		ChangeMultipleColors: RouteChangeMultipleColors,
		StartAnimation:       RouteStartAnimation,
		StopAnimation:        RouteStopAnimation,
	}
}

// withDefaults fills empty entries from DefaultRoutes.
func (r Routes) withDefaults() Routes {
	d := DefaultRoutes()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&r.Off, d.Off)
	fill(&r.ShowCurrentTime, d.ShowCurrentTime)
	fill(&r.StartTimer, d.StartTimer)
	fill(&r.CancelTimer, d.CancelTimer)
	fill(&r.ChangeColor, d.ChangeColor)
	fill(&r.ChangeMultipleColors, d.ChangeMultipleColors)
	fill(&r.StartAnimation, d.StartAnimation)
	fill(&r.StopAnimation, d.StopAnimation)
	return r
}
