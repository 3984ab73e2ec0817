package timer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Time is a timer duration as the device expects it.
// Zero fields are left out of the JSON body.
type Time struct {
	Hours   int `json:"hours,omitempty"`
	Minutes int `json:"minutes,omitempty"`
	Seconds int `json:"seconds,omitempty"`
}

// TimeFromDuration splits d into hours, minutes and whole seconds.
// Sub-second precision is truncated.
func TimeFromDuration(d time.Duration) Time {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return Time{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}
}

// ParseTime accepts a Go duration ("5m", "1h30m") or a clock form
// ("MM:SS" or "HH:MM:SS").
func ParseTime(s string) (Time, error) {
	s = strings.TrimSpace(s)
	if !strings.Contains(s, ":") {
		d, err := time.ParseDuration(s)
		if err != nil {
			return Time{}, fmt.Errorf("invalid duration %q: %w", s, err)
		}
		if d <= 0 {
			return Time{}, fmt.Errorf("invalid duration %q: must be positive", s)
		}
		return TimeFromDuration(d), nil
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return Time{}, fmt.Errorf("invalid duration %q: want MM:SS or HH:MM:SS", s)
	}
	var fields [3]int
	offset := 3 - len(parts)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			return Time{}, fmt.Errorf("invalid duration %q: want MM:SS or HH:MM:SS", s)
		}
		fields[offset+i] = v
	}
	t := TimeFromDuration(Time{Hours: fields[0], Minutes: fields[1], Seconds: fields[2]}.Duration())
	if t == (Time{}) {
		return Time{}, fmt.Errorf("invalid duration %q: must be positive", s)
	}
	return t, nil
}

// Duration converts t back to a time.Duration.
func (t Time) Duration() time.Duration {
	return time.Duration(t.Hours)*time.Hour +
		time.Duration(t.Minutes)*time.Minute +
		time.Duration(t.Seconds)*time.Second
}

// String returns a compact representation (e.g. "1h05m00s")
func (t Time) String() string {
	if t.Hours > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", t.Hours, t.Minutes, t.Seconds)
	}
	return fmt.Sprintf("%dm%02ds", t.Minutes, t.Seconds)
}

// RGBColor is one display color.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as "#rrggbb".
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer
func (c RGBColor) String() string {
	return c.Hex()
}

// ParseColor accepts "#ff8800", "#f80", "ff8800" or "255,136,0".
func ParseColor(s string) (RGBColor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGBColor{}, fmt.Errorf("empty color")
	}

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return RGBColor{}, fmt.Errorf("invalid color %q: want r,g,b", s)
		}
		var rgb [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return RGBColor{}, fmt.Errorf("invalid color %q: component %d: %w", s, i+1, err)
			}
			rgb[i] = uint8(v)
		}
		return RGBColor{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBColor{R: r, G: g, B: b}, nil
}

// ParseColors parses each argument with ParseColor.
func ParseColors(values []string) ([]RGBColor, error) {
	colors := make([]RGBColor, 0, len(values))
	for _, v := range values {
		c, err := ParseColor(v)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// ColorSelection is either a single color or a sequence of colors. It encodes
// as a JSON object or a JSON array respectively.
type ColorSelection struct {
	single   *RGBColor
	sequence []RGBColor
}

// Single selects one color.
func Single(c RGBColor) *ColorSelection {
	return &ColorSelection{single: &c}
}

// Sequence selects a list of colors; it always encodes as an array.
func Sequence(colors ...RGBColor) *ColorSelection {
	return &ColorSelection{sequence: append([]RGBColor{}, colors...)}
}

// Colors returns the selected colors in order.
func (s *ColorSelection) Colors() []RGBColor {
	if s == nil {
		return nil
	}
	if s.single != nil {
		return []RGBColor{*s.single}
	}
	return s.sequence
}

// MarshalJSON implements json.Marshaler
func (s ColorSelection) MarshalJSON() ([]byte, error) {
	if s.single != nil {
		return json.Marshal(s.single)
	}
	if s.sequence == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.sequence)
}

// Animation identifies one of the device's built-in animations. The set of
// valid names belongs to the firmware and is passed through unchecked.
type Animation string
