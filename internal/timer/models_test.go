package timer

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimeFromDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want Time
	}{
		{5 * time.Minute, Time{Minutes: 5}},
		{90 * time.Second, Time{Minutes: 1, Seconds: 30}},
		{time.Hour + 2*time.Minute + 3*time.Second + 400*time.Millisecond, Time{Hours: 1, Minutes: 2, Seconds: 3}},
		{-time.Second, Time{}},
	}

	for _, tt := range tests {
		got := TimeFromDuration(tt.in)
		if got != tt.want {
			t.Errorf("TimeFromDuration(%v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestTime_DurationAndString(t *testing.T) {
	tm := Time{Hours: 1, Minutes: 5}
	if tm.Duration() != 65*time.Minute {
		t.Errorf("Duration() = %v, want 1h5m", tm.Duration())
	}
	if tm.String() != "1h05m00s" {
		t.Errorf("String() = %q, want 1h05m00s", tm.String())
	}
	if (Time{Minutes: 3, Seconds: 7}).String() != "3m07s" {
		t.Errorf("String() = %q, want 3m07s", (Time{Minutes: 3, Seconds: 7}).String())
	}
}

func TestTime_JSONOmitsZeroFields(t *testing.T) {
	data, err := json.Marshal(Time{Minutes: 5})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"minutes":5}` {
		t.Errorf("Marshal = %s, want {\"minutes\":5}", data)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBColor
		wantErr bool
	}{
		{"#ff8800", RGBColor{R: 255, G: 136, B: 0}, false},
		{"FF8800", RGBColor{R: 255, G: 136, B: 0}, false},
		{"#f80", RGBColor{R: 255, G: 136, B: 0}, false},
		{"255,136,0", RGBColor{R: 255, G: 136, B: 0}, false},
		{" 0, 0 ,255 ", RGBColor{B: 255}, false},
		{"256,0,0", RGBColor{}, true},
		{"1,2", RGBColor{}, true},
		{"#zzzzzz", RGBColor{}, true},
		{"", RGBColor{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColors(t *testing.T) {
	colors, err := ParseColors([]string{"#ff0000", "0,255,0"})
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 2 || colors[0].Hex() != "#ff0000" || colors[1].Hex() != "#00ff00" {
		t.Errorf("ParseColors() = %v", colors)
	}

	if _, err := ParseColors([]string{"#ff0000", "nope"}); err == nil {
		t.Error("ParseColors() should fail when any color is invalid")
	}
}

func TestColorSelection_JSON(t *testing.T) {
	red := RGBColor{R: 255}

	tests := []struct {
		name string
		sel  *ColorSelection
		want string
	}{
		{"single", Single(red), `{"r":255,"g":0,"b":0}`},
		{"sequence of one", Sequence(red), `[{"r":255,"g":0,"b":0}]`},
		{"empty sequence", Sequence(), `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.sel)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestColorSelection_Colors(t *testing.T) {
	var nilSel *ColorSelection
	if nilSel.Colors() != nil {
		t.Error("nil selection should have no colors")
	}
	if got := Single(RGBColor{G: 1}).Colors(); len(got) != 1 || got[0].G != 1 {
		t.Errorf("Single().Colors() = %v", got)
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		in      string
		want    Time
		wantErr bool
	}{
		{in: "5m", want: Time{Minutes: 5}},
		{in: "1h30m15s", want: Time{Hours: 1, Minutes: 30, Seconds: 15}},
		{in: "90s", want: Time{Minutes: 1, Seconds: 30}},
		{in: "05:30", want: Time{Minutes: 5, Seconds: 30}},
		{in: "1:00:00", want: Time{Hours: 1}},
		{in: "0:90", want: Time{Minutes: 1, Seconds: 30}},
		{in: "00:00", wantErr: true},
		{in: "0s", wantErr: true},
		{in: "-5m", wantErr: true},
		{in: "1:2:3:4", wantErr: true},
		{in: "a:b", wantErr: true},
		{in: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTime(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTime(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTime(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
