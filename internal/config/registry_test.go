package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/muurk/segtimer/internal/timer"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG layout is Linux only")
	}

	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if dir != "/tmp/xdg/segtimer" {
		t.Errorf("GetConfigDir() = %s, want /tmp/xdg/segtimer", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/tester")
	dir, err = GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if dir != "/home/tester/.config/segtimer" {
		t.Errorf("GetConfigDir() = %s, want /home/tester/.config/segtimer", dir)
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}
	if reg.Devices == nil {
		t.Error("NewRegistry().Devices should be initialized")
	}
	if reg.Preferences == nil || reg.Preferences.DiscoverTimeout != 5 {
		t.Errorf("NewRegistry().Preferences = %+v, want discover timeout 5", reg.Preferences)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(reg.Devices) != 0 {
		t.Errorf("Load() of missing file returned %d devices", len(reg.Devices))
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segtimer", "config.yaml")

	reg := NewRegistry()
	reg.SetDevice("kitchen", &Device{
		URL:     "http://192.168.1.40",
		Headers: map[string]string{"Authorization": "Bearer 0123"},
		Routes:  &timer.Routes{ShowCurrentTime: "/show-time"},
	})
	reg.Preferences.DefaultDevice = "kitchen"
	reg.Preferences.DefaultColor = "#ff8800"

	if err := reg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "# segtimer configuration file") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	kitchen := loaded.GetDevice("kitchen")
	if kitchen == nil {
		t.Fatal("kitchen device missing after reload")
	}
	if kitchen.URL != "http://192.168.1.40" {
		t.Errorf("URL = %s, want http://192.168.1.40", kitchen.URL)
	}
	if kitchen.Headers["Authorization"] != "Bearer 0123" {
		t.Errorf("Headers = %v", kitchen.Headers)
	}
	if kitchen.Routes == nil || kitchen.Routes.ShowCurrentTime != "/show-time" {
		t.Errorf("Routes = %+v", kitchen.Routes)
	}
	if loaded.Preferences.DefaultDevice != "kitchen" || loaded.Preferences.DefaultColor != "#ff8800" {
		t.Errorf("Preferences = %+v", loaded.Preferences)
	}
}

func TestLoad_RejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 2\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject version 2")
	}
}

func TestLoad_FillsMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	reg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reg.Devices == nil || reg.Preferences == nil {
		t.Errorf("Load() = %+v, want initialized devices and preferences", reg)
	}
}

func TestRemoveDevice(t *testing.T) {
	reg := NewRegistry()
	reg.SetDevice("hall", &Device{URL: "http://10.0.0.9"})
	reg.Preferences.DefaultDevice = "hall"

	if !reg.RemoveDevice("hall") {
		t.Fatal("RemoveDevice() = false, want true")
	}
	if reg.Preferences.DefaultDevice != "" {
		t.Error("removing the default device should clear the default")
	}
	if reg.RemoveDevice("hall") {
		t.Error("RemoveDevice() of a missing device should return false")
	}
}

func TestMarkSeen(t *testing.T) {
	reg := NewRegistry()
	reg.MarkSeen("garage", "http://10.0.0.7")

	d := reg.GetDevice("garage")
	if d == nil || d.URL != "http://10.0.0.7" || d.LastSeen.IsZero() {
		t.Errorf("MarkSeen() device = %+v", d)
	}
}

func TestDeviceNames(t *testing.T) {
	reg := NewRegistry()
	reg.SetDevice("b", &Device{URL: "http://b"})
	reg.SetDevice("a", &Device{URL: "http://a"})

	names := reg.DeviceNames()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("DeviceNames() = %v, want [a b]", names)
	}
}

func TestResolve(t *testing.T) {
	reg := NewRegistry()
	reg.SetDevice("kitchen", &Device{URL: "http://192.168.1.40"})
	reg.SetDevice("broken", &Device{})

	tests := []struct {
		name       string
		input      string
		defaultDev string
		wantName   string
		wantURL    string
		wantErr    bool
	}{
		{"registered name", "kitchen", "", "kitchen", "http://192.168.1.40", false},
		{"default device", "", "kitchen", "kitchen", "http://192.168.1.40", false},
		{"no default", "", "", "", "", true},
		{"full URL", "https://timer.example.com/api", "", "", "https://timer.example.com/api", false},
		{"bare IP", "10.0.0.5", "", "", "http://10.0.0.5", false},
		{"host and port", "timer.local:8080", "", "", "http://timer.local:8080", false},
		{"unknown name", "attic", "", "", "", true},
		{"device without URL", "broken", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg.Preferences.DefaultDevice = tt.defaultDev
			name, device, err := reg.Resolve(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if device.URL != tt.wantURL {
				t.Errorf("URL = %q, want %q", device.URL, tt.wantURL)
			}
		})
	}
}
