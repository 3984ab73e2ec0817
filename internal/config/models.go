package config

import (
	"time"

	"github.com/muurk/segtimer/internal/timer"
)

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int                `yaml:"version"`
	Devices     map[string]*Device `yaml:"devices,omitempty"` // Keyed by device name
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Device is one known timer.
type Device struct {
	URL      string            `yaml:"url"`                 // Base URL (e.g., "http://192.168.1.40")
	Hostname string            `yaml:"hostname,omitempty"`  // mDNS hostname, when discovered
	Headers  map[string]string `yaml:"headers,omitempty"`   // Sent with every request (e.g. Authorization)
	Routes   *timer.Routes     `yaml:"routes,omitempty"`    // Overrides for non-stock firmware
	LastSeen time.Time         `yaml:"last_seen,omitempty"` // Last discovery/command time
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	DefaultDevice   string `yaml:"default_device,omitempty"` // Device used when --device is not given
	DefaultColor    string `yaml:"default_color,omitempty"`  // Color used by time/timer commands when --color is not given
	DiscoverTimeout int    `yaml:"discover_timeout"`         // mDNS discovery timeout in seconds
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Devices:     make(map[string]*Device),
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		DiscoverTimeout: 5,
	}
}

// GetDevice retrieves a device by name.
// Returns nil if the device doesn't exist in the registry.
func (r *Registry) GetDevice(name string) *Device {
	return r.Devices[name]
}

// SetDevice adds or replaces a device entry.
func (r *Registry) SetDevice(name string, device *Device) {
	if r.Devices == nil {
		r.Devices = make(map[string]*Device)
	}
	r.Devices[name] = device
}

// RemoveDevice deletes a device entry. Removing the default device clears
// the default. Returns false when no such device exists.
func (r *Registry) RemoveDevice(name string) bool {
	if _, ok := r.Devices[name]; !ok {
		return false
	}
	delete(r.Devices, name)
	if r.Preferences != nil && r.Preferences.DefaultDevice == name {
		r.Preferences.DefaultDevice = ""
	}
	return true
}

// MarkSeen records that a device answered at url.
func (r *Registry) MarkSeen(name, url string) {
	device := r.GetDevice(name)
	if device == nil {
		device = &Device{}
		r.SetDevice(name, device)
	}
	device.URL = url
	device.LastSeen = time.Now()
}
