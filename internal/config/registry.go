package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "segtimer"
	configFile = "config.yaml"
)

// fileMutex serializes writes from this process
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory for the application.
// This follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/segtimer or $HOME/.config/segtimer
//   - macOS: $HOME/.config/segtimer
//   - Windows: %LOCALAPPDATA%\segtimer
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			return filepath.Join(xdgConfigHome, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads the registry at path. A missing file yields a new default registry.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var registry Registry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if registry.Version != 1 {
		return nil, fmt.Errorf("unsupported config version: %d (expected 1)", registry.Version)
	}

	if registry.Devices == nil {
		registry.Devices = make(map[string]*Device)
	}
	if registry.Preferences == nil {
		registry.Preferences = defaultPreferences()
	}

	return &registry, nil
}

// Save writes the registry to path atomically (temp file + rename).
func (r *Registry) Save(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# segtimer configuration file
# Devices are addressed by name with --device <name>.
#
# Headers listed under a device are sent with every request. Keep this file
# private if they contain credentials.
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// DeviceNames returns the registered device names in sorted order.
func (r *Registry) DeviceNames() []string {
	names := make([]string, 0, len(r.Devices))
	for name := range r.Devices {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve turns a --device value into a device entry.
//
// An empty value selects the default device. A registered name returns that
// device. Anything else is treated as an address: values with a scheme are
// used as-is, bare hosts get "http://".
func (r *Registry) Resolve(nameOrURL string) (string, *Device, error) {
	if nameOrURL == "" {
		if r.Preferences == nil || r.Preferences.DefaultDevice == "" {
			return "", nil, fmt.Errorf("no device given and no default device configured")
		}
		nameOrURL = r.Preferences.DefaultDevice
	}

	if device := r.GetDevice(nameOrURL); device != nil {
		if device.URL == "" {
			return "", nil, fmt.Errorf("device %q has no URL", nameOrURL)
		}
		return nameOrURL, device, nil
	}

	if strings.Contains(nameOrURL, "://") {
		return "", &Device{URL: nameOrURL}, nil
	}
	if strings.ContainsAny(nameOrURL, ".:") {
		return "", &Device{URL: "http://" + nameOrURL}, nil
	}

	return "", nil, fmt.Errorf("unknown device %q (see 'segtimer devices list')", nameOrURL)
}
