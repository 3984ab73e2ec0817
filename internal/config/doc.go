// Package config manages the segtimer device registry.
//
// The registry is a YAML file that maps device names to base URLs, optional
// per-device headers and route overrides, plus a few CLI preferences.
//
// # Configuration File Location
//
//   - Linux: $XDG_CONFIG_HOME/segtimer/config.yaml or $HOME/.config/segtimer/config.yaml
//   - macOS: $HOME/.config/segtimer/config.yaml
//   - Windows: %LOCALAPPDATA%\segtimer\config.yaml
//
// # Example
//
//	version: 1
//	devices:
//	  kitchen:
//	    url: http://192.168.1.40
//	    headers:
//	      Authorization: Bearer 0123
//	preferences:
//	  default_device: kitchen
//	  default_color: "#ff8800"
//	  discover_timeout: 5
//
// # Usage
//
//	path, _ := config.GetConfigPath()
//	registry, err := config.Load(path)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	registry.SetDevice("kitchen", &config.Device{URL: "http://192.168.1.40"})
//	if err := registry.Save(path); err != nil {
//	    log.Fatal(err)
//	}
//
// Saves are atomic: the file is written to a temporary path and renamed.
package config
