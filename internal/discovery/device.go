package discovery

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// Device represents a timer found on the network
type Device struct {
	// Name is derived from the hostname (e.g., "segtimer-kitchen")
	Name string

	// Hostname is the mDNS hostname (e.g., "segtimer-kitchen.local.")
	Hostname string

	// IP is the preferred address, IPv4 when available
	IP string

	// Port is the HTTP port (typically 80)
	Port int

	// Metadata contains the mDNS TXT records.
	// A "path" record is treated as the API prefix.
	Metadata map[string]string

	// DiscoveredAt is when the device was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the device
func (d *Device) String() string {
	return fmt.Sprintf("Timer %s (%s) at %s", d.Name, d.Hostname, net.JoinHostPort(d.IP, strconv.Itoa(d.Port)))
}

// BaseURL returns the HTTP base URL for the device, including any API path
// advertised in the TXT records.
func (d *Device) BaseURL() string {
	base := "http://" + net.JoinHostPort(d.IP, strconv.Itoa(d.Port))
	if path := strings.TrimSuffix(d.GetMetadata("path"), "/"); path != "" {
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		base += path
	}
	return base
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (d *Device) GetMetadata(key string) string {
	if d.Metadata == nil {
		return ""
	}
	return d.Metadata[key]
}
