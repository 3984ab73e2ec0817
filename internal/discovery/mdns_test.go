package discovery

import (
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/grandcat/zeroconf"
)

func TestScanner_parseServiceEntry(t *testing.T) {
	scanner := NewScanner()

	tests := []struct {
		name     string
		entry    *zeroconf.ServiceEntry
		wantNil  bool
		wantName string
		wantIP   string
		wantPort int
	}{
		{
			name: "timer with IPv4",
			entry: &zeroconf.ServiceEntry{
				HostName: "segtimer-kitchen.local.",
				Port:     80,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.40")},
				Text:     []string{"path=/"},
			},
			wantName: "segtimer-kitchen",
			wantIP:   "192.168.1.40",
			wantPort: 80,
		},
		{
			name: "short hostname without trailing dot",
			entry: &zeroconf.ServiceEntry{
				HostName: "7seg.local",
				Port:     8080,
				AddrIPv4: []net.IP{net.ParseIP("10.0.0.5")},
			},
			wantName: "7seg",
			wantIP:   "10.0.0.5",
			wantPort: 8080,
		},
		{
			name: "mixed case hostname",
			entry: &zeroconf.ServiceEntry{
				HostName: "SevenSegment_Hall.local.",
				Port:     80,
				AddrIPv4: []net.IP{net.ParseIP("10.0.0.6")},
			},
			wantName: "sevensegment_hall",
			wantIP:   "10.0.0.6",
			wantPort: 80,
		},
		{
			name: "no port defaults to 80",
			entry: &zeroconf.ServiceEntry{
				HostName: "segtimer.local.",
				AddrIPv4: []net.IP{net.ParseIP("172.16.0.1")},
			},
			wantName: "segtimer",
			wantIP:   "172.16.0.1",
			wantPort: 80,
		},
		{
			name: "other http service",
			entry: &zeroconf.ServiceEntry{
				HostName: "printer.local.",
				Port:     80,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.1")},
			},
			wantNil: true,
		},
		{
			name: "empty hostname",
			entry: &zeroconf.ServiceEntry{
				Port:     80,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.1")},
			},
			wantNil: true,
		},
		{
			name: "no address",
			entry: &zeroconf.ServiceEntry{
				HostName: "segtimer.local.",
				Port:     80,
			},
			wantNil: true,
		},
		{
			name: "IPv6 only",
			entry: &zeroconf.ServiceEntry{
				HostName: "segtimer-lab.local.",
				Port:     80,
				AddrIPv6: []net.IP{net.ParseIP("fe80::1")},
			},
			wantName: "segtimer-lab",
			wantIP:   "fe80::1",
			wantPort: 80,
		},
		{
			name: "prefers IPv4",
			entry: &zeroconf.ServiceEntry{
				HostName: "segtimer-lab.local.",
				Port:     80,
				AddrIPv4: []net.IP{net.ParseIP("192.168.1.50")},
				AddrIPv6: []net.IP{net.ParseIP("fe80::2")},
			},
			wantName: "segtimer-lab",
			wantIP:   "192.168.1.50",
			wantPort: 80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := scanner.parseServiceEntry(tt.entry)

			if tt.wantNil {
				if device != nil {
					t.Errorf("parseServiceEntry() = %v, want nil", device)
				}
				return
			}
			if device == nil {
				t.Fatal("parseServiceEntry() = nil, want device")
			}
			if device.Name != tt.wantName {
				t.Errorf("Name = %v, want %v", device.Name, tt.wantName)
			}
			if device.IP != tt.wantIP {
				t.Errorf("IP = %v, want %v", device.IP, tt.wantIP)
			}
			if device.Port != tt.wantPort {
				t.Errorf("Port = %v, want %v", device.Port, tt.wantPort)
			}
			if device.Hostname != tt.entry.HostName {
				t.Errorf("Hostname = %v, want %v", device.Hostname, tt.entry.HostName)
			}
			if time.Since(device.DiscoveredAt) > time.Second {
				t.Errorf("DiscoveredAt is not recent: %v", device.DiscoveredAt)
			}
		})
	}
}

func TestScanner_CustomHostPattern(t *testing.T) {
	scanner := NewScanner()
	scanner.HostPattern = regexp.MustCompile(`^clock-(\w+)\.local\.?$`)

	device := scanner.parseServiceEntry(&zeroconf.ServiceEntry{
		HostName: "clock-office.local.",
		AddrIPv4: []net.IP{net.ParseIP("10.1.1.1")},
	})
	if device == nil {
		t.Fatal("custom pattern should match")
	}
	if device.Name != "office" {
		t.Errorf("Name = %s, want office", device.Name)
	}

	if scanner.parseServiceEntry(&zeroconf.ServiceEntry{
		HostName: "segtimer.local.",
		AddrIPv4: []net.IP{net.ParseIP("10.1.1.2")},
	}) != nil {
		t.Error("default hostnames should not match a custom pattern")
	}
}

func TestScanner_parseServiceEntry_Metadata(t *testing.T) {
	scanner := NewScanner()

	device := scanner.parseServiceEntry(&zeroconf.ServiceEntry{
		HostName: "segtimer.local.",
		Port:     80,
		AddrIPv4: []net.IP{net.ParseIP("192.168.1.40")},
		Text:     []string{"path=/api", "fw=2.1", "flag"},
	})
	if device == nil {
		t.Fatal("parseServiceEntry() = nil, want device")
	}

	expected := map[string]string{"path": "/api", "fw": "2.1", "flag": ""}
	if len(device.Metadata) != len(expected) {
		t.Errorf("Metadata has %d entries, want %d", len(device.Metadata), len(expected))
	}
	for key, want := range expected {
		if got, ok := device.Metadata[key]; !ok || got != want {
			t.Errorf("Metadata[%q] = %q (present %v), want %q", key, got, ok, want)
		}
	}
}
