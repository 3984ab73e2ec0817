package discovery

import "testing"

func TestDevice_String(t *testing.T) {
	device := &Device{
		Name:     "segtimer-kitchen",
		Hostname: "segtimer-kitchen.local.",
		IP:       "192.168.1.40",
		Port:     80,
	}

	expected := "Timer segtimer-kitchen (segtimer-kitchen.local.) at 192.168.1.40:80"
	if device.String() != expected {
		t.Errorf("Device.String() = %v, want %v", device.String(), expected)
	}
}

func TestDevice_BaseURL(t *testing.T) {
	tests := []struct {
		name     string
		device   *Device
		expected string
	}{
		{
			name:     "standard HTTP port",
			device:   &Device{IP: "192.168.1.40", Port: 80},
			expected: "http://192.168.1.40:80",
		},
		{
			name:     "custom port",
			device:   &Device{IP: "10.0.0.5", Port: 8080},
			expected: "http://10.0.0.5:8080",
		},
		{
			name:     "IPv6",
			device:   &Device{IP: "fe80::1", Port: 80},
			expected: "http://[fe80::1]:80",
		},
		{
			name:     "root path record",
			device:   &Device{IP: "10.0.0.5", Port: 80, Metadata: map[string]string{"path": "/"}},
			expected: "http://10.0.0.5:80",
		},
		{
			name:     "API path record",
			device:   &Device{IP: "10.0.0.5", Port: 80, Metadata: map[string]string{"path": "api/"}},
			expected: "http://10.0.0.5:80/api",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.device.BaseURL(); got != tt.expected {
				t.Errorf("BaseURL() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDevice_GetMetadata(t *testing.T) {
	device := &Device{Metadata: map[string]string{"fw": "2.1"}}

	if device.GetMetadata("fw") != "2.1" {
		t.Errorf("GetMetadata(fw) = %q, want 2.1", device.GetMetadata("fw"))
	}
	if device.GetMetadata("missing") != "" {
		t.Error("GetMetadata of a missing key should be empty")
	}
	if (&Device{}).GetMetadata("fw") != "" {
		t.Error("GetMetadata with nil metadata should be empty")
	}
}
