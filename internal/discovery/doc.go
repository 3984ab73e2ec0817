// Package discovery finds seven-segment timers on the local network via mDNS.
//
// A Scanner browses for "_http._tcp" services and keeps entries whose hostname
// matches HostPattern. The firmware does not define an mDNS name, so the
// default pattern ("segtimer", "7seg" or "sevensegment" prefixes) is a naming
// convention for devices set up for segtimer. Set HostPattern to match other
// hostnames:
//
//	devices, err := discovery.ScanForDevices(ctx, 5*time.Second)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range devices {
//	    fmt.Println(d.Name, d.BaseURL())
//	}
//
// A "path" TXT record, when present, is appended to the device's base URL.
package discovery
