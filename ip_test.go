package addrhal

import (
	"net/netip"
	"testing"
)

// ip builds a union address from text, choosing the variant by family.
func ip(t testing.TB, s string) IPAddr[mockV4, mockV6] {
	t.Helper()
	a := netip.MustParseAddr(s)
	if a.Is4() {
		return IPFromV4[mockV6](IPv4FromOctets[mockV4](a.As4()))
	}
	return IPFromV6[mockV4](IPv6FromOctets[mockV6](a.As16()))
}

func TestIPAddrVariants(t *testing.T) {
	four := ip(t, "192.0.2.1")
	if !four.Is4() || four.Is6() {
		t.Errorf("Is4() = %v, Is6() = %v for a v4 address", four.Is4(), four.Is6())
	}
	if got, ok := four.V4(); !ok || got != mk4(192, 0, 2, 1) {
		t.Errorf("V4() = (%v, %v)", got, ok)
	}
	if _, ok := four.V6(); ok {
		t.Error("V6() ok = true for a v4 address")
	}

	six := ip(t, "2001:db8::1")
	if six.Is4() || !six.Is6() {
		t.Errorf("Is4() = %v, Is6() = %v for a v6 address", six.Is4(), six.Is6())
	}
	if got, ok := six.V6(); !ok || got != v6(t, "2001:db8::1") {
		t.Errorf("V6() = (%v, %v)", got, ok)
	}
	if _, ok := six.V4(); ok {
		t.Error("V4() ok = true for a v6 address")
	}
}

func TestIPAddrTo4(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want [4]byte
		ok   bool
	}{
		{"v4 passes through", "192.0.2.1", [4]byte{192, 0, 2, 1}, true},
		{"mapped v6 converts", "::ffff:192.0.2.128", [4]byte{192, 0, 2, 128}, true},
		{"compatible v6 converts", "::192.0.2.128", [4]byte{192, 0, 2, 128}, true},
		{"global v6 does not", "2001:db8::1", [4]byte{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ip(t, tt.addr).To4()
			if ok != tt.ok {
				t.Fatalf("To4() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.Octets() != tt.want {
				t.Errorf("To4() = %v, want %v", got.Octets(), tt.want)
			}
		})
	}
}

func TestIPAddrPredicates(t *testing.T) {
	tests := []struct {
		name  string
		addr  string
		check func(IPAddr[mockV4, mockV6]) bool
		want  bool
	}{
		{"v4 unspecified", "0.0.0.0", IPAddr[mockV4, mockV6].IsUnspecified, true},
		{"v6 unspecified", "::", IPAddr[mockV4, mockV6].IsUnspecified, true},
		{"v4 loopback", "127.0.0.1", IPAddr[mockV4, mockV6].IsLoopback, true},
		{"v6 loopback", "::1", IPAddr[mockV4, mockV6].IsLoopback, true},
		{"v4 global", "8.8.8.8", IPAddr[mockV4, mockV6].IsGlobal, true},
		{"v6 global", "2606:4700:4700::1111", IPAddr[mockV4, mockV6].IsGlobal, true},
		{"v4 private is not global", "10.0.0.1", IPAddr[mockV4, mockV6].IsGlobal, false},
		{"v6 unique local is not global", "fc00::1", IPAddr[mockV4, mockV6].IsGlobal, false},
		{"v4 multicast", "224.0.0.1", IPAddr[mockV4, mockV6].IsMulticast, true},
		{"v6 multicast", "ff02::1", IPAddr[mockV4, mockV6].IsMulticast, true},
		{"v4 documentation", "198.51.100.7", IPAddr[mockV4, mockV6].IsDocumentation, true},
		{"v6 documentation", "2001:db8::1", IPAddr[mockV4, mockV6].IsDocumentation, true},
		{"v4 unicast is not multicast", "192.0.2.1", IPAddr[mockV4, mockV6].IsMulticast, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(ip(t, tt.addr)); got != tt.want {
				t.Errorf("%s: got %v, want %v", tt.addr, got, tt.want)
			}
		})
	}
}

func TestIPAddrCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"192.0.2.1", "192.0.2.1", 0},
		{"192.0.2.1", "192.0.2.2", -1},
		{"255.255.255.255", "::", -1},
		{"::", "0.0.0.0", 1},
		{"::1", "::2", -1},
	}

	for _, tt := range tests {
		a, b := ip(t, tt.a), ip(t, tt.b)
		if got := a.Compare(b); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := a.Less(b); got != (tt.want < 0) {
			t.Errorf("Less(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want < 0)
		}
	}
}

func TestIPAddrString(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"192.0.2.1", "192.0.2.1"},
		{"2001:db8::1", "2001:db8::1"},
		{"::ffff:192.0.2.128", "::ffff:192.0.2.128"},
	}

	for _, tt := range tests {
		a := ip(t, tt.addr)
		if got := a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}
		if string(text) != tt.want {
			t.Errorf("MarshalText() = %q, want %q", text, tt.want)
		}
	}
}

func TestIPAddrBinary_RoundTrip(t *testing.T) {
	for _, s := range []string{"192.0.2.1", "2001:db8::1"} {
		t.Run(s, func(t *testing.T) {
			a := ip(t, s)
			data, err := a.MarshalBinary()
			if err != nil {
				t.Fatalf("MarshalBinary() error = %v", err)
			}

			var back IPAddr[mockV4, mockV6]
			if err := back.UnmarshalBinary(data); err != nil {
				t.Fatalf("UnmarshalBinary() error = %v", err)
			}
			if back != a {
				t.Errorf("round trip = %v, want %v", back, a)
			}
		})
	}
}

func TestIPAddrUnmarshalBinary_BadLength(t *testing.T) {
	for _, n := range []int{0, 3, 5, 15, 17} {
		var a IPAddr[mockV4, mockV6]
		if err := a.UnmarshalBinary(make([]byte, n)); err == nil {
			t.Errorf("UnmarshalBinary(%d bytes) succeeded, want error", n)
		}
	}
}
