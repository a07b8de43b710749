package addrtest

import (
	"testing"

	addrhal "github.com/KarmaNetwork/addr-hal"
)

// RunV4Backend checks backend B against the full IPv4 capability contract.
func RunV4Backend[B addrhal.V4Backend[B]](t *testing.T) {
	t.Run("octet round trip", func(t *testing.T) {
		octets := [][4]byte{
			{0, 0, 0, 0},
			{127, 0, 0, 1},
			{1, 2, 3, 4},
			{192, 0, 2, 128},
			{255, 255, 255, 255},
		}
		for _, o := range octets {
			a := addrhal.IPv4FromOctets[B](o)
			if got := a.Octets(); got != o {
				t.Errorf("Octets() = %v, want %v", got, o)
			}
			if back := addrhal.IPv4FromOctets[B](a.Octets()); back != a {
				t.Errorf("reconstruction of %v changed the value", o)
			}
		}
	})

	t.Run("uint32 round trip", func(t *testing.T) {
		for _, v := range []uint32{0, 1, 0x7f000001, 0xc0000280, 0xffffffff} {
			a := addrhal.IPv4FromUint32[B](v)
			if got := a.Uint32(); got != v {
				t.Errorf("Uint32() = %#x, want %#x", got, v)
			}
		}
	})

	t.Run("constants", func(t *testing.T) {
		if got := addrhal.IPv4Localhost[B]().Octets(); got != [4]byte{127, 0, 0, 1} {
			t.Errorf("Localhost = %v", got)
		}
		if got := addrhal.IPv4Unspecified[B]().Octets(); got != [4]byte{} {
			t.Errorf("Unspecified = %v", got)
		}
		if got := addrhal.IPv4Broadcast[B]().Octets(); got != [4]byte{255, 255, 255, 255} {
			t.Errorf("Broadcast = %v", got)
		}
	})

	t.Run("classification", func(t *testing.T) {
		tests := []struct {
			o         [4]byte
			private   bool
			loopback  bool
			linkLocal bool
			multicast bool
			global    bool
		}{
			{o: [4]byte{9, 255, 255, 255}, global: true},
			{o: [4]byte{10, 0, 0, 0}, private: true},
			{o: [4]byte{10, 255, 255, 255}, private: true},
			{o: [4]byte{11, 0, 0, 0}, global: true},
			{o: [4]byte{127, 0, 0, 1}, loopback: true},
			{o: [4]byte{169, 254, 1, 1}, linkLocal: true},
			{o: [4]byte{172, 16, 0, 0}, private: true},
			{o: [4]byte{172, 31, 255, 255}, private: true},
			{o: [4]byte{172, 32, 0, 0}, global: true},
			{o: [4]byte{192, 0, 0, 9}, global: true},
			{o: [4]byte{192, 168, 0, 0}, private: true},
			{o: [4]byte{192, 168, 255, 255}, private: true},
			{o: [4]byte{224, 0, 0, 1}, multicast: true, global: true},
			{o: [4]byte{239, 255, 255, 255}, multicast: true, global: true},
			{o: [4]byte{8, 8, 8, 8}, global: true},
		}
		for _, tt := range tests {
			a := addrhal.IPv4FromOctets[B](tt.o)
			if got := a.IsPrivate(); got != tt.private {
				t.Errorf("%v IsPrivate() = %v", a, got)
			}
			if got := a.IsLoopback(); got != tt.loopback {
				t.Errorf("%v IsLoopback() = %v", a, got)
			}
			if got := a.IsLinkLocal(); got != tt.linkLocal {
				t.Errorf("%v IsLinkLocal() = %v", a, got)
			}
			if got := a.IsMulticast(); got != tt.multicast {
				t.Errorf("%v IsMulticast() = %v", a, got)
			}
			if got := a.IsGlobal(); got != tt.global {
				t.Errorf("%v IsGlobal() = %v", a, got)
			}
		}
		if !addrhal.IPv4Broadcast[B]().IsBroadcast() {
			t.Error("Broadcast constant fails IsBroadcast")
		}
	})

	t.Run("rendering", func(t *testing.T) {
		tests := []struct {
			o    [4]byte
			want string
		}{
			{[4]byte{0, 0, 0, 0}, "0.0.0.0"},
			{[4]byte{127, 0, 0, 1}, "127.0.0.1"},
			{[4]byte{255, 255, 255, 255}, "255.255.255.255"},
		}
		for _, tt := range tests {
			a := addrhal.IPv4FromOctets[B](tt.o)
			if got := a.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := string(a.AppendTo([]byte("x"))); got != "x"+tt.want {
				t.Errorf("AppendTo() = %q", got)
			}
		}
	})

	t.Run("ordering", func(t *testing.T) {
		sorted := [][4]byte{
			{0, 0, 0, 0},
			{9, 255, 255, 255},
			{10, 0, 0, 1},
			{127, 0, 0, 1},
			{255, 255, 255, 255},
		}
		for i := range sorted {
			for j := range sorted {
				a := addrhal.IPv4FromOctets[B](sorted[i])
				b := addrhal.IPv4FromOctets[B](sorted[j])
				want := 0
				if i < j {
					want = -1
				} else if i > j {
					want = 1
				}
				if got := a.Compare(b); got != want {
					t.Errorf("Compare(%v, %v) = %d, want %d", a, b, got, want)
				}
				if got := a.Less(b); got != (want < 0) {
					t.Errorf("Less(%v, %v) = %v", a, b, got)
				}
			}
		}
	})

	t.Run("binary", func(t *testing.T) {
		a := addrhal.IPv4FromOctets[B]([4]byte{192, 0, 2, 128})
		data, err := a.MarshalBinary()
		if err != nil || len(data) != 4 {
			t.Fatalf("MarshalBinary() = (%v, %v)", data, err)
		}
		var back addrhal.IPv4Addr[B]
		if err := back.UnmarshalBinary(data); err != nil {
			t.Fatalf("UnmarshalBinary() error = %v", err)
		}
		if back != a {
			t.Errorf("round trip = %v, want %v", back, a)
		}
		if err := back.UnmarshalBinary(make([]byte, 3)); err == nil {
			t.Error("UnmarshalBinary accepted 3 bytes")
		}
	})
}

// RunV6Backend checks backend B against the full IPv6 capability contract.
func RunV6Backend[B addrhal.V6Backend[B]](t *testing.T) {
	t.Run("segment round trip", func(t *testing.T) {
		segs := [][8]uint16{
			{0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 1},
			{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1},
			{0xffff, 0xffff, 0xffff, 0xffff, 0xffff, 0xffff, 0xffff, 0xffff},
		}
		for _, s := range segs {
			a := addrhal.IPv6FromSegments[B](s)
			if got := a.Segments(); got != s {
				t.Errorf("Segments() = %v, want %v", got, s)
			}
			if back := addrhal.IPv6FromOctets[B](a.Octets()); back != a {
				t.Errorf("octet reconstruction of %v changed the value", s)
			}
			hi, lo := a.Uint128()
			if back := addrhal.IPv6FromUint128[B](hi, lo); back != a {
				t.Errorf("uint128 reconstruction of %v changed the value", s)
			}
		}
	})

	t.Run("constants", func(t *testing.T) {
		if got := addrhal.IPv6Localhost[B]().Segments(); got != [8]uint16{0, 0, 0, 0, 0, 0, 0, 1} {
			t.Errorf("Localhost = %v", got)
		}
		if got := addrhal.IPv6Unspecified[B]().Segments(); got != [8]uint16{} {
			t.Errorf("Unspecified = %v", got)
		}
	})

	t.Run("classification", func(t *testing.T) {
		tests := []struct {
			segs          [8]uint16
			loopback      bool
			multicast     bool
			uniqueLocal   bool
			siteLocal     bool
			documentation bool
		}{
			{segs: [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, loopback: true},
			{segs: [8]uint16{0xff02, 0, 0, 0, 0, 0, 0, 1}, multicast: true},
			{segs: [8]uint16{0xfeff, 0, 0, 0, 0, 0, 0, 0}, siteLocal: true},
			{segs: [8]uint16{0xfc00, 0, 0, 0, 0, 0, 0, 1}, uniqueLocal: true},
			{segs: [8]uint16{0xfdff, 0xffff, 0, 0, 0, 0, 0, 1}, uniqueLocal: true},
			{segs: [8]uint16{0xfec0, 0, 0, 0, 0, 0, 0, 1}, siteLocal: true},
			{segs: [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, documentation: true},
			{segs: [8]uint16{0x2606, 0x4700, 0x4700, 0, 0, 0, 0, 0x1111}},
		}
		for _, tt := range tests {
			a := addrhal.IPv6FromSegments[B](tt.segs)
			if got := a.IsLoopback(); got != tt.loopback {
				t.Errorf("%v IsLoopback() = %v", a, got)
			}
			if got := a.IsMulticast(); got != tt.multicast {
				t.Errorf("%v IsMulticast() = %v", a, got)
			}
			if got := a.IsUniqueLocal(); got != tt.uniqueLocal {
				t.Errorf("%v IsUniqueLocal() = %v", a, got)
			}
			if got := a.IsUnicastSiteLocal(); got != tt.siteLocal {
				t.Errorf("%v IsUnicastSiteLocal() = %v", a, got)
			}
			if got := a.IsDocumentation(); got != tt.documentation {
				t.Errorf("%v IsDocumentation() = %v", a, got)
			}
		}
	})

	t.Run("link local", func(t *testing.T) {
		loose := addrhal.IPv6FromSegments[B]([8]uint16{0xfe80, 0, 0, 1, 0, 0, 0, 0})
		if !loose.IsUnicastLinkLocal() || loose.IsUnicastLinkLocalStrict() {
			t.Errorf("fe80:0:0:1:: loose = %v, strict = %v",
				loose.IsUnicastLinkLocal(), loose.IsUnicastLinkLocalStrict())
		}
		strict := addrhal.IPv6FromSegments[B]([8]uint16{0xfe80, 0, 0, 0, 0, 0, 0, 1})
		if !strict.IsUnicastLinkLocal() || !strict.IsUnicastLinkLocalStrict() {
			t.Errorf("fe80::1 loose = %v, strict = %v",
				strict.IsUnicastLinkLocal(), strict.IsUnicastLinkLocalStrict())
		}
	})

	t.Run("multicast scope", func(t *testing.T) {
		tests := []struct {
			first uint16
			scope addrhal.MulticastScope
			ok    bool
		}{
			{0xff01, addrhal.ScopeInterfaceLocal, true},
			{0xff02, addrhal.ScopeLinkLocal, true},
			{0xff05, addrhal.ScopeSiteLocal, true},
			{0xff08, addrhal.ScopeOrganizationLocal, true},
			{0xff0e, addrhal.ScopeGlobal, true},
			{0xff00, 0, false},
			{0xff0f, 0, false},
			{0x2001, 0, false},
		}
		for _, tt := range tests {
			a := addrhal.IPv6FromSegments[B]([8]uint16{tt.first, 0, 0, 0, 0, 0, 0, 1})
			scope, ok := a.MulticastScope()
			if ok != tt.ok || scope != tt.scope {
				t.Errorf("%v MulticastScope() = (%v, %v), want (%v, %v)",
					a, scope, ok, tt.scope, tt.ok)
			}
		}
	})

	t.Run("global", func(t *testing.T) {
		tests := []struct {
			segs [8]uint16
			want bool
		}{
			{[8]uint16{0x2606, 0x4700, 0x4700, 0, 0, 0, 0, 0x1111}, true},
			{[8]uint16{0xff0e, 0, 0, 0, 0, 0, 0, 1}, true},
			{[8]uint16{0xff05, 0, 0, 0, 0, 0, 0, 1}, false},
			{[8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, false},
			{[8]uint16{0xfc00, 0, 0, 0, 0, 0, 0, 1}, false},
			{[8]uint16{0xfe80, 0, 0, 0, 0, 0, 0, 1}, false},
			{[8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, false},
			{[8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, false},
		}
		for _, tt := range tests {
			a := addrhal.IPv6FromSegments[B](tt.segs)
			if got := a.IsGlobal(); got != tt.want {
				t.Errorf("%v IsGlobal() = %v, want %v", a, got, tt.want)
			}
		}
	})

	t.Run("rendering", func(t *testing.T) {
		tests := []struct {
			segs [8]uint16
			want string
		}{
			{[8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, "::"},
			{[8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, "::1"},
			{[8]uint16{0, 0, 0, 0, 0, 0, 0xc000, 0x280}, "::192.0.2.128"},
			{[8]uint16{0, 0, 0, 0, 0, 0xffff, 0xc000, 0x280}, "::ffff:192.0.2.128"},
			{[8]uint16{0, 0, 0, 0, 1, 0, 0, 1}, "::1:0:0:1"},
			{[8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, "2001:db8::1"},
			{[8]uint16{0x2001, 0, 0, 1, 0, 0, 0, 1}, "2001:0:0:1::1"},
			{[8]uint16{1, 1, 1, 1, 1, 1, 0, 0}, "1:1:1:1:1:1::"},
			{[8]uint16{0x2001, 0xdb8, 0, 1, 1, 1, 1, 1}, "2001:db8:0:1:1:1:1:1"},
		}
		for _, tt := range tests {
			a := addrhal.IPv6FromSegments[B](tt.segs)
			if got := a.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		}
	})

	t.Run("ordering", func(t *testing.T) {
		lo := addrhal.IPv6FromSegments[B]([8]uint16{0, 0, 0, 0, 0, 0, 0, 1})
		hi := addrhal.IPv6FromSegments[B]([8]uint16{0xfe80, 0, 0, 0, 0, 0, 0, 1})
		if lo.Compare(hi) != -1 || hi.Compare(lo) != 1 || lo.Compare(lo) != 0 {
			t.Error("Compare is not a total order over the sample")
		}
		if !lo.Less(hi) || hi.Less(lo) {
			t.Error("Less disagrees with Compare")
		}
	})

	t.Run("binary", func(t *testing.T) {
		a := addrhal.IPv6FromSegments[B]([8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0xdead, 0xbeef})
		data, err := a.MarshalBinary()
		if err != nil || len(data) != 16 {
			t.Fatalf("MarshalBinary() = (%v, %v)", data, err)
		}
		var back addrhal.IPv6Addr[B]
		if err := back.UnmarshalBinary(data); err != nil {
			t.Fatalf("UnmarshalBinary() error = %v", err)
		}
		if back != a {
			t.Errorf("round trip = %v, want %v", back, a)
		}
		if err := back.UnmarshalBinary(make([]byte, 4)); err == nil {
			t.Error("UnmarshalBinary accepted 4 bytes")
		}
	})
}

// RunSockV4Backend checks backend S against the IPv4 socket contract.
func RunSockV4Backend[S addrhal.SockV4Backend[S, B], B addrhal.V4Backend[B]](t *testing.T) {
	localhost := addrhal.IPv4FromOctets[B]([4]byte{127, 0, 0, 1})

	t.Run("parts round trip", func(t *testing.T) {
		sa := addrhal.NewSockAddrV4[S](localhost, 8080)
		if sa.IP() != localhost || sa.Port() != 8080 {
			t.Errorf("parts = (%v, %d)", sa.IP(), sa.Port())
		}
		if back := addrhal.SockAddrV4FromBackend[S, B](sa.Backend()); back != sa {
			t.Errorf("backend reconstruction changed the value")
		}
	})

	t.Run("setters", func(t *testing.T) {
		sa := addrhal.NewSockAddrV4[S](localhost, 8080)
		other := addrhal.IPv4FromOctets[B]([4]byte{192, 0, 2, 1})

		sa.SetIP(other)
		if sa.IP() != other || sa.Port() != 8080 {
			t.Errorf("after SetIP: (%v, %d)", sa.IP(), sa.Port())
		}
		sa.SetPort(9090)
		if sa.IP() != other || sa.Port() != 9090 {
			t.Errorf("after SetPort: (%v, %d)", sa.IP(), sa.Port())
		}
	})

	t.Run("rendering", func(t *testing.T) {
		sa := addrhal.NewSockAddrV4[S](localhost, 8080)
		if got := sa.String(); got != "127.0.0.1:8080" {
			t.Errorf("String() = %q", got)
		}
		text, err := sa.MarshalText()
		if err != nil || string(text) != "127.0.0.1:8080" {
			t.Errorf("MarshalText() = (%q, %v)", text, err)
		}
	})
}

// RunSockV6Backend checks backend S against the IPv6 socket contract.
func RunSockV6Backend[S addrhal.SockV6Backend[S, B], B addrhal.V6Backend[B]](t *testing.T) {
	localhost := addrhal.IPv6FromSegments[B]([8]uint16{0, 0, 0, 0, 0, 0, 0, 1})

	t.Run("parts round trip", func(t *testing.T) {
		sa := addrhal.NewSockAddrV6[S](localhost, 8080, 7, 3)
		if sa.IP() != localhost || sa.Port() != 8080 || sa.Flowinfo() != 7 || sa.ScopeID() != 3 {
			t.Errorf("parts = (%v, %d, %d, %d)", sa.IP(), sa.Port(), sa.Flowinfo(), sa.ScopeID())
		}
		if back := addrhal.SockAddrV6FromBackend[S, B](sa.Backend()); back != sa {
			t.Errorf("backend reconstruction changed the value")
		}
	})

	t.Run("setters", func(t *testing.T) {
		sa := addrhal.NewSockAddrV6[S](localhost, 8080, 7, 3)
		other := addrhal.IPv6FromSegments[B]([8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1})

		sa.SetIP(other)
		if sa.IP() != other || sa.Port() != 8080 || sa.Flowinfo() != 7 || sa.ScopeID() != 3 {
			t.Errorf("after SetIP: %v", sa)
		}
		sa.SetPort(9090)
		sa.SetFlowinfo(8)
		sa.SetScopeID(4)
		if sa.Port() != 9090 || sa.Flowinfo() != 8 || sa.ScopeID() != 4 {
			t.Errorf("after updates: %v", sa)
		}
	})

	t.Run("rendering", func(t *testing.T) {
		sa := addrhal.NewSockAddrV6[S](localhost, 8080, 0, 0)
		if got := sa.String(); got != "[::1]:8080" {
			t.Errorf("String() = %q", got)
		}
		scoped := addrhal.NewSockAddrV6[S](localhost, 8080, 5, 2)
		if scoped.String() != sa.String() {
			t.Errorf("flow-info or scope-id leaked into text: %q", scoped.String())
		}
	})
}
