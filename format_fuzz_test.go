package addrhal

import (
	"net/netip"
	"testing"
)

func FuzzIPv4String_RoundTripsThroughParser(f *testing.F) {
	for _, seed := range [][4]byte{
		{0, 0, 0, 0},
		{127, 0, 0, 1},
		{192, 0, 2, 128},
		{255, 255, 255, 255},
		{10, 1, 2, 3},
	} {
		f.Add(seed[0], seed[1], seed[2], seed[3])
	}

	f.Fuzz(func(t *testing.T, a, b, c, d byte) {
		addr := IPv4FromOctets[mockV4]([4]byte{a, b, c, d})
		rendered := addr.String()

		parsed, err := netip.ParseAddr(rendered)
		if err != nil {
			t.Fatalf("ParseAddr(%q) error = %v", rendered, err)
		}
		if !parsed.Is4() {
			t.Fatalf("rendered %q parsed as non-v4", rendered)
		}
		if parsed.As4() != addr.Octets() {
			t.Fatalf("round trip of %v through %q = %v", addr.Octets(), rendered, parsed.As4())
		}
	})
}

func FuzzIPv6String_RoundTripsThroughParser(f *testing.F) {
	for _, seed := range [][]byte{
		make([]byte, 16),
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 192, 0, 2, 128},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2},
		{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		{0x20, 0x01, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 1},
		{0xfe, 0x80, 0, 0, 0, 0, 0, 0, 0x02, 0x02, 0xb3, 0xff, 0xfe, 0x1e, 0x83, 0x29},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0},
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) != 16 {
			return
		}
		var o [16]byte
		copy(o[:], data)

		addr := IPv6FromOctets[mockV6](o)
		rendered := addr.String()

		parsed, err := netip.ParseAddr(rendered)
		if err != nil {
			t.Fatalf("ParseAddr(%q) error = %v", rendered, err)
		}
		if parsed.As16() != o {
			t.Fatalf("round trip of %v through %q = %v", o, rendered, parsed.As16())
		}

		appended := addr.AppendTo([]byte("ip="))
		if string(appended) != "ip="+rendered {
			t.Fatalf("AppendTo() = %q, String() = %q", appended, rendered)
		}
	})
}
