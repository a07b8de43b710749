package stdaddr

import (
	addrhal "github.com/KarmaNetwork/addr-hal"
	"github.com/KarmaNetwork/addr-hal/addrparse"
)

// Instantiations of the generic types over the package backends. These are
// aliases, not wrappers: an Addr4 is an addrhal.IPv4Addr[V4] and passes
// directly to any generic API.
type (
	Addr4     = addrhal.IPv4Addr[V4]
	Addr6     = addrhal.IPv6Addr[V6]
	Addr      = addrhal.IPAddr[V4, V6]
	AddrPort4 = addrhal.SockAddrV4[Sock4, V4]
	AddrPort6 = addrhal.SockAddrV6[Sock6, V6]
	AddrPort  = addrhal.SockAddr[Sock4, Sock6, V4, V6]
)

// New4 returns the IPv4 address a.b.c.d.
func New4(a, b, c, d byte) Addr4 {
	return addrhal.NewIPv4[V4](a, b, c, d)
}

// From4 returns the IPv4 address with the given network-order octets.
func From4(o [4]byte) Addr4 {
	return addrhal.IPv4FromOctets[V4](o)
}

// FromUint32 returns the IPv4 address packed into v, most significant octet
// first.
func FromUint32(v uint32) Addr4 {
	return addrhal.IPv4FromUint32[V4](v)
}

// New6 returns the IPv6 address a:b:c:d:e:f:g:h.
func New6(a, b, c, d, e, f, g, h uint16) Addr6 {
	return addrhal.NewIPv6[V6](a, b, c, d, e, f, g, h)
}

// FromSegments returns the IPv6 address with the given segments.
func FromSegments(s [8]uint16) Addr6 {
	return addrhal.IPv6FromSegments[V6](s)
}

// From16 returns the IPv6 address with the given network-order octets.
func From16(o [16]byte) Addr6 {
	return addrhal.IPv6FromOctets[V6](o)
}

// FromUint128 returns the IPv6 address packed into the hi and lo words.
func FromUint128(hi, lo uint64) Addr6 {
	return addrhal.IPv6FromUint128[V6](hi, lo)
}

// Localhost4 returns 127.0.0.1.
func Localhost4() Addr4 { return addrhal.IPv4Localhost[V4]() }

// Unspecified4 returns 0.0.0.0.
func Unspecified4() Addr4 { return addrhal.IPv4Unspecified[V4]() }

// Broadcast4 returns 255.255.255.255.
func Broadcast4() Addr4 { return addrhal.IPv4Broadcast[V4]() }

// Localhost6 returns ::1.
func Localhost6() Addr6 { return addrhal.IPv6Localhost[V6]() }

// Unspecified6 returns ::.
func Unspecified6() Addr6 { return addrhal.IPv6Unspecified[V6]() }

// IPFrom4 wraps an IPv4 address in the union.
func IPFrom4(a Addr4) Addr {
	return addrhal.IPFromV4[V6](a)
}

// IPFrom6 wraps an IPv6 address in the union.
func IPFrom6(a Addr6) Addr {
	return addrhal.IPFromV6[V4](a)
}

// AddrPortFrom combines an address and a port into a socket address of the
// matching family. The IPv6 side starts with zero flow-info and scope-id.
func AddrPortFrom(ip Addr, port uint16) AddrPort {
	return addrhal.NewSockAddr[Sock4, Sock6](ip, port)
}

// AddrPort4From combines an IPv4 address and a port.
func AddrPort4From(ip Addr4, port uint16) AddrPort4 {
	return addrhal.NewSockAddrV4[Sock4](ip, port)
}

// AddrPort6From combines an IPv6 address, a port, flow-info and a scope-id.
func AddrPort6From(ip Addr6, port uint16, flowinfo, scopeID uint32) AddrPort6 {
	return addrhal.NewSockAddrV6[Sock6](ip, port, flowinfo, scopeID)
}

// ParseAddr parses text of either family.
func ParseAddr(s string) (Addr, error) {
	return addrparse.ParseIP[V4, V6](s)
}

// MustParseAddr is ParseAddr that panics on error, for tests and constants.
func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(err)
	}
	return a
}

// ParseAddrPort parses socket text of either family.
func ParseAddrPort(s string) (AddrPort, error) {
	return addrparse.ParseSockAddr[Sock4, Sock6, V4, V6](s)
}

// MustParseAddrPort is ParseAddrPort that panics on error.
func MustParseAddrPort(s string) AddrPort {
	sa, err := ParseAddrPort(s)
	if err != nil {
		panic(err)
	}
	return sa
}
