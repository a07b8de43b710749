package addrhal

import (
	"bytes"
	"encoding/binary"
)

// IPv6Addr is an IPv6 address whose storage is supplied by the backend B.
// The canonical unit is the 16-bit segment; the 16-byte form is always the
// big-endian serialization of the segments.
//
// IPv6Addr values are comparable and usable as map keys.
type IPv6Addr[B V6Backend[B]] struct {
	inner B
}

// NewIPv6 returns the address a:b:c:d:e:f:g:h.
func NewIPv6[B V6Backend[B]](a, b, c, d, e, f, g, h uint16) IPv6Addr[B] {
	return IPv6FromSegments[B]([8]uint16{a, b, c, d, e, f, g, h})
}

// IPv6FromSegments returns the address with the given segments.
func IPv6FromSegments[B V6Backend[B]](s [8]uint16) IPv6Addr[B] {
	var z B
	return IPv6Addr[B]{inner: z.FromSegments(s)}
}

// IPv6FromOctets returns the address encoded by the sixteen bytes of o,
// interpreted as eight big-endian segments.
func IPv6FromOctets[B V6Backend[B]](o [16]byte) IPv6Addr[B] {
	var s [8]uint16
	for i := range s {
		s[i] = binary.BigEndian.Uint16(o[2*i:])
	}
	return IPv6FromSegments[B](s)
}

// IPv6FromUint128 returns the address encoded by the 128-bit integer whose
// high and low 64-bit halves are given in network byte order.
func IPv6FromUint128[B V6Backend[B]](hi, lo uint64) IPv6Addr[B] {
	return IPv6FromSegments[B]([8]uint16{
		uint16(hi >> 48), uint16(hi >> 32), uint16(hi >> 16), uint16(hi),
		uint16(lo >> 48), uint16(lo >> 32), uint16(lo >> 16), uint16(lo),
	})
}

// IPv6FromBackend wraps an already constructed backend value.
func IPv6FromBackend[B V6Backend[B]](b B) IPv6Addr[B] {
	return IPv6Addr[B]{inner: b}
}

// IPv6Localhost returns ::1.
func IPv6Localhost[B V6Backend[B]]() IPv6Addr[B] {
	var z B
	return IPv6Addr[B]{inner: z.Localhost()}
}

// IPv6Unspecified returns ::.
func IPv6Unspecified[B V6Backend[B]]() IPv6Addr[B] {
	var z B
	return IPv6Addr[B]{inner: z.Unspecified()}
}

// Backend returns the underlying storage value.
func (a IPv6Addr[B]) Backend() B {
	return a.inner
}

// Segments returns the eight 16-bit segments, most significant first.
func (a IPv6Addr[B]) Segments() [8]uint16 {
	return a.inner.Segments()
}

// Octets returns the sixteen address bytes, the big-endian serialization of
// the segments in order.
func (a IPv6Addr[B]) Octets() [16]byte {
	s := a.Segments()
	var o [16]byte
	for i := range s {
		binary.BigEndian.PutUint16(o[2*i:], s[i])
	}
	return o
}

// Uint128 returns the address as a 128-bit integer in network byte order,
// split into its high and low 64-bit halves.
// IPv6FromUint128(a.Uint128()) == a.
func (a IPv6Addr[B]) Uint128() (hi, lo uint64) {
	s := a.Segments()
	hi = uint64(s[0])<<48 | uint64(s[1])<<32 | uint64(s[2])<<16 | uint64(s[3])
	lo = uint64(s[4])<<48 | uint64(s[5])<<32 | uint64(s[6])<<16 | uint64(s[7])
	return hi, lo
}

// IsUnspecified reports whether a is ::.
func (a IPv6Addr[B]) IsUnspecified() bool {
	return a.Segments() == [8]uint16{}
}

// IsLoopback reports whether a is ::1.
func (a IPv6Addr[B]) IsLoopback() bool {
	return a.Segments() == [8]uint16{0, 0, 0, 0, 0, 0, 0, 1}
}

// IsMulticast reports whether a is in ff00::/8.
func (a IPv6Addr[B]) IsMulticast() bool {
	return a.Segments()[0]&0xff00 == 0xff00
}

// IsUnicastLinkLocal reports whether a is in fe80::/10. This is the loose
// interpretation that treats the whole block as link-local; see
// IsUnicastLinkLocalStrict for the literal fe80::/64 reading.
func (a IPv6Addr[B]) IsUnicastLinkLocal() bool {
	return a.Segments()[0]&0xffc0 == 0xfe80
}

// IsUnicastLinkLocalStrict reports whether a is link-local under the strict
// reading: the first segment is exactly 0xfe80 and segments one through
// three are zero.
func (a IPv6Addr[B]) IsUnicastLinkLocalStrict() bool {
	s := a.Segments()
	return s[0] == 0xfe80 && s[1] == 0 && s[2] == 0 && s[3] == 0
}

// IsUnicastSiteLocal reports whether a is in the deprecated site-local block
// fec0::/10.
func (a IPv6Addr[B]) IsUnicastSiteLocal() bool {
	return a.Segments()[0]&0xffc0 == 0xfec0
}

// IsUniqueLocal reports whether a is in the unique local block fc00::/7.
func (a IPv6Addr[B]) IsUniqueLocal() bool {
	return a.Segments()[0]&0xfe00 == 0xfc00
}

// IsDocumentation reports whether a is in the documentation block
// 2001:db8::/32.
func (a IPv6Addr[B]) IsDocumentation() bool {
	s := a.Segments()
	return s[0] == 0x2001 && s[1] == 0xdb8
}

// IsUnicastGlobal reports whether a is unicast and not confined to a smaller
// scope: not multicast, loopback, link-local, unique local, unspecified or
// documentation.
func (a IPv6Addr[B]) IsUnicastGlobal() bool {
	return !a.IsMulticast() && !a.IsLoopback() && !a.IsUnicastLinkLocal() &&
		!a.IsUniqueLocal() && !a.IsUnspecified() && !a.IsDocumentation()
}

// MulticastScope returns the scope of a multicast address. ok is false when
// a is not multicast, and also when the scope nibble has no assigned
// meaning even though the address is multicast.
func (a IPv6Addr[B]) MulticastScope() (scope MulticastScope, ok bool) {
	if !a.IsMulticast() {
		return 0, false
	}
	switch a.Segments()[0] & 0x000f {
	case 1:
		return ScopeInterfaceLocal, true
	case 2:
		return ScopeLinkLocal, true
	case 3:
		return ScopeRealmLocal, true
	case 4:
		return ScopeAdminLocal, true
	case 5:
		return ScopeSiteLocal, true
	case 8:
		return ScopeOrganizationLocal, true
	case 14:
		return ScopeGlobal, true
	default:
		return 0, false
	}
}

// IsGlobal reports whether a is globally routable: either a multicast
// address of global scope, or a unicast-global address. A multicast address
// whose scope nibble is unassigned is never global.
func (a IPv6Addr[B]) IsGlobal() bool {
	if scope, ok := a.MulticastScope(); ok {
		return scope == ScopeGlobal
	}
	if a.IsMulticast() {
		return false
	}
	return a.IsUnicastGlobal()
}

// Compare returns -1, 0 or 1 ordering addresses lexicographically over their
// segments, most significant first.
func (a IPv6Addr[B]) Compare(b IPv6Addr[B]) int {
	ao, bo := a.Octets(), b.Octets()
	return bytes.Compare(ao[:], bo[:])
}

// Less reports whether a sorts before b.
func (a IPv6Addr[B]) Less(b IPv6Addr[B]) bool {
	return a.Compare(b) < 0
}

// AppendTo appends the canonical text form of a to b and returns the
// extended buffer.
func (a IPv6Addr[B]) AppendTo(b []byte) []byte {
	return appendIPv6(b, a.Segments())
}

// String returns the canonical text form: :: and ::1 for the two fixed
// addresses, embedded dotted-quad forms for IPv4-compatible and IPv4-mapped
// addresses, and otherwise lowercase hex groups with the longest zero run
// compressed to ::.
func (a IPv6Addr[B]) String() string {
	return string(a.AppendTo(make([]byte, 0, maxIPv6TextLen)))
}

// MarshalText implements encoding.TextMarshaler. The form is the same as
// String. Text unmarshaling belongs to the addrparse package.
func (a IPv6Addr[B]) MarshalText() ([]byte, error) {
	return a.AppendTo(nil), nil
}

// MarshalBinary implements encoding.BinaryMarshaler, returning the sixteen
// address bytes.
func (a IPv6Addr[B]) MarshalBinary() ([]byte, error) {
	o := a.Octets()
	return o[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It expects exactly
// sixteen bytes.
func (a *IPv6Addr[B]) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return errUnmarshalLength
	}
	var o [16]byte
	copy(o[:], data)
	*a = IPv6FromOctets[B](o)
	return nil
}

// ToIPv4 converts an IPv6 address to IPv4 when it has an embedded IPv4 form:
// the first five segments zero and segment five either zero (IPv4-compatible)
// or 0xffff (IPv4-mapped). The octets come from segments six and seven.
//
// The result backend parameter comes first so call sites can name it alone:
// ToIPv4[MyV4](a).
func ToIPv4[B4 V4Backend[B4], B6 V6Backend[B6]](a IPv6Addr[B6]) (IPv4Addr[B4], bool) {
	s := a.Segments()
	if s[0] != 0 || s[1] != 0 || s[2] != 0 || s[3] != 0 || s[4] != 0 {
		var zero IPv4Addr[B4]
		return zero, false
	}
	if s[5] != 0 && s[5] != 0xffff {
		var zero IPv4Addr[B4]
		return zero, false
	}
	return NewIPv4[B4](byte(s[6]>>8), byte(s[6]), byte(s[7]>>8), byte(s[7])), true
}

// ToIPv6Mapped returns the IPv4-mapped IPv6 address ::ffff:a.b.c.d for an
// IPv4 address. The result backend parameter comes first: ToIPv6Mapped[MyV6](a).
func ToIPv6Mapped[B6 V6Backend[B6], B4 V4Backend[B4]](a IPv4Addr[B4]) IPv6Addr[B6] {
	o := a.Octets()
	return IPv6FromSegments[B6]([8]uint16{
		0, 0, 0, 0, 0, 0xffff,
		uint16(o[0])<<8 | uint16(o[1]),
		uint16(o[2])<<8 | uint16(o[3]),
	})
}

// ToIPv6Compatible returns the deprecated IPv4-compatible IPv6 address
// ::a.b.c.d for an IPv4 address. The result backend parameter comes first.
func ToIPv6Compatible[B6 V6Backend[B6], B4 V4Backend[B4]](a IPv4Addr[B4]) IPv6Addr[B6] {
	o := a.Octets()
	return IPv6FromSegments[B6]([8]uint16{
		0, 0, 0, 0, 0, 0,
		uint16(o[0])<<8 | uint16(o[1]),
		uint16(o[2])<<8 | uint16(o[3]),
	})
}
