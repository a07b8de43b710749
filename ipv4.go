package addrhal

import (
	"bytes"
	"encoding/binary"
	"errors"
)

var errUnmarshalLength = errors.New("unexpected address byte length")

// IPv4Addr is an IPv4 address whose storage is supplied by the backend B.
// The zero value holds the zero backend value; for backends whose zero value
// encodes all-zero octets it reads as the unspecified address 0.0.0.0.
//
// IPv4Addr values are comparable. Two values are equal exactly when their
// backends are equal, and for any well-behaved backend that coincides with
// octet equality.
type IPv4Addr[B V4Backend[B]] struct {
	inner B
}

// NewIPv4 returns the address a.b.c.d.
func NewIPv4[B V4Backend[B]](a, b, c, d byte) IPv4Addr[B] {
	return IPv4FromOctets[B]([4]byte{a, b, c, d})
}

// IPv4FromOctets returns the address with the given octets.
func IPv4FromOctets[B V4Backend[B]](o [4]byte) IPv4Addr[B] {
	var z B
	return IPv4Addr[B]{inner: z.FromOctets(o)}
}

// IPv4FromUint32 returns the address encoded by v in network byte order, so
// 0x7f000001 is 127.0.0.1.
func IPv4FromUint32[B V4Backend[B]](v uint32) IPv4Addr[B] {
	var o [4]byte
	binary.BigEndian.PutUint32(o[:], v)
	return IPv4FromOctets[B](o)
}

// IPv4FromBackend wraps an already constructed backend value.
func IPv4FromBackend[B V4Backend[B]](b B) IPv4Addr[B] {
	return IPv4Addr[B]{inner: b}
}

// IPv4Localhost returns 127.0.0.1.
func IPv4Localhost[B V4Backend[B]]() IPv4Addr[B] {
	var z B
	return IPv4Addr[B]{inner: z.Localhost()}
}

// IPv4Unspecified returns 0.0.0.0.
func IPv4Unspecified[B V4Backend[B]]() IPv4Addr[B] {
	var z B
	return IPv4Addr[B]{inner: z.Unspecified()}
}

// IPv4Broadcast returns 255.255.255.255.
func IPv4Broadcast[B V4Backend[B]]() IPv4Addr[B] {
	var z B
	return IPv4Addr[B]{inner: z.Broadcast()}
}

// Backend returns the underlying storage value.
func (a IPv4Addr[B]) Backend() B {
	return a.inner
}

// Octets returns the four address octets in network order.
func (a IPv4Addr[B]) Octets() [4]byte {
	return a.inner.Octets()
}

// Uint32 returns the address as a 32-bit integer in network byte order.
// IPv4FromUint32(a.Uint32()) == a.
func (a IPv4Addr[B]) Uint32() uint32 {
	o := a.Octets()
	return binary.BigEndian.Uint32(o[:])
}

// IsUnspecified reports whether a is 0.0.0.0.
func (a IPv4Addr[B]) IsUnspecified() bool {
	return a.Octets() == [4]byte{}
}

// IsLoopback reports whether a is in the loopback block 127.0.0.0/8.
func (a IPv4Addr[B]) IsLoopback() bool {
	return a.Octets()[0] == 127
}

// IsPrivate reports whether a is in one of the RFC 1918 blocks 10.0.0.0/8,
// 172.16.0.0/12 or 192.168.0.0/16.
func (a IPv4Addr[B]) IsPrivate() bool {
	o := a.Octets()
	switch {
	case o[0] == 10:
		return true
	case o[0] == 172 && o[1] >= 16 && o[1] <= 31:
		return true
	case o[0] == 192 && o[1] == 168:
		return true
	}
	return false
}

// IsLinkLocal reports whether a is in the link-local block 169.254.0.0/16.
func (a IPv4Addr[B]) IsLinkLocal() bool {
	o := a.Octets()
	return o[0] == 169 && o[1] == 254
}

// IsBroadcast reports whether a is the limited broadcast address
// 255.255.255.255.
func (a IPv4Addr[B]) IsBroadcast() bool {
	return a.Octets() == [4]byte{255, 255, 255, 255}
}

// IsDocumentation reports whether a is in one of the blocks reserved for
// documentation: 192.0.2.0/24, 198.51.100.0/24 or 203.0.113.0/24.
func (a IPv4Addr[B]) IsDocumentation() bool {
	o := a.Octets()
	switch {
	case o[0] == 192 && o[1] == 0 && o[2] == 2:
		return true
	case o[0] == 198 && o[1] == 51 && o[2] == 100:
		return true
	case o[0] == 203 && o[1] == 0 && o[2] == 113:
		return true
	}
	return false
}

// IsShared reports whether a is in the shared address space 100.64.0.0/10
// used for carrier-grade NAT.
func (a IPv4Addr[B]) IsShared() bool {
	o := a.Octets()
	return o[0] == 100 && o[1]&0xc0 == 0x40
}

// IsIETFProtocolAssignment reports whether a is in 192.0.0.0/24, the block
// reserved for IETF protocol assignments.
func (a IPv4Addr[B]) IsIETFProtocolAssignment() bool {
	o := a.Octets()
	return o[0] == 192 && o[1] == 0 && o[2] == 0
}

// IsBenchmarking reports whether a is in 198.18.0.0/15, the block reserved
// for network interconnect device benchmarking.
func (a IPv4Addr[B]) IsBenchmarking() bool {
	o := a.Octets()
	return o[0] == 198 && o[1]&0xfe == 18
}

// IsReserved reports whether a is in 240.0.0.0/4, the block reserved by IANA
// for future use. The broadcast address is in that range but is not
// considered reserved.
func (a IPv4Addr[B]) IsReserved() bool {
	return a.Octets()[0]&0xf0 == 0xf0 && !a.IsBroadcast()
}

// IsMulticast reports whether a is in the multicast block 224.0.0.0/4.
func (a IPv4Addr[B]) IsMulticast() bool {
	o := a.Octets()
	return o[0] >= 224 && o[0] <= 239
}

// IsGlobal reports whether a is globally routable.
//
// 192.0.0.9 and 192.0.0.10 are globally routable even though the rest of
// 192.0.0.0/24 is an IETF protocol assignment block; that exception is
// checked before the exclusion list and must stay first.
func (a IPv4Addr[B]) IsGlobal() bool {
	o := a.Octets()
	if o[0] == 192 && o[1] == 0 && o[2] == 0 && (o[3] == 9 || o[3] == 10) {
		return true
	}
	return !a.IsPrivate() && !a.IsLoopback() && !a.IsLinkLocal() &&
		!a.IsBroadcast() && !a.IsDocumentation() && !a.IsShared() &&
		!a.IsIETFProtocolAssignment() && !a.IsReserved() &&
		!a.IsBenchmarking() && o[0] != 0
}

// Compare returns -1, 0 or 1 ordering addresses lexicographically over their
// octets.
func (a IPv4Addr[B]) Compare(b IPv4Addr[B]) int {
	ao, bo := a.Octets(), b.Octets()
	return bytes.Compare(ao[:], bo[:])
}

// Less reports whether a sorts before b.
func (a IPv4Addr[B]) Less(b IPv4Addr[B]) bool {
	return a.Compare(b) < 0
}

// AppendTo appends the dotted-decimal form of a to b and returns the
// extended buffer.
func (a IPv4Addr[B]) AppendTo(b []byte) []byte {
	return appendDottedQuad(b, a.Octets())
}

// String returns the dotted-decimal form a.b.c.d.
func (a IPv4Addr[B]) String() string {
	return string(a.AppendTo(make([]byte, 0, maxIPv4TextLen)))
}

// MarshalText implements encoding.TextMarshaler. The form is the same as
// String. Text unmarshaling is deliberately not implemented here; parsing
// belongs to the addrparse package.
func (a IPv4Addr[B]) MarshalText() ([]byte, error) {
	return a.AppendTo(nil), nil
}

// MarshalBinary implements encoding.BinaryMarshaler, returning the four
// octets.
func (a IPv4Addr[B]) MarshalBinary() ([]byte, error) {
	o := a.Octets()
	return o[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It expects exactly
// four bytes.
func (a *IPv4Addr[B]) UnmarshalBinary(data []byte) error {
	if len(data) != 4 {
		return errUnmarshalLength
	}
	var o [4]byte
	copy(o[:], data)
	*a = IPv4FromOctets[B](o)
	return nil
}
