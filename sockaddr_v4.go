package addrhal

import "strconv"

// SockAddrV4 is an IPv4 socket address whose storage is supplied by the
// backend S: an IPv4 address plus a 16-bit port.
//
// SockAddrV4 values are comparable. The setters replace the whole backend
// value through FromParts; no partially updated state is ever observable.
type SockAddrV4[S SockV4Backend[S, B], B V4Backend[B]] struct {
	inner S
}

// NewSockAddrV4 returns the socket address ip:port.
func NewSockAddrV4[S SockV4Backend[S, B], B V4Backend[B]](ip IPv4Addr[B], port uint16) SockAddrV4[S, B] {
	var z S
	return SockAddrV4[S, B]{inner: z.FromParts(ip, port)}
}

// SockAddrV4FromBackend wraps an already constructed backend value.
func SockAddrV4FromBackend[S SockV4Backend[S, B], B V4Backend[B]](s S) SockAddrV4[S, B] {
	return SockAddrV4[S, B]{inner: s}
}

// Backend returns the underlying storage value.
func (sa SockAddrV4[S, B]) Backend() S {
	return sa.inner
}

// IP returns the address part.
func (sa SockAddrV4[S, B]) IP() IPv4Addr[B] {
	return sa.inner.IP()
}

// Port returns the port part.
func (sa SockAddrV4[S, B]) Port() uint16 {
	return sa.inner.Port()
}

// SetIP replaces the address part, keeping the port.
func (sa *SockAddrV4[S, B]) SetIP(ip IPv4Addr[B]) {
	sa.inner = sa.inner.FromParts(ip, sa.inner.Port())
}

// SetPort replaces the port part, keeping the address.
func (sa *SockAddrV4[S, B]) SetPort(port uint16) {
	sa.inner = sa.inner.FromParts(sa.inner.IP(), port)
}

// AppendTo appends the a.b.c.d:port form of sa to b and returns the extended
// buffer.
func (sa SockAddrV4[S, B]) AppendTo(b []byte) []byte {
	b = sa.IP().AppendTo(b)
	b = append(b, ':')
	return strconv.AppendUint(b, uint64(sa.Port()), 10)
}

// String returns the a.b.c.d:port form.
func (sa SockAddrV4[S, B]) String() string {
	return string(sa.AppendTo(make([]byte, 0, maxIPv4TextLen+6)))
}

// MarshalText implements encoding.TextMarshaler. The form is the same as
// String.
func (sa SockAddrV4[S, B]) MarshalText() ([]byte, error) {
	return sa.AppendTo(nil), nil
}
