package addrhal

import "strconv"

// SockAddrV6 is an IPv6 socket address whose storage is supplied by the
// backend S: an IPv6 address plus a 16-bit port, a 32-bit flow-info word and
// a 32-bit scope-id word.
//
// SockAddrV6 values are comparable. The setters replace the whole backend
// value through FromParts; no partially updated state is ever observable.
type SockAddrV6[S SockV6Backend[S, B], B V6Backend[B]] struct {
	inner S
}

// NewSockAddrV6 returns the socket address [ip]:port with the given
// flow-info and scope-id.
func NewSockAddrV6[S SockV6Backend[S, B], B V6Backend[B]](ip IPv6Addr[B], port uint16, flowinfo, scopeID uint32) SockAddrV6[S, B] {
	var z S
	return SockAddrV6[S, B]{inner: z.FromParts(ip, port, flowinfo, scopeID)}
}

// SockAddrV6FromBackend wraps an already constructed backend value.
func SockAddrV6FromBackend[S SockV6Backend[S, B], B V6Backend[B]](s S) SockAddrV6[S, B] {
	return SockAddrV6[S, B]{inner: s}
}

// Backend returns the underlying storage value.
func (sa SockAddrV6[S, B]) Backend() S {
	return sa.inner
}

// IP returns the address part.
func (sa SockAddrV6[S, B]) IP() IPv6Addr[B] {
	return sa.inner.IP()
}

// Port returns the port part.
func (sa SockAddrV6[S, B]) Port() uint16 {
	return sa.inner.Port()
}

// Flowinfo returns the flow-info word.
func (sa SockAddrV6[S, B]) Flowinfo() uint32 {
	return sa.inner.Flowinfo()
}

// ScopeID returns the scope-id word.
func (sa SockAddrV6[S, B]) ScopeID() uint32 {
	return sa.inner.ScopeID()
}

// SetIP replaces the address part, keeping port, flow-info and scope-id.
func (sa *SockAddrV6[S, B]) SetIP(ip IPv6Addr[B]) {
	sa.inner = sa.inner.FromParts(ip, sa.inner.Port(), sa.inner.Flowinfo(), sa.inner.ScopeID())
}

// SetPort replaces the port part, keeping everything else.
func (sa *SockAddrV6[S, B]) SetPort(port uint16) {
	sa.inner = sa.inner.FromParts(sa.inner.IP(), port, sa.inner.Flowinfo(), sa.inner.ScopeID())
}

// SetFlowinfo replaces the flow-info word, keeping everything else.
func (sa *SockAddrV6[S, B]) SetFlowinfo(flowinfo uint32) {
	sa.inner = sa.inner.FromParts(sa.inner.IP(), sa.inner.Port(), flowinfo, sa.inner.ScopeID())
}

// SetScopeID replaces the scope-id word, keeping everything else.
func (sa *SockAddrV6[S, B]) SetScopeID(scopeID uint32) {
	sa.inner = sa.inner.FromParts(sa.inner.IP(), sa.inner.Port(), sa.inner.Flowinfo(), scopeID)
}

// AppendTo appends the [v6]:port form of sa to b and returns the extended
// buffer. Flow-info and scope-id have no text form.
func (sa SockAddrV6[S, B]) AppendTo(b []byte) []byte {
	b = append(b, '[')
	b = sa.IP().AppendTo(b)
	b = append(b, ']', ':')
	return strconv.AppendUint(b, uint64(sa.Port()), 10)
}

// String returns the [v6]:port form.
func (sa SockAddrV6[S, B]) String() string {
	return string(sa.AppendTo(make([]byte, 0, maxIPv6TextLen+8)))
}

// MarshalText implements encoding.TextMarshaler. The form is the same as
// String.
func (sa SockAddrV6[S, B]) MarshalText() ([]byte, error) {
	return sa.AppendTo(nil), nil
}
