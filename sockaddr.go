package addrhal

// SockAddr is a tagged union over one IPv4 and one IPv6 socket backend,
// paired with the matching address backends. The zero value is the V4
// variant holding the zero backend value.
//
// SockAddr values are comparable and usable as map keys.
type SockAddr[S4 SockV4Backend[S4, B4], S6 SockV6Backend[S6, B6], B4 V4Backend[B4], B6 V6Backend[B6]] struct {
	v4  SockAddrV4[S4, B4]
	v6  SockAddrV6[S6, B6]
	is6 bool
}

// SockAddrSource is implemented by values that can yield a fixed set of
// socket addresses without external resolution. Name resolvers implement
// the same shape in their own packages with their own error handling; the
// in-core implementations never fail, so the method has no error result.
type SockAddrSource[S4 SockV4Backend[S4, B4], S6 SockV6Backend[S6, B6], B4 V4Backend[B4], B6 V6Backend[B6]] interface {
	SockAddrs() []SockAddr[S4, S6, B4, B6]
}

// NewSockAddr returns the socket address ip:port. A V6 address gets zero
// flow-info and scope-id; use SockAddrFromV6 to carry non-zero values.
func NewSockAddr[S4 SockV4Backend[S4, B4], S6 SockV6Backend[S6, B6], B4 V4Backend[B4], B6 V6Backend[B6]](ip IPAddr[B4, B6], port uint16) SockAddr[S4, S6, B4, B6] {
	if v6, ok := ip.V6(); ok {
		return SockAddrFromV6[S4, B4](NewSockAddrV6[S6](v6, port, 0, 0))
	}
	v4, _ := ip.V4()
	return SockAddrFromV4[S6, B6](NewSockAddrV4[S4](v4, port))
}

// SockAddrFromV4 returns the union holding an IPv4 socket address. The IPv6
// backend pair comes first so call sites name only the family the argument
// does not determine: SockAddrFromV4[MyS6, MyV6](sa).
func SockAddrFromV4[S6 SockV6Backend[S6, B6], B6 V6Backend[B6], S4 SockV4Backend[S4, B4], B4 V4Backend[B4]](sa SockAddrV4[S4, B4]) SockAddr[S4, S6, B4, B6] {
	return SockAddr[S4, S6, B4, B6]{v4: sa}
}

// SockAddrFromV6 returns the union holding an IPv6 socket address. The IPv4
// backend pair comes first: SockAddrFromV6[MyS4, MyV4](sa).
func SockAddrFromV6[S4 SockV4Backend[S4, B4], B4 V4Backend[B4], S6 SockV6Backend[S6, B6], B6 V6Backend[B6]](sa SockAddrV6[S6, B6]) SockAddr[S4, S6, B4, B6] {
	return SockAddr[S4, S6, B4, B6]{v6: sa, is6: true}
}

// Is4 reports whether the union holds an IPv4 socket address.
func (sa SockAddr[S4, S6, B4, B6]) Is4() bool {
	return !sa.is6
}

// Is6 reports whether the union holds an IPv6 socket address.
func (sa SockAddr[S4, S6, B4, B6]) Is6() bool {
	return sa.is6
}

// V4 returns the IPv4 variant. ok is false when the union holds IPv6.
func (sa SockAddr[S4, S6, B4, B6]) V4() (SockAddrV4[S4, B4], bool) {
	if sa.is6 {
		var zero SockAddrV4[S4, B4]
		return zero, false
	}
	return sa.v4, true
}

// V6 returns the IPv6 variant. ok is false when the union holds IPv4.
func (sa SockAddr[S4, S6, B4, B6]) V6() (SockAddrV6[S6, B6], bool) {
	if !sa.is6 {
		var zero SockAddrV6[S6, B6]
		return zero, false
	}
	return sa.v6, true
}

// IP returns the address part as a union value.
func (sa SockAddr[S4, S6, B4, B6]) IP() IPAddr[B4, B6] {
	if sa.is6 {
		return IPFromV6[B4](sa.v6.IP())
	}
	return IPFromV4[B6](sa.v4.IP())
}

// Port returns the port part.
func (sa SockAddr[S4, S6, B4, B6]) Port() uint16 {
	if sa.is6 {
		return sa.v6.Port()
	}
	return sa.v4.Port()
}

// SetIP replaces the address part. Within a family the other fields are
// preserved; switching families rebuilds the whole socket address at the
// current port, because the two representations are not bit-compatible.
// The rebuilt V6 side carries zero flow-info and scope-id.
func (sa *SockAddr[S4, S6, B4, B6]) SetIP(ip IPAddr[B4, B6]) {
	switch {
	case !sa.is6 && ip.Is4():
		v4, _ := ip.V4()
		sa.v4.SetIP(v4)
	case sa.is6 && ip.Is6():
		v6, _ := ip.V6()
		sa.v6.SetIP(v6)
	default:
		*sa = NewSockAddr[S4, S6](ip, sa.Port())
	}
}

// SetPort replaces the port part, keeping everything else.
func (sa *SockAddr[S4, S6, B4, B6]) SetPort(port uint16) {
	if sa.is6 {
		sa.v6.SetPort(port)
		return
	}
	sa.v4.SetPort(port)
}

// SockAddrs implements SockAddrSource: the address resolves to itself.
func (sa SockAddr[S4, S6, B4, B6]) SockAddrs() []SockAddr[S4, S6, B4, B6] {
	return []SockAddr[S4, S6, B4, B6]{sa}
}

// AppendTo appends the text form of the active variant to b and returns the
// extended buffer.
func (sa SockAddr[S4, S6, B4, B6]) AppendTo(b []byte) []byte {
	if sa.is6 {
		return sa.v6.AppendTo(b)
	}
	return sa.v4.AppendTo(b)
}

// String returns a.b.c.d:port for the V4 variant and [v6]:port for the V6
// variant.
func (sa SockAddr[S4, S6, B4, B6]) String() string {
	if sa.is6 {
		return sa.v6.String()
	}
	return sa.v4.String()
}

// MarshalText implements encoding.TextMarshaler. The form is the same as
// String.
func (sa SockAddr[S4, S6, B4, B6]) MarshalText() ([]byte, error) {
	return sa.AppendTo(nil), nil
}
