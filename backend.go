package addrhal

// V4Backend is the capability contract a storage type must satisfy to act as
// the physical representation of an IPv4 address. The wrapper types never
// look at the representation itself; every operation goes through this
// interface, so a backend may store its four octets however it likes (plain
// array, packed integer, a C-compatible struct, ...).
//
// FromOctets is a constructor: it is invoked on the zero value of B and must
// return a fully formed value for the given octets, ignoring the receiver.
// The three remaining factories return the conventional fixed addresses.
//
// All operations must be total and O(1). Backends must be comparable so that
// wrapper values support == and can be used as map keys.
type V4Backend[B any] interface {
	comparable

	// FromOctets returns the backend value representing o[0].o[1].o[2].o[3].
	FromOctets(o [4]byte) B

	// Octets returns the four address octets in network order.
	Octets() [4]byte

	// Localhost returns 127.0.0.1.
	Localhost() B
	// Unspecified returns 0.0.0.0.
	Unspecified() B
	// Broadcast returns 255.255.255.255.
	Broadcast() B
}

// V6Backend is the capability contract for IPv6 address storage. The
// canonical unit of representation is the 16-bit segment, most significant
// first; the 16-byte form is derived from it by big-endian serialization.
//
// FromSegments is a constructor invoked on the zero value of B, like
// V4Backend.FromOctets.
type V6Backend[B any] interface {
	comparable

	// FromSegments returns the backend value with the given eight segments.
	FromSegments(s [8]uint16) B

	// Segments returns the eight 16-bit segments, most significant first.
	Segments() [8]uint16

	// Localhost returns ::1.
	Localhost() B
	// Unspecified returns ::.
	Unspecified() B
}

// SockV4Backend is the capability contract for an IPv4 socket address: an
// IPv4 address paired with a 16-bit port. FromParts is a constructor invoked
// on the zero value of S.
//
// Port values are unconstrained; any 16-bit pattern is legal.
type SockV4Backend[S any, B V4Backend[B]] interface {
	comparable

	// FromParts returns the backend value pairing ip with port.
	FromParts(ip IPv4Addr[B], port uint16) S

	IP() IPv4Addr[B]
	Port() uint16
}

// SockV6Backend is the capability contract for an IPv6 socket address: an
// IPv6 address paired with a port, a flow-info word, and a scope-id word.
// FromParts is a constructor invoked on the zero value of S.
//
// Port, flowinfo and scope-id are unconstrained width-only values; the core
// attaches no meaning to them beyond carrying them intact.
type SockV6Backend[S any, B V6Backend[B]] interface {
	comparable

	// FromParts returns the backend value combining all four fields.
	FromParts(ip IPv6Addr[B], port uint16, flowinfo, scopeID uint32) S

	IP() IPv6Addr[B]
	Port() uint16
	Flowinfo() uint32
	ScopeID() uint32
}
