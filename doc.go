// Package addrhal provides IP and socket address values whose physical
// storage is supplied by pluggable backends, with RFC-derived classification
// and canonical text rendering written once against the backend contracts.
//
// # Features
//
//   - Backend-agnostic storage: wrappers never inspect representation, only
//     the V4Backend/V6Backend/SockV4Backend/SockV6Backend capability contracts
//   - Full classification battery: loopback, private, link-local, shared,
//     benchmarking, documentation, reserved, multicast, global routability,
//     IPv6 multicast scope derivation
//   - Canonical rendering: dotted decimal for IPv4, RFC 5952 zero-run
//     compression for IPv6, bracketed [v6]:port socket forms
//   - Tagged unions IPAddr and SockAddr pairing one backend per family, with
//     every IPv4 value ordered before every IPv6 value
//   - Pure value semantics: comparable types, no allocation in classification,
//     no I/O, no global state
//
// # Basic Usage
//
// Most callers want the array-backed types in the stdaddr subpackage:
//
//	a := stdaddr.New4(192, 0, 2, 1)
//	fmt.Println(a.IsDocumentation()) // true
//
//	b := stdaddr.MustParseAddr("2001:db8::1")
//	fmt.Println(b.IsGlobal()) // false
//
// Generic code works against any backend satisfying the contracts:
//
//	func describe[B addrhal.V4Backend[B]](a addrhal.IPv4Addr[B]) string {
//	    if a.IsPrivate() {
//	        return "private"
//	    }
//	    return a.String()
//	}
//
// # Supplying a Backend
//
// A backend is a comparable type with constructor methods invoked on its
// zero value. A minimal IPv4 backend:
//
//	type V4 [4]byte
//
//	func (V4) FromOctets(o [4]byte) V4 { return V4(o) }
//	func (v V4) Octets() [4]byte       { return [4]byte(v) }
//	func (V4) Localhost() V4           { return V4{127, 0, 0, 1} }
//	func (V4) Unspecified() V4         { return V4{} }
//	func (V4) Broadcast() V4           { return V4{255, 255, 255, 255} }
//
// Storage layout is entirely the backend's business; the addrtest subpackage
// ships a conformance suite plus reference backends with packed integer and
// C-struct-like layouts to verify that independence.
//
// # Parsing
//
// The core renders text but never parses it. The addrparse subpackage turns
// strings into values through the same construction contracts, with its own
// error taxonomy; core output always round-trips through a conformant
// parser.
//
// # Concurrency
//
// All types are immutable values; copies are independent and concurrent
// readers need no locking. The socket setters mutate an exclusively owned
// value and are not synchronized.
package addrhal
