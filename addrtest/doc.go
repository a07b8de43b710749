// Package addrtest provides a conformance suite for backend implementations.
//
// A backend author calls the Run functions from a regular test to verify the
// capability contracts end to end: construction round-trips, the well-known
// constants, classification at the boundary values, canonical rendering,
// ordering and marshaling.
//
//	func TestMyBackend(t *testing.T) {
//		addrtest.RunV4Backend[MyV4](t)
//	}
//
// The package also ships reference backends with deliberately non-array
// storage (PackedV4, PackedV6, RawSock4, RawSock6). They exist to prove that
// the core reaches storage only through the contracts, and they double as
// examples of backends over packed words and kernel-style socket structs.
package addrtest
