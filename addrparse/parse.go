package addrparse

import (
	"fmt"
	"net/netip"

	addrhal "github.com/KarmaNetwork/addr-hal"
)

// parseAddr runs the reference parser and applies the zone policy shared by
// every entry point.
func parseAddr(s string) (netip.Addr, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, &ParseError{Input: s, Err: fmt.Errorf("%w: %v", ErrMalformedText, err)}
	}
	if a.Zone() != "" {
		return netip.Addr{}, &ParseError{Input: s, Err: ErrZoneUnsupported}
	}
	return a, nil
}

func parseAddrPort(s string) (netip.AddrPort, error) {
	ap, err := netip.ParseAddrPort(s)
	if err != nil {
		return netip.AddrPort{}, &ParseError{Input: s, Err: fmt.Errorf("%w: %v", ErrMalformedText, err)}
	}
	if ap.Addr().Zone() != "" {
		return netip.AddrPort{}, &ParseError{Input: s, Err: ErrZoneUnsupported}
	}
	return ap, nil
}

// ParseIPv4 parses dotted-decimal text into an IPv4 address on backend B.
// IPv6 text of any kind, including IPv4-mapped forms, is a family mismatch.
func ParseIPv4[B addrhal.V4Backend[B]](s string) (addrhal.IPv4Addr[B], error) {
	var zero addrhal.IPv4Addr[B]
	a, err := parseAddr(s)
	if err != nil {
		return zero, err
	}
	if !a.Is4() {
		return zero, &ParseError{Input: s, Err: fmt.Errorf("%w: want IPv4, have IPv6", ErrFamilyMismatch)}
	}
	return addrhal.IPv4FromOctets[B](a.As4()), nil
}

// ParseIPv6 parses IPv6 text into an address on backend B. IPv4-mapped text
// such as "::ffff:1.2.3.4" stays IPv6; converting it down is the caller's
// explicit choice via ToIPv4.
func ParseIPv6[B addrhal.V6Backend[B]](s string) (addrhal.IPv6Addr[B], error) {
	var zero addrhal.IPv6Addr[B]
	a, err := parseAddr(s)
	if err != nil {
		return zero, err
	}
	if a.Is4() {
		return zero, &ParseError{Input: s, Err: fmt.Errorf("%w: want IPv6, have IPv4", ErrFamilyMismatch)}
	}
	return addrhal.IPv6FromOctets[B](a.As16()), nil
}

// ParseIP parses text of either family into the union, choosing the variant
// by the syntactic family of the input.
func ParseIP[B4 addrhal.V4Backend[B4], B6 addrhal.V6Backend[B6]](s string) (addrhal.IPAddr[B4, B6], error) {
	var zero addrhal.IPAddr[B4, B6]
	a, err := parseAddr(s)
	if err != nil {
		return zero, err
	}
	if a.Is4() {
		return addrhal.IPFromV4[B6](addrhal.IPv4FromOctets[B4](a.As4())), nil
	}
	return addrhal.IPFromV6[B4](addrhal.IPv6FromOctets[B6](a.As16())), nil
}

// ParseSockAddrV4 parses "a.b.c.d:port" into an IPv4 socket address.
func ParseSockAddrV4[S addrhal.SockV4Backend[S, B], B addrhal.V4Backend[B]](s string) (addrhal.SockAddrV4[S, B], error) {
	var zero addrhal.SockAddrV4[S, B]
	ap, err := parseAddrPort(s)
	if err != nil {
		return zero, err
	}
	if !ap.Addr().Is4() {
		return zero, &ParseError{Input: s, Err: fmt.Errorf("%w: want IPv4, have IPv6", ErrFamilyMismatch)}
	}
	return addrhal.NewSockAddrV4[S](addrhal.IPv4FromOctets[B](ap.Addr().As4()), ap.Port()), nil
}

// ParseSockAddrV6 parses "[v6]:port" into an IPv6 socket address. Text
// carries neither flow-info nor scope-id, so both come back zero.
func ParseSockAddrV6[S addrhal.SockV6Backend[S, B], B addrhal.V6Backend[B]](s string) (addrhal.SockAddrV6[S, B], error) {
	var zero addrhal.SockAddrV6[S, B]
	ap, err := parseAddrPort(s)
	if err != nil {
		return zero, err
	}
	if ap.Addr().Is4() {
		return zero, &ParseError{Input: s, Err: fmt.Errorf("%w: want IPv6, have IPv4", ErrFamilyMismatch)}
	}
	return addrhal.NewSockAddrV6[S](addrhal.IPv6FromOctets[B](ap.Addr().As16()), ap.Port(), 0, 0), nil
}

// ParseSockAddr parses socket text of either family into the union.
func ParseSockAddr[S4 addrhal.SockV4Backend[S4, B4], S6 addrhal.SockV6Backend[S6, B6], B4 addrhal.V4Backend[B4], B6 addrhal.V6Backend[B6]](s string) (addrhal.SockAddr[S4, S6, B4, B6], error) {
	var zero addrhal.SockAddr[S4, S6, B4, B6]
	ap, err := parseAddrPort(s)
	if err != nil {
		return zero, err
	}
	if ap.Addr().Is4() {
		sa := addrhal.NewSockAddrV4[S4](addrhal.IPv4FromOctets[B4](ap.Addr().As4()), ap.Port())
		return addrhal.SockAddrFromV4[S6, B6](sa), nil
	}
	sa := addrhal.NewSockAddrV6[S6](addrhal.IPv6FromOctets[B6](ap.Addr().As16()), ap.Port(), 0, 0)
	return addrhal.SockAddrFromV6[S4, B4](sa), nil
}
