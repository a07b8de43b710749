package stdaddr

import (
	addrhal "github.com/KarmaNetwork/addr-hal"
)

// V4 stores an IPv4 address as four network-order bytes.
type V4 [4]byte

func (V4) FromOctets(o [4]byte) V4 { return V4(o) }
func (v V4) Octets() [4]byte       { return [4]byte(v) }
func (V4) Localhost() V4           { return V4{127, 0, 0, 1} }
func (V4) Unspecified() V4         { return V4{} }
func (V4) Broadcast() V4           { return V4{255, 255, 255, 255} }

// V6 stores an IPv6 address as eight 16-bit segments, most significant
// first.
type V6 [8]uint16

func (V6) FromSegments(s [8]uint16) V6 { return V6(s) }
func (v V6) Segments() [8]uint16       { return [8]uint16(v) }
func (V6) Localhost() V6               { return V6{0, 0, 0, 0, 0, 0, 0, 1} }
func (V6) Unspecified() V6             { return V6{} }

// Sock4 stores an IPv4 socket address as its two parts.
type Sock4 struct {
	ip   addrhal.IPv4Addr[V4]
	port uint16
}

func (Sock4) FromParts(ip addrhal.IPv4Addr[V4], port uint16) Sock4 {
	return Sock4{ip: ip, port: port}
}
func (s Sock4) IP() addrhal.IPv4Addr[V4] { return s.ip }
func (s Sock4) Port() uint16             { return s.port }

// Sock6 stores an IPv6 socket address as its four parts.
type Sock6 struct {
	ip       addrhal.IPv6Addr[V6]
	port     uint16
	flowinfo uint32
	scopeID  uint32
}

func (Sock6) FromParts(ip addrhal.IPv6Addr[V6], port uint16, flowinfo, scopeID uint32) Sock6 {
	return Sock6{ip: ip, port: port, flowinfo: flowinfo, scopeID: scopeID}
}
func (s Sock6) IP() addrhal.IPv6Addr[V6] { return s.ip }
func (s Sock6) Port() uint16             { return s.port }
func (s Sock6) Flowinfo() uint32         { return s.flowinfo }
func (s Sock6) ScopeID() uint32          { return s.scopeID }
