package addrhal

// Array-backed mock backends for exercising the generic layer in-package.
// The stdaddr and addrtest packages carry the exported equivalents; these
// stay minimal on purpose.

type mockV4 [4]byte

func (mockV4) FromOctets(o [4]byte) mockV4 { return mockV4(o) }
func (v mockV4) Octets() [4]byte           { return [4]byte(v) }
func (mockV4) Localhost() mockV4           { return mockV4{127, 0, 0, 1} }
func (mockV4) Unspecified() mockV4         { return mockV4{} }
func (mockV4) Broadcast() mockV4           { return mockV4{255, 255, 255, 255} }

type mockV6 [8]uint16

func (mockV6) FromSegments(s [8]uint16) mockV6 { return mockV6(s) }
func (v mockV6) Segments() [8]uint16           { return [8]uint16(v) }
func (mockV6) Localhost() mockV6               { return mockV6{0, 0, 0, 0, 0, 0, 0, 1} }
func (mockV6) Unspecified() mockV6             { return mockV6{} }

type mockSock4 struct {
	ip   IPv4Addr[mockV4]
	port uint16
}

func (mockSock4) FromParts(ip IPv4Addr[mockV4], port uint16) mockSock4 {
	return mockSock4{ip: ip, port: port}
}
func (s mockSock4) IP() IPv4Addr[mockV4] { return s.ip }
func (s mockSock4) Port() uint16         { return s.port }

type mockSock6 struct {
	ip       IPv6Addr[mockV6]
	port     uint16
	flowinfo uint32
	scopeID  uint32
}

func (mockSock6) FromParts(ip IPv6Addr[mockV6], port uint16, flowinfo, scopeID uint32) mockSock6 {
	return mockSock6{ip: ip, port: port, flowinfo: flowinfo, scopeID: scopeID}
}
func (s mockSock6) IP() IPv6Addr[mockV6] { return s.ip }
func (s mockSock6) Port() uint16         { return s.port }
func (s mockSock6) Flowinfo() uint32     { return s.flowinfo }
func (s mockSock6) ScopeID() uint32      { return s.scopeID }

func mk4(a, b, c, d byte) IPv4Addr[mockV4] {
	return NewIPv4[mockV4](a, b, c, d)
}

func mk6(a, b, c, d, e, f, g, h uint16) IPv6Addr[mockV6] {
	return NewIPv6[mockV6](a, b, c, d, e, f, g, h)
}
