package addrtest

import (
	"encoding/binary"

	addrhal "github.com/KarmaNetwork/addr-hal"
)

const (
	afInet  = 2
	afInet6 = 10
)

// PackedV4 stores an IPv4 address as one big-endian word instead of an
// octet array.
type PackedV4 uint32

func (PackedV4) FromOctets(o [4]byte) PackedV4 {
	return PackedV4(binary.BigEndian.Uint32(o[:]))
}

func (v PackedV4) Octets() [4]byte {
	var o [4]byte
	binary.BigEndian.PutUint32(o[:], uint32(v))
	return o
}

func (PackedV4) Localhost() PackedV4   { return 0x7f000001 }
func (PackedV4) Unspecified() PackedV4 { return 0 }
func (PackedV4) Broadcast() PackedV4   { return 0xffffffff }

// PackedV6 stores an IPv6 address as two 64-bit words, high half first.
type PackedV6 struct {
	hi, lo uint64
}

func (PackedV6) FromSegments(s [8]uint16) PackedV6 {
	var hi, lo uint64
	for i := 0; i < 4; i++ {
		hi = hi<<16 | uint64(s[i])
		lo = lo<<16 | uint64(s[i+4])
	}
	return PackedV6{hi: hi, lo: lo}
}

func (p PackedV6) Segments() [8]uint16 {
	var s [8]uint16
	for i := 0; i < 4; i++ {
		shift := 48 - 16*i
		s[i] = uint16(p.hi >> shift)
		s[i+4] = uint16(p.lo >> shift)
	}
	return s
}

func (PackedV6) Localhost() PackedV6   { return PackedV6{lo: 1} }
func (PackedV6) Unspecified() PackedV6 { return PackedV6{} }

// RawSock4 lays an IPv4 socket address out like the kernel's sockaddr_in:
// family tag, big-endian port bytes, address octets and a pad field. The
// zero value is not a canonical address; always construct through FromParts.
type RawSock4 struct {
	family uint8
	port   [2]byte
	addr   [4]byte
	zero   [8]byte
}

func (RawSock4) FromParts(ip addrhal.IPv4Addr[PackedV4], port uint16) RawSock4 {
	var r RawSock4
	r.family = afInet
	binary.BigEndian.PutUint16(r.port[:], port)
	r.addr = ip.Octets()
	return r
}

func (r RawSock4) IP() addrhal.IPv4Addr[PackedV4] {
	return addrhal.IPv4FromOctets[PackedV4](r.addr)
}

func (r RawSock4) Port() uint16 {
	return binary.BigEndian.Uint16(r.port[:])
}

// RawSock6 lays an IPv6 socket address out like the kernel's sockaddr_in6.
type RawSock6 struct {
	family   uint8
	port     [2]byte
	flowinfo [4]byte
	addr     [16]byte
	scopeID  [4]byte
}

func (RawSock6) FromParts(ip addrhal.IPv6Addr[PackedV6], port uint16, flowinfo, scopeID uint32) RawSock6 {
	var r RawSock6
	r.family = afInet6
	binary.BigEndian.PutUint16(r.port[:], port)
	binary.BigEndian.PutUint32(r.flowinfo[:], flowinfo)
	r.addr = ip.Octets()
	binary.BigEndian.PutUint32(r.scopeID[:], scopeID)
	return r
}

func (r RawSock6) IP() addrhal.IPv6Addr[PackedV6] {
	return addrhal.IPv6FromOctets[PackedV6](r.addr)
}

func (r RawSock6) Port() uint16 {
	return binary.BigEndian.Uint16(r.port[:])
}

func (r RawSock6) Flowinfo() uint32 {
	return binary.BigEndian.Uint32(r.flowinfo[:])
}

func (r RawSock6) ScopeID() uint32 {
	return binary.BigEndian.Uint32(r.scopeID[:])
}
