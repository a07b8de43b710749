package addrhal

// IPAddr is a tagged union over one IPv4 and one IPv6 backend. The pairing
// of the two families happens here and only here; the per-family wrappers
// know nothing about each other.
//
// The zero value is the V4 variant holding the zero backend value. IPAddr
// values are comparable and usable as map keys.
type IPAddr[B4 V4Backend[B4], B6 V6Backend[B6]] struct {
	v4  IPv4Addr[B4]
	v6  IPv6Addr[B6]
	is6 bool
}

// IPFromV4 returns the union holding an IPv4 address. The IPv6 backend
// parameter comes first so call sites can name it alone: IPFromV4[MyV6](a).
func IPFromV4[B6 V6Backend[B6], B4 V4Backend[B4]](a IPv4Addr[B4]) IPAddr[B4, B6] {
	return IPAddr[B4, B6]{v4: a}
}

// IPFromV6 returns the union holding an IPv6 address. The IPv4 backend
// parameter comes first: IPFromV6[MyV4](a).
func IPFromV6[B4 V4Backend[B4], B6 V6Backend[B6]](a IPv6Addr[B6]) IPAddr[B4, B6] {
	return IPAddr[B4, B6]{v6: a, is6: true}
}

// Is4 reports whether the union holds an IPv4 address.
func (ip IPAddr[B4, B6]) Is4() bool {
	return !ip.is6
}

// Is6 reports whether the union holds an IPv6 address.
func (ip IPAddr[B4, B6]) Is6() bool {
	return ip.is6
}

// V4 returns the IPv4 variant. ok is false when the union holds IPv6.
func (ip IPAddr[B4, B6]) V4() (IPv4Addr[B4], bool) {
	if ip.is6 {
		var zero IPv4Addr[B4]
		return zero, false
	}
	return ip.v4, true
}

// V6 returns the IPv6 variant. ok is false when the union holds IPv4.
func (ip IPAddr[B4, B6]) V6() (IPv6Addr[B6], bool) {
	if !ip.is6 {
		var zero IPv6Addr[B6]
		return zero, false
	}
	return ip.v6, true
}

// To4 returns an IPv4 view of the union: the V4 variant itself, or the
// embedded address of an IPv4-compatible or IPv4-mapped V6 variant.
func (ip IPAddr[B4, B6]) To4() (IPv4Addr[B4], bool) {
	if !ip.is6 {
		return ip.v4, true
	}
	return ToIPv4[B4](ip.v6)
}

// IsUnspecified reports whether the active variant is its family's
// unspecified address.
func (ip IPAddr[B4, B6]) IsUnspecified() bool {
	if ip.is6 {
		return ip.v6.IsUnspecified()
	}
	return ip.v4.IsUnspecified()
}

// IsLoopback reports whether the active variant is a loopback address.
func (ip IPAddr[B4, B6]) IsLoopback() bool {
	if ip.is6 {
		return ip.v6.IsLoopback()
	}
	return ip.v4.IsLoopback()
}

// IsGlobal reports whether the active variant is globally routable.
func (ip IPAddr[B4, B6]) IsGlobal() bool {
	if ip.is6 {
		return ip.v6.IsGlobal()
	}
	return ip.v4.IsGlobal()
}

// IsMulticast reports whether the active variant is a multicast address.
func (ip IPAddr[B4, B6]) IsMulticast() bool {
	if ip.is6 {
		return ip.v6.IsMulticast()
	}
	return ip.v4.IsMulticast()
}

// IsDocumentation reports whether the active variant is in a documentation
// block.
func (ip IPAddr[B4, B6]) IsDocumentation() bool {
	if ip.is6 {
		return ip.v6.IsDocumentation()
	}
	return ip.v4.IsDocumentation()
}

// Compare orders every IPv4 value before every IPv6 value regardless of bit
// pattern, then lexicographically within a family.
func (ip IPAddr[B4, B6]) Compare(other IPAddr[B4, B6]) int {
	if ip.is6 != other.is6 {
		if ip.is6 {
			return 1
		}
		return -1
	}
	if ip.is6 {
		return ip.v6.Compare(other.v6)
	}
	return ip.v4.Compare(other.v4)
}

// Less reports whether ip sorts before other.
func (ip IPAddr[B4, B6]) Less(other IPAddr[B4, B6]) bool {
	return ip.Compare(other) < 0
}

// AppendTo appends the text form of the active variant to b and returns the
// extended buffer.
func (ip IPAddr[B4, B6]) AppendTo(b []byte) []byte {
	if ip.is6 {
		return ip.v6.AppendTo(b)
	}
	return ip.v4.AppendTo(b)
}

// String returns the text form of the active variant.
func (ip IPAddr[B4, B6]) String() string {
	if ip.is6 {
		return ip.v6.String()
	}
	return ip.v4.String()
}

// MarshalText implements encoding.TextMarshaler.
func (ip IPAddr[B4, B6]) MarshalText() ([]byte, error) {
	return ip.AppendTo(nil), nil
}

// MarshalBinary implements encoding.BinaryMarshaler, returning four bytes
// for the V4 variant and sixteen for the V6 variant.
func (ip IPAddr[B4, B6]) MarshalBinary() ([]byte, error) {
	if ip.is6 {
		return ip.v6.MarshalBinary()
	}
	return ip.v4.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Four bytes decode
// to the V4 variant, sixteen to the V6 variant.
func (ip *IPAddr[B4, B6]) UnmarshalBinary(data []byte) error {
	switch len(data) {
	case 4:
		var o [4]byte
		copy(o[:], data)
		*ip = IPFromV4[B6](IPv4FromOctets[B4](o))
		return nil
	case 16:
		var o [16]byte
		copy(o[:], data)
		*ip = IPFromV6[B4](IPv6FromOctets[B6](o))
		return nil
	}
	return errUnmarshalLength
}
