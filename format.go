package addrhal

import "strconv"

// Upper bounds for rendered address text, used to size String buffers.
const (
	maxIPv4TextLen = len("255.255.255.255")
	maxIPv6TextLen = len("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff")
)

func appendDottedQuad(b []byte, o [4]byte) []byte {
	for i, v := range o {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(v), 10)
	}
	return b
}

// longestZeroRun finds the longest run of consecutive zero segments,
// returning its start (inclusive) and end (exclusive) indices. Ties go to
// the earliest run. Runs shorter than two segments never qualify; when no
// run qualifies both results are -1.
func longestZeroRun(s [8]uint16) (start, end int) {
	start, end = -1, -1
	for i := 0; i < len(s); i++ {
		j := i
		for j < len(s) && s[j] == 0 {
			j++
		}
		if j-i >= 2 && j-i > end-start {
			start, end = i, j
		}
		i = j
	}
	return start, end
}

// appendIPv6 renders segments in canonical form. The two all-but-low-32-bit
// zero shapes render their tail as an embedded dotted quad (IPv4-compatible
// and IPv4-mapped forms); everything else goes through zero-run compression
// with lowercase hex groups.
func appendIPv6(b []byte, s [8]uint16) []byte {
	if s[0] == 0 && s[1] == 0 && s[2] == 0 && s[3] == 0 && s[4] == 0 {
		switch {
		case s[5] == 0 && s[6] == 0 && s[7] == 0:
			return append(b, "::"...)
		case s[5] == 0 && s[6] == 0 && s[7] == 1:
			return append(b, "::1"...)
		case s[5] == 0:
			b = append(b, "::"...)
			return appendDottedQuad(b, tailQuad(s))
		case s[5] == 0xffff:
			b = append(b, "::ffff:"...)
			return appendDottedQuad(b, tailQuad(s))
		}
	}

	start, end := longestZeroRun(s)
	for i := 0; i < len(s); i++ {
		if start <= i && i < end {
			if i == start {
				b = append(b, "::"...)
			}
			continue
		}
		if i > 0 && i != end {
			b = append(b, ':')
		}
		b = strconv.AppendUint(b, uint64(s[i]), 16)
	}
	return b
}

// tailQuad splits segments 6 and 7 into the four octets of an embedded IPv4
// address.
func tailQuad(s [8]uint16) [4]byte {
	return [4]byte{byte(s[6] >> 8), byte(s[6]), byte(s[7] >> 8), byte(s[7])}
}
