package base32

import (
	"slices"
)

// EncodedLen returns the number of bytes required to encode n source bytes.
//
// With padding enabled every 5 source bytes produce a full 8 symbol block,
// so the result is always a multiple of 8. Without padding the result is the
// exact symbol count.
//
// invariants:
//
// - n must not be negative
func (e *Encoder) EncodedLen(n int) int {
	if e.pad != NoPadding {
		return (n + 4) / 5 * 8
	}

	return (n/5)*8 + ((n%5)*8+4)/5
}

// Encode fills dst with the encoded form of src and returns the written
// sub-slice of dst, of length EncodedLen(len(src)).
//
// This function panics if the destination does not have enough space in the
// slice for the encoded form of src. Encoding cannot otherwise fail: any
// byte sequence, including an empty one, encodes successfully.
//
// invariants:
//
// - len(dst) >= EncodedLen(len(src))
func (e *Encoder) Encode(dst, src []byte) []byte {
	n := e.EncodedLen(len(src))
	if len(dst) < n {
		panic("base32: encode destination too short")
	}

	// Accumulator holds at most 12 valid bits: up to 4 carried over plus 8
	// from the next source byte.
	var acc uint16
	var bits uint

	j := 0
	for _, b := range src {
		acc = acc<<8 | uint16(b)
		bits += 8

		for bits >= 5 {
			bits -= 5
			dst[j] = e.enc[acc>>bits&0x1F]
			j++
		}
	}

	if bits > 0 {
		dst[j] = e.enc[acc<<(5-bits)&0x1F]
		j++
	}

	for j < n {
		dst[j] = byte(e.pad)
		j++
	}

	return dst[:n]
}

// EncodeToString returns the encoded form of src as a string.
func (e *Encoder) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodedLen(len(src)))
	e.Encode(dst, src)

	return string(dst)
}

// AppendEncode returns the encoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
func (e *Encoder) AppendEncode(dst, src []byte) []byte {
	if len(src) == 0 {
		return dst
	}

	n := e.EncodedLen(len(src))
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	e.Encode(dst[orig:], src)

	return dst
}
