package base32

import (
	"errors"
	"slices"
)

const (

	// Only these remainders are possible for valid un-padded base32:
	// 0, 2, 4, 5, 7. Others imply bad input.

	validDecodeRemainder = uint8((1 << 0) | (1 << 2) | (1 << 4) | (1 << 5) | (1 << 7))
)

var (
	ErrInvalidBase32Char    = errors.New("invalid base32 character")
	ErrInvalidBase32Padding = errors.New("invalid base32 padding")
)

// MaxDecodedLen returns an upper bound on the decoded byte length of base32
// input with the provided length, before any trailing padding is accounted
// for. Without padding the bound is exact.
//
// If the input length cannot belong to any valid encoding under the
// decoder's padding policy then ErrInvalidBase32Padding is returned.
//
// invariants:
//
// - n must not be negative
func (d *Decoder) MaxDecodedLen(n int) (int, error) {
	rem := n % 8

	if d.pad != NoPadding {
		if rem != 0 {
			return 0, ErrInvalidBase32Padding
		}

		return (n / 8) * 5, nil
	}

	if (validDecodeRemainder & (uint8(1) << rem)) == 0 {
		return 0, ErrInvalidBase32Padding
	}

	return (n/8)*5 + (rem*5)/8, nil
}

// DecodedLen returns the exact decoded byte length of src.
//
// With padding enabled it scans the trailing padding characters of src and
// subtracts the bytes they stand in for; only 0, 1, 3, 4 or 6 trailing
// padding characters can belong to a valid encoding, anything else returns
// ErrInvalidBase32Padding. Without padding it is MaxDecodedLen of len(src).
//
// Symbol legality and tail bit consistency are not checked here; that
// happens in Decode.
func (d *Decoder) DecodedLen(src []byte) (int, error) {
	n, err := d.MaxDecodedLen(len(src))
	if err != nil || d.pad == NoPadding {
		return n, err
	}

	pad := byte(d.pad)

	k := 0
	for i := len(src) - 1; i >= 0 && src[i] == pad; i-- {
		k++
	}

	switch k {
	case 0:
	case 1:
		n -= 1
	case 3:
		n -= 2
	case 4:
		n -= 3
	case 6:
		n -= 4
	default:
		return 0, ErrInvalidBase32Padding
	}

	return n, nil
}

// Decode decodes the source slice into the destination slice.
//
// This function panics if the destination does not have enough space in the
// slice for the decoded form of src, which is DecodedLen(src) bytes.
//
// It is the parent context's responsibility to clear the dst slice should an
// error be returned and that be the ideal rollback state. There is no
// guarantee about the contents of dst when a non-nil error is returned; it
// could be partially decoded or contain empty bytes.
//
// invariants:
//
// - len(dst) >= DecodedLen(src)
func (d *Decoder) Decode(dst, src []byte) error {
	if d.pad != NoPadding && len(src)%8 != 0 {
		return ErrInvalidBase32Padding
	}

	n, err := d.DecodedLen(src)
	if err != nil {
		return err
	}

	if len(dst) < n {
		panic("base32: decode destination too short")
	}

	var acc uint16
	var bits uint

	padded := false

	j := 0
	i := 0
	for ; i < len(src); i++ {
		v := d.dec[src[i]]
		if v == b32Invalid {
			if d.pad != NoPadding && rune(src[i]) == d.pad {
				padded = true
				break
			}

			return ErrInvalidBase32Char
		}

		acc = acc<<5 | uint16(v)
		bits += 5

		if bits >= 8 {
			bits -= 8
			dst[j] = byte(acc >> bits)
			j++
		}
	}

	// A valid encoding leaves at most 4 bits unconsumed and all of them
	// zero. Anything else cannot correspond to a byte sequence.
	if bits > 4 || acc&(uint16(1)<<bits-1) != 0 {
		return ErrInvalidBase32Padding
	}

	if !padded {
		return nil
	}

	// The leftover bit count at the break fixes how many padding
	// characters must follow to complete the 8 symbol block.
	var want int
	switch bits {
	case 2:
		want = 6
	case 4:
		want = 4
	case 1:
		want = 3
	case 3:
		want = 1
	default:
		return ErrInvalidBase32Padding
	}

	pad := byte(d.pad)

	got := 0
	for ; i < len(src); i++ {
		if src[i] != pad {
			if d.dec[src[i]] == b32Invalid {
				return ErrInvalidBase32Char
			}

			return ErrInvalidBase32Padding
		}

		got++
	}

	if got != want {
		return ErrInvalidBase32Padding
	}

	return nil
}

// DecodeString returns the decoded form of s if s is not empty. If s is
// empty nil is returned.
func (d *Decoder) DecodeString(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, nil
	}

	src := []byte(s)

	n, err := d.DecodedLen(src)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, n)
	if err := d.Decode(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// AppendDecode returns the decoded form of src appended to dst
// if src is not empty. If src is empty dst is returned as-is.
//
// If an error is returned the caller must not assume the returned slice
// is nil. There is no guarantee about the contents of the appended region
// when a non-nil error is returned. It could be partially decoded or
// contain empty bytes.
func (d *Decoder) AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	n, err := d.DecodedLen(src)
	if err != nil {
		return nil, err
	}
	orig := len(dst)

	dst = slices.Grow(dst, n)
	dst = dst[:orig+n]

	err = d.Decode(dst[orig:], src)

	return dst, err
}
