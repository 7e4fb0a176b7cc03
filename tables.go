// Package base32 implements padded and unpadded base32 codecs over
// caller-supplied 32 character alphabets, with ready-made codecs for the
// RFC 4648 standard alphabet.
//
// Decoding is strict: inputs whose non-canonical tail bits are non-zero are
// rejected rather than treated as noise. Non-zero tail bits can indicate a
// truncated or tampered value, and there is no length metadata in the format
// to prove otherwise. Callers bit packing at a higher level must clear those
// bits before handing bytes to these functions.
package base32

const b32Invalid = 0xFF

const (
	StdPadding rune = '=' // standard padding character
	NoPadding  rune = -1  // padding disabled
)

const stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// Encoder converts bytes into base32 symbols under one alphabet and one
// padding policy. It holds only lookup tables and is safe for concurrent use.
type Encoder struct {
	enc [32]byte
	pad rune
}

// Decoder converts base32 symbols back into bytes under one alphabet and one
// padding policy. It holds only lookup tables and is safe for concurrent use.
type Decoder struct {
	dec [256]byte
	pad rune
}

// Encoding pairs an Encoder and Decoder constructed from the same alphabet
// and padding policy so the two directions always agree.
type Encoding struct {
	Encoder
	Decoder
}

// Ready-made codecs over the RFC 4648 standard alphabet.
var (
	StdEncoding    = NewEncoding(stdAlphabet)
	RawStdEncoding = NewEncoding(stdAlphabet).WithPadding(NoPadding)
)

// newTables builds the forward (index to symbol) and inverse (symbol to
// index) tables for an alphabet. Entries of the inverse table that are not
// alphabet symbols hold b32Invalid.
//
// An alphabet that is not exactly 32 distinct bytes, or a padding character
// that collides with the alphabet, is a broken static configuration rather
// than bad input data, so violations panic.
func newTables(alphabet string, pad rune) ([32]byte, [256]byte) {
	if len(alphabet) != 32 {
		panic("base32: alphabet is not 32 bytes")
	}
	if pad != NoPadding && (pad == '\r' || pad == '\n' || pad > 0xFF) {
		panic("base32: invalid padding character")
	}

	var enc [32]byte
	var dec [256]byte

	for i := range dec {
		dec[i] = b32Invalid
	}

	for i := range alphabet {
		v := alphabet[i]

		if dec[v] != b32Invalid {
			panic("base32: duplicate alphabet character")
		}
		if rune(v) == pad {
			panic("base32: padding character contained in alphabet")
		}

		enc[i] = v
		dec[v] = byte(i)
	}

	return enc, dec
}

// NewEncoder returns an Encoder for the given 32 byte alphabet and padding
// character, NoPadding to disable padding. It panics if the alphabet or
// padding character is invalid.
func NewEncoder(alphabet string, pad rune) *Encoder {
	enc, _ := newTables(alphabet, pad)
	return &Encoder{enc: enc, pad: pad}
}

// NewDecoder returns a Decoder for the given 32 byte alphabet and padding
// character, NoPadding to disable padding. It panics if the alphabet or
// padding character is invalid.
func NewDecoder(alphabet string, pad rune) *Decoder {
	_, dec := newTables(alphabet, pad)
	return &Decoder{dec: dec, pad: pad}
}

// NewEncoding returns an Encoding for the given 32 byte alphabet, padded
// with StdPadding. It panics if the alphabet is invalid.
func NewEncoding(alphabet string) *Encoding {
	return newEncoding(alphabet, StdPadding)
}

func newEncoding(alphabet string, pad rune) *Encoding {
	enc, dec := newTables(alphabet, pad)
	return &Encoding{
		Encoder{enc: enc, pad: pad},
		Decoder{dec: dec, pad: pad},
	}
}

// WithPadding returns a new Encoding identical to e except with the given
// padding character, or NoPadding to disable padding. It panics if the
// padding character is '\r' or '\n', above '\xff', or contained in the
// alphabet.
func (e *Encoding) WithPadding(pad rune) *Encoding {
	return newEncoding(string(e.Encoder.enc[:]), pad)
}
