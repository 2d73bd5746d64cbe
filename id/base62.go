package id

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// EncodedWidth is the fixed byte width handled by Encode and Decode.
const EncodedWidth = 8

const encodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// ErrInvalidEncoding indicates a string that is not a valid base-62 encoding
// of an 8-byte sequence.
var ErrInvalidEncoding = errors.New("invalid base62 encoding")

// Encode renders an 8-byte sequence as a base-62 string. The bytes are read
// as a single big-endian numeral; leading zero bytes contribute no digits,
// and the all-zero sequence encodes as "0". Encode never fails. There is no
// padding: a uniformly random 64-bit value encodes to 10 or 11 digits, and
// only small numerals (such as a zero id) come out shorter.
func Encode(b [EncodedWidth]byte) string {
	n := binary.BigEndian.Uint64(b[:])
	if n == 0 {
		return "0"
	}
	// 11 digits cover the full 64-bit range (62^11 > 2^64)
	var buf [11]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = encodeAlphabet[n%62]
		n /= 62
	}
	return string(buf[i:])
}

// Decode recovers the exact 8-byte sequence a string was encoded from. It
// fails with ErrInvalidEncoding when the string is empty, contains a
// character outside the alphabet, or denotes a numeral wider than 8 bytes.
func Decode(s string) ([EncodedWidth]byte, error) {
	var out [EncodedWidth]byte
	if s == "" {
		return out, fmt.Errorf("%w: empty string", ErrInvalidEncoding)
	}
	var n uint64
	for _, c := range s {
		d := strings.IndexRune(encodeAlphabet, c)
		if d < 0 {
			return out, fmt.Errorf("%w: character %q", ErrInvalidEncoding, c)
		}
		hi, lo := bits.Mul64(n, 62)
		lo, carry := bits.Add64(lo, uint64(d), 0)
		if hi != 0 || carry != 0 {
			return out, fmt.Errorf("%w: value exceeds %d bytes", ErrInvalidEncoding, EncodedWidth)
		}
		n = lo
	}
	binary.BigEndian.PutUint64(out[:], n)
	return out, nil
}
