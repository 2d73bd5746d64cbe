package id

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// Kind names an entity kind for display purposes. Marker types implementing
// Kind carry no data; they exist only to parameterize Id at compile time.
type Kind interface {
	IdKind() string
}

// Id is a 64-bit identifier tagged with the entity kind it refers to. The
// tag has no runtime representation: an Id compares, hashes, and copies
// exactly like its bare uint64 value, so ids of different kinds wrapping the
// same raw value are equal once the kind is erased via Value.
type Id[T Kind] struct {
	value uint64
}

// New wraps a raw 64-bit value. It never fails.
func New[T Kind](value uint64) Id[T] {
	return Id[T]{value: value}
}

// Random draws a uniformly distributed id from the default source. Ids are
// not guaranteed unique; the birthday bound on a 64-bit space applies, which
// is acceptable at entity-count scale but not for security-sensitive uses.
func Random[T Kind]() Id[T] {
	return RandomFrom[T](defaultSource)
}

// RandomFrom draws a uniformly distributed id from src.
func RandomFrom[T Kind](src *Source) Id[T] {
	return New[T](src.Uint64())
}

// Value returns the wrapped 64-bit value.
func (id Id[T]) Value() uint64 {
	return id.value
}

// String renders the id as "<Kind>#<encoded>", where the suffix is the
// base-62 encoding of the value's little-endian bytes. The output is a pure
// function of the value and the kind name.
func (id Id[T]) String() string {
	var k T
	var b [EncodedWidth]byte
	binary.LittleEndian.PutUint64(b[:], id.value)
	return k.IdKind() + "#" + Encode(b)
}

// Parse reads an id back from its String form. It fails with
// ErrInvalidEncoding when the suffix is not a valid encoding, and with a
// plain error when the kind prefix does not match T.
func Parse[T Kind](s string) (Id[T], error) {
	var k T
	name, encoded, ok := strings.Cut(s, "#")
	if !ok {
		return Id[T]{}, fmt.Errorf("%w: missing '#' separator", ErrInvalidEncoding)
	}
	if name != k.IdKind() {
		return Id[T]{}, fmt.Errorf("parse id: kind %q, want %q", name, k.IdKind())
	}
	b, err := Decode(encoded)
	if err != nil {
		return Id[T]{}, err
	}
	return New[T](binary.LittleEndian.Uint64(b[:])), nil
}

// MarshalJSON encodes the raw value as a JSON number.
func (id Id[T]) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, id.value, 10), nil
}

// UnmarshalJSON decodes a JSON number into the raw value.
func (id *Id[T]) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("unmarshal id: %w", err)
	}
	id.value = v
	return nil
}
