package id_test

import (
	"fmt"

	"github.com/plus3/entid/id"
)

// ExampleNew demonstrates wrapping raw values as typed ids. The kind marker
// only exists in the type signature: a Player id cannot be passed where a
// Unit id is expected, even though both wrap a plain uint64.
func ExampleNew() {
	playerId := id.New[Player](1)
	unitId := id.New[Unit](1)

	fmt.Println(playerId)
	fmt.Println(unitId)
	fmt.Println(playerId.Value() == unitId.Value())

	// Output:
	// Player#5K1WLnfhB2
	// Unit#5K1WLnfhB2
	// true
}

// ExampleParse shows the text form round-tripping through the codec.
func ExampleParse() {
	playerId := id.New[Player](123456789)
	s := playerId.String()

	parsed, err := id.Parse[Player](s)
	if err != nil {
		panic(err)
	}

	fmt.Println(s)
	fmt.Println(parsed == playerId)

	// Output:
	// Player#1s3Fa26tZhY
	// true
}

// ExampleEncode encodes a fixed 8-byte sequence read as a big-endian
// numeral; Decode recovers the exact bytes.
func ExampleEncode() {
	b := [id.EncodedWidth]byte{0, 0, 0, 0, 0xDE, 0xAD, 0xBE, 0xEF}

	s := id.Encode(b)
	back, err := id.Decode(s)
	if err != nil {
		panic(err)
	}

	fmt.Println(s)
	fmt.Println(back == b)

	// Output:
	// 44pZgF
	// true
}

// ExampleSet_Pop drains a set one arbitrary element at a time. Pop follows
// map iteration order, not a random draw, and fails once the set is empty.
func ExampleSet_Pop() {
	s := id.NewSet("only")

	v, err := s.Pop()
	fmt.Println(v, err)

	_, err = s.Pop()
	fmt.Println(err)

	// Output:
	// only <nil>
	// pop set: empty collection
}

// ExampleTable keys entity state by typed id, the way a player or unit
// registry would.
func ExampleTable() {
	players := id.NewTable[Player, string](8)

	alice := id.New[Player](1)
	players.Put(alice, "alice")

	name, ok := players.Get(alice)
	fmt.Println(name, ok)

	players.Del(alice)
	fmt.Println(players.Len())

	// Output:
	// alice true
	// 0
}

// ExampleNewCodeFrom generates a short code for manual entry, such as a
// room or session code. The exact string depends on the source's seed.
func ExampleNewCodeFrom() {
	code := id.NewCodeFrom(id.NewSource(42))

	fmt.Println(len(code))
	fmt.Println(code == id.NewCodeFrom(id.NewSource(42)))

	// Output:
	// 5
	// true
}
