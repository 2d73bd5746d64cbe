package id

// codeAlphabet is deliberately not in alphabetic order (keyboard-row
// letters, then digits) so codes don't read like counters or hex dumps.
const codeAlphabet = "AZERTYUIOPQSDFGHJKLMWXCVBNazertyuiopqsdfghjklmwxcvbn0123456789"

// CodeLength is the length of every generated code.
const CodeLength = 5

// NewCode returns a 5-character code for manual entry (room codes, invite
// codes). Each character is sampled independently with replacement from a
// 62-symbol alphabet, so repeats within one code are possible and two calls
// may legitimately return the same string. Codes have no decode operation
// and no relation to the Id binary encoding.
func NewCode() string {
	return NewCodeFrom(defaultSource)
}

// NewCodeFrom returns a 5-character code drawn from src.
func NewCodeFrom(src *Source) string {
	var b [CodeLength]byte
	for i := range b {
		b[i] = codeAlphabet[src.IntN(len(codeAlphabet))]
	}
	return string(b[:])
}
