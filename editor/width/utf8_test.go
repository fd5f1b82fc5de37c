package width

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/unicode"
)

func TestASCIIUTF8Decoder(t *testing.T) {
	d := NewUTF8Decoder()
	out := make([]byte, 13)
	for i, b := range []byte("Hello, World!") {
		cp, _, consumed := d.Next(b)
		if consumed {
			out[i] = byte(cp)
		}
	}
	assert.Equal(t, "Hello, World!", string(out))
}

func TestWellFormedUTF8Decoder(t *testing.T) {
	d := NewUTF8Decoder()
	out := []uint32{}

	for _, b := range []byte("😄✤ÁA") {
		consumed := false
		for !consumed {
			var cp uint32
			var generated bool
			cp, generated, consumed = d.Next(b)
			if generated {
				out = append(out, cp)
			}
		}
	}
	assert.EqualValues(t, []uint32{0x1F604, 0x2724, 0xC1, 0x41}, out)
}

func TestDecodeAtWellFormed(t *testing.T) {
	b := []byte("aé漢😄")

	cp, n := DecodeAt(b, 0)
	assert.EqualValues(t, 'a', cp)
	assert.Equal(t, 1, n)

	cp, n = DecodeAt(b, 1)
	assert.EqualValues(t, 0xE9, cp)
	assert.Equal(t, 2, n)

	cp, n = DecodeAt(b, 3)
	assert.EqualValues(t, 0x6F22, cp)
	assert.Equal(t, 3, n)

	cp, n = DecodeAt(b, 6)
	assert.EqualValues(t, 0x1F604, cp)
	assert.Equal(t, 4, n)
}

func TestDecodeAtIllFormed(t *testing.T) {
	// Bare continuation byte.
	cp, n := DecodeAt([]byte{0x80, 'a'}, 0)
	assert.Equal(t, Replacement, cp)
	assert.Equal(t, 1, n)

	// Truncated two-byte sequence followed by ASCII: the head byte alone
	// is the error, the ASCII byte decodes on the next call.
	b := []byte{0xC3, 0x28}
	cp, n = DecodeAt(b, 0)
	assert.Equal(t, Replacement, cp)
	assert.Equal(t, 1, n)
	cp, n = DecodeAt(b, 1)
	assert.EqualValues(t, '(', cp)
	assert.Equal(t, 1, n)

	// Truncated sequence at end of input.
	cp, n = DecodeAt([]byte{0xF0, 0x9F}, 0)
	assert.Equal(t, Replacement, cp)
	assert.Equal(t, 1, n)
}

func TestDecodeAtForwardProgress(t *testing.T) {
	// Every byte position of arbitrary garbage consumes at least one byte.
	b := []byte{0xFF, 0xED, 0xA0, 0x80, 'x', 0xF0, 0x9F, 0x98, 0x84}
	i := 0
	steps := 0
	for i < len(b) {
		_, n := DecodeAt(b, i)
		assert.GreaterOrEqual(t, n, 1)
		i += n
		steps++
		assert.Less(t, steps, 64, "decoder made no forward progress")
	}
	assert.Equal(t, len(b), i)
}

// The valid-encoding replacement character must decode as itself, three
// bytes long, not be confused with an error.
func TestDecodeAtEncodedReplacement(t *testing.T) {
	b := []byte("�x")
	cp, n := DecodeAt(b, 0)
	assert.Equal(t, Replacement, cp)
	assert.Equal(t, 3, n)
}

// Cross-check against the x/text UTF-8 decoder on well-formed input: both
// must agree on the decoded runes.
func TestDecodeAtMatchesTextEncoding(t *testing.T) {
	input := []byte("plain ascii, 漢字, émoji 😄, ✤")
	dec := unicode.UTF8.NewDecoder()
	decoded, err := dec.Bytes(input)
	assert.NoError(t, err)

	want := []uint32{}
	for _, r := range string(decoded) {
		want = append(want, uint32(r))
	}

	got := []uint32{}
	for i := 0; i < len(input); {
		cp, n := DecodeAt(input, i)
		got = append(got, cp)
		i += n
	}
	assert.EqualValues(t, want, got)
}
