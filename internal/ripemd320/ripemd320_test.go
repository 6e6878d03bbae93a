package ripemd320

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGolden(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "22d65d5661536cdc75c1fdf5c6de7b41b9f27325ebc61e8557177d705a0ec880151c3a32a00899b8"},
		{"a", "ce78850638f92658a5a585097579926dda667a5716562cfcf6fbe77f63542f99b04705d6970dff5d"},
		{"abc", "de4c01b3054f8930a79d09ae738e92301e5a17085beffdc1b8d116713e74f82fa942d64cdbc4682d"},
		{"message digest", "3a8e28502ed45d422f68844f9dd316e7b98533fa3f2a91d29f84d425c88d6b4eff727df66a7c0197"},
		{"abcdefghijklmnopqrstuvwxyz", "cabdb1810b92470a2093aa6bce05952c28348cf43ff60841975166bb40ed234004b8824463e6b009"},
		{strings.Repeat("1234567890", 8), "557888af5f6d8ed62ab66945c6d2a0a47ecd5341e915eb8fea1d0524955f825dc717e4a008ab2d42"},
		{"hello", "eb0cf45114c56a8421fbcb33430fa22e0cd607560a88bbe14ce70bdf59bf55b11a3906987c487992"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h := New()
			h.Write([]byte(tt.in))
			assert.Equal(t, tt.want, hex.EncodeToString(h.Sum(nil)))
		})
	}
}

func TestMillionA(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	h := New()
	chunk := []byte(strings.Repeat("a", 1000))
	for i := 0; i < 1000; i++ {
		h.Write(chunk)
	}
	require.Equal(t,
		"bdee37f4371e20646b8b0d862dda16292ae36f40965e8c8509e63d1dbddecc503e2b63eb9245bb66",
		hex.EncodeToString(h.Sum(nil)))
}

func TestSplitWrites(t *testing.T) {
	msg := []byte(strings.Repeat("abc", 100))
	for _, step := range []int{1, 7, 63, 64, 65} {
		h := New()
		for i := 0; i < len(msg); i += step {
			h.Write(msg[i:min(i+step, len(msg))])
		}
		assert.Equal(t,
			"9dc1db7812b57708c5b453434d0229f2146ced7b5bd7a91847c67e9cbc2e211245d4d05ea6e2e3d5",
			hex.EncodeToString(h.Sum(nil)), "step %d", step)
	}
}

func TestSumAppends(t *testing.T) {
	h := New()
	h.Write([]byte("abc"))
	out := h.Sum([]byte{0xff})
	require.Len(t, out, 1+Size)
	require.Equal(t, byte(0xff), out[0])
	require.Equal(t, out[1:], h.Sum(nil))
}
