package hash

import (
	"crypto/md5"
	gohash "hash"

	"github.com/jzelinskie/whirlpool"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"hasher/internal/md2"
	"hasher/internal/ripemd320"
)

// Algorithm identifies one of the supported hash functions.
type Algorithm int

const (
	SHA3_224 Algorithm = iota
	SHA3_256
	SHA3_384
	SHA3_512
	Whirlpool
	RIPEMD160
	RIPEMD320
	MD2
	MD4
	MD5
)

// Default is the algorithm used for any name Resolve does not recognise.
const Default = MD5

var names = [...]string{
	SHA3_224:  "sha3_224",
	SHA3_256:  "sha3_256",
	SHA3_384:  "sha3_384",
	SHA3_512:  "sha3_512",
	Whirlpool: "whirlpool",
	RIPEMD160: "ripemd160",
	RIPEMD320: "ripemd320",
	MD2:       "md2",
	MD4:       "md4",
	MD5:       "md5",
}

// Names returns the recognised algorithm names.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names[:])
	return out
}

// Lookup reports the algorithm registered under name. Matching is exact and
// case-sensitive.
func Lookup(name string) (Algorithm, bool) {
	for a, n := range names {
		if n == name {
			return Algorithm(a), true
		}
	}
	return Default, false
}

// Resolve maps name to an algorithm, falling back to Default for anything
// unrecognised. It never fails.
func Resolve(name string) Algorithm {
	a, _ := Lookup(name)
	return a
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(names) {
		return "unknown"
	}
	return names[a]
}

// New returns a fresh hash state for a. Values outside the enumeration get
// the Default algorithm.
func (a Algorithm) New() gohash.Hash {
	switch a {
	case SHA3_224:
		return sha3.New224()
	case SHA3_256:
		return sha3.New256()
	case SHA3_384:
		return sha3.New384()
	case SHA3_512:
		return sha3.New512()
	case Whirlpool:
		return whirlpool.New()
	case RIPEMD160:
		return ripemd160.New()
	case RIPEMD320:
		return ripemd320.New()
	case MD2:
		return md2.New()
	case MD4:
		return md4.New()
	default:
		return md5.New()
	}
}

// Size returns the digest length of a in bytes.
func (a Algorithm) Size() int {
	return a.New().Size()
}
