// Package hashing computes and verifies salted password digests using
// Argon2id. The work-factor parameters are encoded into the digest string so
// that Verify always recomputes with the parameters the digest was created
// with, even after defaults change.
package hashing

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

var errMalformedDigest = errors.New("malformed digest")

// Params are the Argon2id work-factor settings.
type Params struct {
	Time    uint32
	MemoryK uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultParams matches the key-derivation settings used elsewhere in the
// project family: 1 pass over 64 MiB with 4 lanes, 32-byte output.
var DefaultParams = Params{Time: 1, MemoryK: 64 * 1024, Threads: 4, KeyLen: 32}

const saltSize = 16

// Hasher produces and verifies password digests.
type Hasher struct {
	params Params
}

func NewHasher() *Hasher {
	return &Hasher{params: DefaultParams}
}

// NewHasherWithParams is used by tests to cut CPU cost.
func NewHasherWithParams(p Params) *Hasher {
	return &Hasher{params: p}
}

// Hash derives a digest from password with a fresh random salt. The plaintext
// is never retained; callers that hold it in a []byte should wipe it.
func (h *Hasher) Hash(password string) (digest string, salt []byte) {
	salt = common.GenerateRandByteArray(saltSize)
	return h.encode(h.derive(password, salt, h.params)), salt
}

// Verify recomputes the digest for password with the stored salt and the
// parameters embedded in digest, and compares in constant time. Malformed
// digests and mismatches both report false; Verify never errors.
func (h *Hasher) Verify(password, digest string, salt []byte) bool {
	p, key, err := decode(digest)
	if err != nil {
		return false
	}
	candidate := h.derive(password, salt, p)
	return subtle.ConstantTimeCompare(key, candidate) == 1
}

func (h *Hasher) derive(password string, salt []byte, p Params) []byte {
	return argon2.IDKey([]byte(password), salt, p.Time, p.MemoryK, p.Threads, p.KeyLen)
}

// encode renders "argon2id$t$m$p$hexkey".
func (h *Hasher) encode(key []byte) string {
	return fmt.Sprintf("argon2id$%d$%d$%d$%s",
		h.params.Time, h.params.MemoryK, h.params.Threads, hex.EncodeToString(key))
}

func decode(digest string) (Params, []byte, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 5 || parts[0] != "argon2id" {
		return Params{}, nil, errMalformedDigest
	}

	var p Params
	if _, err := fmt.Sscanf(parts[1], "%d", &p.Time); err != nil {
		return Params{}, nil, err
	}
	if _, err := fmt.Sscanf(parts[2], "%d", &p.MemoryK); err != nil {
		return Params{}, nil, err
	}
	var threads uint32
	if _, err := fmt.Sscanf(parts[3], "%d", &threads); err != nil {
		return Params{}, nil, err
	}
	p.Threads = uint8(threads)

	key, err := hex.DecodeString(parts[4])
	if err != nil {
		return Params{}, nil, err
	}
	p.KeyLen = uint32(len(key))

	return p, key, nil
}
