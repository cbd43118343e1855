// Package argon2 implements driven.PasswordHasher with argon2id.
//
// Hashes are encoded in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// Stored values without the $argon2id$ prefix are treated as clear text
// written by earlier builds and compared in constant time.
package argon2

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	xargon2 "golang.org/x/crypto/argon2"

	"github.com/custodia-labs/shopdesk/internal/core/ports/driven"
)

const prefix = "$argon2id$"

// maxMemory caps the m= cost accepted from a stored hash, in KiB.
const maxMemory = 1 << 20

// Params controls the cost of a hash.
type Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	SaltLen uint32
	KeyLen  uint32
}

// DefaultParams returns interactive-login parameters.
func DefaultParams() Params {
	return Params{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		SaltLen: 16,
		KeyLen:  32,
	}
}

// Verify interface compliance.
var _ driven.PasswordHasher = (*Hasher)(nil)

// Hasher hashes and verifies passwords.
type Hasher struct {
	params Params
}

// NewHasher creates a hasher with the given parameters.
func NewHasher(params Params) *Hasher {
	return &Hasher{params: params}
}

// Hash derives an argon2id key from password with a fresh random salt.
func (h *Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := xargon2.IDKey([]byte(password), salt, h.params.Time, h.params.Memory, h.params.Threads, h.params.KeyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		prefix,
		xargon2.Version,
		h.params.Memory, h.params.Time, h.params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify reports whether password matches stored.
// A malformed argon2id string is an error; a mismatch is not.
func (h *Hasher) Verify(stored, password string) (bool, error) {
	if !strings.HasPrefix(stored, prefix) {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(password)) == 1, nil
	}

	parts := strings.Split(stored, "$")
	// "", "argon2id", "v=19", "m=...,t=...,p=...", salt, key
	if len(parts) != 6 {
		return false, fmt.Errorf("malformed hash: expected 6 segments, got %d", len(parts))
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("malformed hash version: %w", err)
	}
	if version != xargon2.Version {
		return false, fmt.Errorf("unsupported argon2 version %d", version)
	}

	var (
		memory, time uint32
		threads      uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, fmt.Errorf("malformed hash parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("decoding salt: %w", err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("decoding key: %w", err)
	}
	if err := checkParams(memory, time, threads, salt, want); err != nil {
		return false, err
	}

	got := xargon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// checkParams rejects decoded values that IDKey would panic on or that
// would allocate without bound.
func checkParams(memory, time uint32, threads uint8, salt, key []byte) error {
	switch {
	case time < 1:
		return fmt.Errorf("malformed hash parameters: t=%d", time)
	case threads < 1:
		return fmt.Errorf("malformed hash parameters: p=%d", threads)
	case memory < 8*uint32(threads) || memory > maxMemory:
		return fmt.Errorf("malformed hash parameters: m=%d", memory)
	case len(salt) == 0:
		return fmt.Errorf("malformed hash: empty salt")
	case len(key) == 0:
		return fmt.Errorf("malformed hash: empty key")
	}
	return nil
}
