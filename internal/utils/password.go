package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// HashPassword returns the hex-encoded MD5 digest of the plaintext.
// The digest is deterministic and unsalted: the login query matches the
// stored column against this value directly, so the same plaintext must
// always map to the same digest.
func HashPassword(plain string) string {
	sum := md5.Sum([]byte(plain))
	return hex.EncodeToString(sum[:])
}
