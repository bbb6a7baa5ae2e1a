package utils_test

import (
	"testing"

	"github.com/iliyamo/library-reservation/internal/utils"
)

func TestHashPassword_Deterministic(t *testing.T) {
	if utils.HashPassword("secret") != utils.HashPassword("secret") {
		t.Error("same input produced different digests")
	}
}

// The seed migration stores this exact digest for the admin account, so
// the hasher must keep producing it.
func TestHashPassword_KnownVector(t *testing.T) {
	const want = "21232f297a57a5a743894a0e4a801fc3"
	if got := utils.HashPassword("admin"); got != want {
		t.Errorf("HashPassword(admin) = %q, want %q", got, want)
	}
}

func TestHashPassword_DistinctInputsDiffer(t *testing.T) {
	inputs := []string{"", "a", "A", "admin", "admin ", " admin", "password", "passw0rd"}
	seen := make(map[string]string, len(inputs))
	for _, in := range inputs {
		d := utils.HashPassword(in)
		if prev, ok := seen[d]; ok {
			t.Errorf("digest collision between %q and %q", prev, in)
		}
		seen[d] = in
	}
}

func TestHashPassword_NeverReturnsPlaintext(t *testing.T) {
	for _, in := range []string{"admin", "secret", "x"} {
		if utils.HashPassword(in) == in {
			t.Errorf("digest of %q equals the plaintext", in)
		}
	}
}
