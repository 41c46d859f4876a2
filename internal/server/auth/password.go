package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a bcrypt digest of plaintext. The digest embeds its
// own salt and cost factor, so verification needs no extra stored state.
func HashPassword(plaintext string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether plaintext matches digest. A malformed or
// legacy digest fails closed (returns false, never panics). The comparison
// inside bcrypt is constant-time with respect to the digest content.
func VerifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
