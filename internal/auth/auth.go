// Package auth wraps password hashing. Raw passwords exist only for the
// duration of a request; the store only ever sees the bcrypt output.
package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes with bcrypt cost 12.
func HashPassword(plain string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plain), 12)
}

// CheckPassword reports whether plain matches the stored hash.
func CheckPassword(hash []byte, plain string) error {
	return bcrypt.CompareHashAndPassword(hash, []byte(plain))
}
