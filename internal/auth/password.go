package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted bcrypt hash of the password. bcrypt generates
// a fresh random salt per call, so identical passwords yield different hashes.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches the stored hash using a
// constant-time comparison.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
