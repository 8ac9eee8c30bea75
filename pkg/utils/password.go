// Package utils holds small helpers shared across layers.
package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword returns the one-way salted hash stored in place of the
// plaintext.
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
