package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Common errors
var (
	ErrPINMismatch = errors.New("pin does not match")
	ErrPINTooLong  = errors.New("pin too long")
)

// HashPIN hashes a participant PIN with bcrypt
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPINTooLong
		}
		return "", err
	}
	return string(hash), nil
}

// VerifyPIN compares a PIN against its stored hash
func VerifyPIN(hash, pin string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)); err != nil {
		return ErrPINMismatch
	}
	return nil
}
