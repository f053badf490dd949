// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// # Credential Verifier

// PasswordCost is the bcrypt work factor applied to author passwords.
const PasswordCost = bcrypt.DefaultCost

// HashPassword derives the stored form of an author password.
//
// bcrypt reads at most 72 bytes, which is why author passwords are capped at
// that length before they get here.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash author password: %w", err)
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether password matches storedHash.
// An account without a stored hash never matches.
func CheckPasswordHash(password, storedHash string) bool {
	if storedHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
