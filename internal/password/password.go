// Package password implements one-way hashing and verification of user
// passwords. Plaintext secrets are never persisted or logged.
package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt credential suitable for storage. Each call
// generates a fresh salt, so hashing the same plaintext twice yields
// different credentials.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored credential. A mismatch
// or a malformed credential returns false; Verify never panics.
func Verify(plaintext, credential string) bool {
	return bcrypt.CompareHashAndPassword([]byte(credential), []byte(plaintext)) == nil
}

// dummyCredential is a bcrypt hash of an unguessable throwaway value. It is
// compared against when a username lookup misses so that authentication takes
// roughly the same time whether or not the account exists.
var dummyCredential = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte("warbler-timing-pad"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}()

// VerifyDummy burns a bcrypt comparison without revealing anything. Always
// returns false.
func VerifyDummy(plaintext string) bool {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyCredential), []byte(plaintext))
	return false
}
