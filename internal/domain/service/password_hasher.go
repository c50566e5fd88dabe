// Package service declares the ports the use cases need from infrastructure:
// hashing, sessions, storage, receipts and mail.
package service

// PasswordHasher hashes tenant and admin passwords. Only the hash is ever stored.
type PasswordHasher interface {
	// Hash fails with ErrValidationFailed when the password is longer than the algorithm accepts.
	Hash(password string) (string, error)

	// Matches reports whether password produced hash. A malformed hash never matches.
	Matches(hash, password string) bool
}
