package driven

// PasswordHasher turns clear-text passwords into storable credentials.
type PasswordHasher interface {
	// Hash returns an encoded credential for password.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored credential.
	Verify(stored, password string) (bool, error)
}
