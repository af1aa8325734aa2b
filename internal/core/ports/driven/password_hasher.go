package driven

// PasswordHasher handles one-way credential hashing (Argon2)
type PasswordHasher interface {
	// Hash generates a salted, self-describing hash from a plaintext password
	Hash(password string) (string, error)

	// Verify checks a plaintext password against a stored hash.
	// A mismatch or an unparseable hash returns false, never an error.
	Verify(password, hash string) bool
}
