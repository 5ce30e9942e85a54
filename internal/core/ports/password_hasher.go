package ports

// PasswordHasher is the one-way salted hashing primitive. Hash embeds a random
// salt, so two calls with the same plaintext yield different outputs. Verify
// reports whether plaintext matches hash; a malformed hash verifies false
// rather than erroring.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
