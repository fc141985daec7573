package account

// PasswordHasher is the one-way credential hashing contract. The bcrypt
// implementation lives in the infrastructure layer.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}
