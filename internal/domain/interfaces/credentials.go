package interfaces

// CredentialHasher turns passwords into stored credentials and checks them.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}
