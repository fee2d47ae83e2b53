// Package crypto seals small secrets kept in the client-local preference
// store, such as the password of the remembered terminal session.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer encrypts and decrypts short strings with a key derived from the
// configured application secret.
//
// Sealed format (base64, standard encoding):
//
//	salt (16 bytes) || nonce (12 bytes) || AES-256-GCM ciphertext
//
// The key is Argon2id(secret, salt); a fresh salt per value means equal
// plaintexts never produce equal blobs.
type Sealer interface {
	// Seal encrypts plaintext and returns the base64 blob.
	Seal(plaintext string) (string, error)

	// Open reverses Seal. It fails with [ErrOpenFailed] if the blob was
	// produced with another secret or has been tampered with.
	Open(sealed string) (string, error)
}
