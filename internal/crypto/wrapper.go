package crypto

// SignatureProvider is the primitive signing backend used by keypairs.
type SignatureProvider interface {
	// GenerateKeypair derives a keypair from a 32-byte seed.
	GenerateKeypair(seed []byte) (publicKey, privateKey []byte, err error)
	// Sign signs message with an expanded private key.
	Sign(privateKey, message []byte) ([]byte, error)
	// Verify reports whether signature is valid for message under publicKey.
	Verify(publicKey, message, signature []byte) bool
}

// CryptoWrapper binds a SignatureProvider to the key type it serves.
type CryptoWrapper struct {
	provider SignatureProvider
	keyType  KeyType
}

func NewCryptoWrapper(provider SignatureProvider, keyType KeyType) *CryptoWrapper {
	return &CryptoWrapper{
		provider: provider,
		keyType:  keyType,
	}
}

func (w *CryptoWrapper) KeyType() KeyType {
	return w.keyType
}

func (w *CryptoWrapper) GenerateKeypair(seed []byte) ([]byte, []byte, error) {
	return w.provider.GenerateKeypair(seed)
}

func (w *CryptoWrapper) Sign(privateKey, message []byte) ([]byte, error) {
	return w.provider.Sign(privateKey, message)
}

func (w *CryptoWrapper) Verify(publicKey, message, signature []byte) bool {
	return w.provider.Verify(publicKey, message, signature)
}
