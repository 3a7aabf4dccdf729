package keymanager

import (
	"context"
	"errors"
)

// ErrNoPublicKey is returned when a directory holds no usable public key.
var ErrNoPublicKey = errors.New("no public key found")

// KeyManager encompasses SSH key discovery and generation.
type KeyManager interface {
	// FindPublicKey returns the path of the first id_*.pub key under dir,
	// in directory-listing order.
	FindPublicKey(dir string) (string, error)

	// GenerateKeyPair creates a fresh ed25519 keypair with an empty
	// passphrase at the given path.
	GenerateKeyPair(ctx context.Context, path, comment string) error
}
