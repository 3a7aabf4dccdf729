package keymanager

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/crypto/ssh"

	cm "github.com/devuserops/devuser/devuser/commandmanager"
)

// OpenSSHKeyManager discovers public keys on disk and generates keypairs
// with the ssh-keygen utility.
type OpenSSHKeyManager struct {
	CommandManager cm.CommandManager
}

func (km *OpenSSHKeyManager) FindPublicKey(dir string) (string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "id_*.pub"))
	if err != nil {
		return "", err
	}
	sort.Strings(files)

	for _, file := range files {
		keyBytes, err := os.ReadFile(file)
		if err != nil {
			slog.Debug("Could not read public key file", "file", file, "error", err)
			continue
		}

		// The key has to parse as an authorized_keys entry before it can
		// be installed as one.
		if _, _, _, _, err := ssh.ParseAuthorizedKey(keyBytes); err != nil {
			slog.Debug("Skipping unparsable public key", "file", file, "error", err)
			continue
		}

		return file, nil
	}

	return "", ErrNoPublicKey
}

func (km *OpenSSHKeyManager) GenerateKeyPair(ctx context.Context, path, comment string) error {
	result, err := km.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "ssh-keygen",
		Args:    []string{"-t", "ed25519", "-N", "", "-C", comment, "-f", path},
		// ssh-keygen prompts before overwriting an existing key; answer
		// no so a leftover key aborts the run instead of hanging it.
		Stdin: "n\n",
	})
	if err != nil {
		return fmt.Errorf("ssh-keygen: %s: %w", strings.TrimSpace(result.STDERR), err)
	}
	return nil
}
