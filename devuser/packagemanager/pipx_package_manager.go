package packagemanager

import (
	"context"
	"fmt"
	"strings"

	cm "github.com/devuserops/devuser/devuser/commandmanager"
)

// PipxPackageManager installs Python-based developer tools with pipx,
// running the install under the target user's identity.
type PipxPackageManager struct {
	CommandManager cm.CommandManager
}

func (ppm *PipxPackageManager) Available() bool {
	_, err := ppm.CommandManager.LookPath("pipx")
	return err == nil
}

func (ppm *PipxPackageManager) InstallForUser(ctx context.Context, username, pkg string) error {
	result, err := ppm.CommandManager.Run(ctx, cm.CommandConfig{
		Command: "runuser",
		Args:    []string{"-u", username, "--", "pipx", "install", pkg},
		Env:     []string{"PIP_DISABLE_PIP_VERSION_CHECK=1", "PIP_NO_INPUT=1"},
	})
	if err != nil {
		return fmt.Errorf("pipx install %s as %s: %s: %w", pkg, username, strings.TrimSpace(result.STDERR), err)
	}
	return nil
}
