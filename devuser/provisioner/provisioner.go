package provisioner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	cm "github.com/devuserops/devuser/devuser/commandmanager"
	fm "github.com/devuserops/devuser/devuser/filemanager"
	km "github.com/devuserops/devuser/devuser/keymanager"
	pkm "github.com/devuserops/devuser/devuser/packagemanager"
	prm "github.com/devuserops/devuser/devuser/processmanager"
	um "github.com/devuserops/devuser/devuser/usermanager"
	"github.com/devuserops/devuser/logger"
)

// UserSpec describes the account to create. It is built from CLI input
// and lives only for the duration of one invocation.
type UserSpec struct {
	Username string
	Shell    string
	Groups   []string
	Parent   string
}

// Provisioner creates and removes development accounts on the local
// host. All OS interaction goes through the injected managers so tests
// can substitute fakes.
type Provisioner struct {
	Config   Config
	Commands cm.CommandManager
	Users    um.UserManager
	Files    fm.FileManager
	Keys     km.KeyManager
	Procs    prm.ProcessManager
	Packages pkm.PackageManager
	Confirm  Confirmer
	Log      logger.Logger

	Geteuid func() int
	Now     func() time.Time
	Sleep   func(time.Duration)
}

// New wires a Provisioner against the real host.
func New(cfg Config) *Provisioner {
	commands := &cm.UnixCommandManager{}
	return &Provisioner{
		Config:   cfg,
		Commands: commands,
		Users:    &um.LinuxUserManager{CommandManager: commands},
		Files:    &fm.UnixFileManager{CommandManager: commands},
		Keys:     &km.OpenSSHKeyManager{CommandManager: commands},
		Procs:    &prm.UnixProcessManager{CommandManager: commands},
		Packages: &pkm.PipxPackageManager{CommandManager: commands},
		Confirm:  NewTerminalConfirmer(),
		Log:      logger.New(),
		Geteuid:  os.Geteuid,
		Now:      time.Now,
		Sleep:    time.Sleep,
	}
}

var baselineDirs = []string{".config", ".cache", ".local/bin", ".local/share", ".local/src"}

// CreateUser provisions a new development account: the account itself,
// SSH trust bootstrapped from the parent's public key, a fresh keypair,
// baseline directories and dotfiles, and home ownership as the last step.
// Steps are not transactional; a failure partway leaves a half-configured
// account that must be removed before retrying.
func (p *Provisioner) CreateUser(ctx context.Context, spec UserSpec) error {
	if err := ValidateUsername(spec.Username); err != nil {
		return err
	}

	if _, err := p.Users.GetUser(spec.Username); err == nil {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, spec.Username)
	} else if !errors.Is(err, um.ErrUserNotFound) {
		return fmt.Errorf("looking up %s: %w", spec.Username, err)
	}

	parent, err := p.Users.GetUser(spec.Parent)
	if err != nil {
		if errors.Is(err, um.ErrUserNotFound) {
			return fmt.Errorf("%w: %s", ErrParentNotFound, spec.Parent)
		}
		return fmt.Errorf("looking up parent %s: %w", spec.Parent, err)
	}

	// Without a trust anchor the new account would be unreachable over
	// SSH, so this is checked before the account is created.
	keyPath, err := p.Keys.FindPublicKey(filepath.Join(parent.HomeDir, ".ssh"))
	if err != nil {
		if errors.Is(err, km.ErrNoPublicKey) {
			return fmt.Errorf("%w: %s", ErrNoParentKey, spec.Parent)
		}
		return fmt.Errorf("searching for parent key: %w", err)
	}
	p.Log.Info("Found parent public key", "parent", spec.Parent, "key", keyPath)

	shell := spec.Shell
	if shell == "" {
		shell = p.Config.DefaultShell
	}

	if err := p.Users.AddUser(um.User{
		Username: spec.Username,
		Shell:    shell,
		Groups:   spec.Groups,
	}); err != nil {
		return err
	}
	p.Log.Info("Created account", "user", spec.Username, "shell", shell)

	created, err := p.Users.GetUser(spec.Username)
	if err != nil {
		return fmt.Errorf("looking up %s after creation: %w", spec.Username, err)
	}
	home := created.HomeDir

	if err := p.bootstrapSSH(ctx, spec.Username, home, keyPath); err != nil {
		return err
	}

	if err := p.layoutHome(home, parent.HomeDir); err != nil {
		return err
	}

	if p.Config.DevTool != "" && p.Packages.Available() {
		if err := p.Packages.InstallForUser(ctx, spec.Username, p.Config.DevTool); err != nil {
			p.Log.Warn("Dev tool install failed, continuing", "package", p.Config.DevTool, "error", err)
		} else {
			p.Log.Info("Installed dev tool", "user", spec.Username, "package", p.Config.DevTool)
		}
	}

	// Ownership comes last so nothing is left owned by root, whatever
	// the earlier steps created.
	if err := p.Files.ChownRecursive(home, spec.Username, spec.Username); err != nil {
		return fmt.Errorf("setting ownership of %s: %w", home, err)
	}

	p.Log.Info("Provisioned user", "user", spec.Username, "home", home)
	return nil
}

func (p *Provisioner) bootstrapSSH(ctx context.Context, username, home, parentKeyPath string) error {
	sshDir := filepath.Join(home, ".ssh")
	if err := p.Files.CreateDirectory(sshDir, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", sshDir, err)
	}

	// The parent's public key grants inbound access. Only the public
	// half moves; the parent keeps its private key.
	authorizedKeys := filepath.Join(sshDir, "authorized_keys")
	if err := p.Files.CopyFile(parentKeyPath, authorizedKeys); err != nil {
		return fmt.Errorf("installing authorized_keys: %w", err)
	}
	if err := p.Files.Chmod(authorizedKeys, 0o600); err != nil {
		return fmt.Errorf("restricting authorized_keys: %w", err)
	}
	p.Log.Info("Bootstrapped SSH trust", "user", username)

	comment := fmt.Sprintf("%s (created %s)", username, p.Now().Format("2006-01-02"))
	if err := p.Keys.GenerateKeyPair(ctx, filepath.Join(sshDir, "id_ed25519"), comment); err != nil {
		return err
	}
	p.Log.Info("Generated outbound keypair", "user", username)
	return nil
}

func (p *Provisioner) layoutHome(home, parentHome string) error {
	for _, dir := range baselineDirs {
		if err := p.Files.CreateDirectoryAll(filepath.Join(home, dir)); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	for _, name := range p.Config.ConfigDirs {
		source := filepath.Join(parentHome, ".config", name)
		if !p.Files.Exists(source) {
			continue
		}
		if err := p.Files.CopyDirectory(source, filepath.Join(home, ".config", name)); err != nil {
			// Partial dotfile state is worse than aborting here.
			return fmt.Errorf("%w: %s: %v", ErrConfigCopyFailed, name, err)
		}
		p.Log.Info("Copied config directory", "dir", name)
	}

	profile := filepath.Join(home, ".config", "zsh", ".zshrc")
	if err := p.Files.CreateDirectoryAll(filepath.Dir(profile)); err != nil {
		return fmt.Errorf("creating profile directory: %w", err)
	}
	if err := p.Files.CreateFile(profile); err != nil {
		return fmt.Errorf("creating profile placeholder: %w", err)
	}

	template := filepath.Join(p.Config.DotfilesPath, "zprofile")
	if p.Files.Exists(template) {
		if err := p.Files.Symlink(template, filepath.Join(home, ".zprofile")); err != nil {
			return fmt.Errorf("linking profile template: %w", err)
		}
		p.Log.Info("Linked shared profile template", "template", template)
	}

	return nil
}

// ListDevUsers returns the development accounts on the host: everything
// at or above the UID floor that is not a reserved name, sorted by
// username.
func (p *Provisioner) ListDevUsers() ([]um.User, error) {
	users, err := p.Users.ListUsers()
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	var devs []um.User
	for _, user := range users {
		if user.UID < p.Config.UIDFloor || p.isReservedName(user.Username) {
			continue
		}
		devs = append(devs, user)
	}
	sort.Slice(devs, func(i, j int) bool { return devs[i].Username < devs[j].Username })
	return devs, nil
}

// RemoveUser deletes an account and its home directory. Protected
// accounts are never removed, force or not. Without force the operator
// has to retype the exact username.
func (p *Provisioner) RemoveUser(ctx context.Context, username string, force bool) error {
	if err := ValidateUsername(username); err != nil {
		return err
	}

	if _, err := p.Users.GetUser(username); err != nil {
		if errors.Is(err, um.ErrUserNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, username)
		}
		return fmt.Errorf("looking up %s: %w", username, err)
	}

	if p.IsProtectedUser(username) {
		return fmt.Errorf("%w: %s", ErrProtected, username)
	}

	if !force {
		answer, err := p.Confirm.Confirm(fmt.Sprintf("This permanently deletes %s and its home directory.\nType %q to confirm: ", username, username))
		if err != nil {
			return err
		}
		if answer != username {
			return fmt.Errorf("%w: got %q", ErrConfirmationMismatch, answer)
		}
	}

	pids, err := p.Procs.ListForUser(username)
	if err != nil {
		return fmt.Errorf("listing processes of %s: %w", username, err)
	}
	if len(pids) > 0 {
		p.Log.Warn("Terminating processes", "user", username, "count", len(pids))
		if err := p.Procs.KillForUser(username); err != nil {
			return fmt.Errorf("killing processes of %s: %w", username, err)
		}
		// Give the kernel a moment to reap before the home directory
		// goes away.
		p.Sleep(p.Config.KillWait)
	}

	if err := p.Users.DeleteUser(username); err != nil {
		return err
	}

	if _, err := p.Users.GetUser(username); err == nil {
		return fmt.Errorf("%w: %s still resolves after userdel", ErrRemovalFailed, username)
	} else if !errors.Is(err, um.ErrUserNotFound) {
		return fmt.Errorf("verifying removal of %s: %w", username, err)
	}

	p.Log.Info("Removed user", "user", username)
	return nil
}
