package provisioner

import (
	"time"

	"gopkg.in/ini.v1"
)

// Config holds the provisioner's tunables. It is built once and passed
// around by value; nothing mutates it after construction.
type Config struct {
	// ProtectedUsers are reserved names that can never be removed.
	ProtectedUsers []string

	// UIDFloor protects every account with a UID below it.
	UIDFloor int

	// DefaultShell is used when no shell is requested.
	DefaultShell string

	// ConfigDirs lists the dotfile directories copied from the parent's
	// ~/.config when present.
	ConfigDirs []string

	// DotfilesPath is where the shared login-profile template lives.
	DotfilesPath string

	// DevTool is installed with pipx as the new user, best-effort.
	DevTool string

	// KillWait is the pause between killing a user's processes and
	// deleting its home directory.
	KillWait time.Duration
}

func DefaultConfig() Config {
	return Config{
		ProtectedUsers: []string{
			"root", "daemon", "bin", "sys", "sync", "games", "man",
			"lp", "mail", "news", "proxy", "www-data", "backup",
			"nobody", "sshd", "systemd-network", "systemd-resolve",
			"messagebus",
		},
		UIDFloor:     1000,
		DefaultShell: "/bin/bash",
		ConfigDirs:   []string{"zsh", "nvim"},
		DotfilesPath: "/usr/local/share/dotfiles",
		DevTool:      "ipython",
		KillWait:     2 * time.Second,
	}
}

// LoadConfig overlays an INI file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file, err := ini.Load(path)
	if err != nil {
		return Config{}, err
	}

	prov := file.Section("provisioner")
	if prov.Key("protected_users").String() != "" {
		cfg.ProtectedUsers = prov.Key("protected_users").Strings(",")
	}
	cfg.UIDFloor = prov.Key("uid_floor").MustInt(cfg.UIDFloor)
	cfg.DefaultShell = prov.Key("default_shell").MustString(cfg.DefaultShell)
	cfg.KillWait = prov.Key("kill_wait").MustDuration(cfg.KillWait)

	dotfiles := file.Section("dotfiles")
	cfg.DotfilesPath = dotfiles.Key("path").MustString(cfg.DotfilesPath)
	if dotfiles.Key("config_dirs").String() != "" {
		cfg.ConfigDirs = dotfiles.Key("config_dirs").Strings(",")
	}

	tools := file.Section("tools")
	cfg.DevTool = tools.Key("package").MustString(cfg.DevTool)

	return cfg, nil
}
