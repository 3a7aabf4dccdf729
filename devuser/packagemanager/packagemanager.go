package packagemanager

import "context"

// PackageManager encompasses the optional developer-tool install for a
// freshly provisioned user.
type PackageManager interface {
	// Available reports whether the underlying package tool is on PATH.
	Available() bool

	// InstallForUser installs a package as the given user.
	InstallForUser(ctx context.Context, username, pkg string) error
}
