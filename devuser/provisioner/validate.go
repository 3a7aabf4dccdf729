package provisioner

import (
	"errors"
	"fmt"
	"regexp"

	um "github.com/devuserops/devuser/devuser/usermanager"
)

// Usernames are lowercase, start with a letter, contain only lowercase
// letters, digits and hyphens, and do not end with a hyphen.
var usernamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$`)

func ValidateUsername(name string) error {
	if !usernamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidUsername, name)
	}
	return nil
}

// IsProtectedUser reports whether a name may never be removed: either it
// is in the reserved set, or it resolves to an account below the UID
// floor. The user database is consulted fresh on every call.
func (p *Provisioner) IsProtectedUser(name string) bool {
	if p.isReservedName(name) {
		return true
	}

	user, err := p.Users.GetUser(name)
	if err != nil {
		if errors.Is(err, um.ErrUserNotFound) {
			return false
		}
		// A failed lookup cannot prove the account is safe to remove.
		return true
	}
	return user.UID < p.Config.UIDFloor
}

func (p *Provisioner) isReservedName(name string) bool {
	for _, reserved := range p.Config.ProtectedUsers {
		if name == reserved {
			return true
		}
	}
	return false
}
