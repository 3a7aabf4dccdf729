package provisioner

import "errors"

var (
	// ErrInvalidUsername rejects names outside the allowed pattern.
	ErrInvalidUsername = errors.New("invalid username")

	// ErrAlreadyExists rejects creation of an existing account.
	ErrAlreadyExists = errors.New("user already exists")

	// ErrNotFound rejects removal of a non-existent account.
	ErrNotFound = errors.New("user does not exist")

	// ErrProtected rejects removal of a reserved or system account.
	ErrProtected = errors.New("user is protected")

	// ErrParentNotFound rejects creation when the parent account is missing.
	ErrParentNotFound = errors.New("parent user does not exist")

	// ErrNoParentKey rejects creation when the parent has no SSH trust anchor.
	ErrNoParentKey = errors.New("parent has no SSH public key")

	// ErrConfigCopyFailed aborts creation when an existing dotfile source
	// cannot be copied.
	ErrConfigCopyFailed = errors.New("config copy failed")

	// ErrConfirmationMismatch aborts removal on a wrong confirmation string.
	ErrConfirmationMismatch = errors.New("confirmation mismatch")

	// ErrRemovalFailed reports an account that still resolves after userdel.
	ErrRemovalFailed = errors.New("removal failed")
)
