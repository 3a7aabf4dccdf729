package usermanager

import "errors"

// ErrUserNotFound is returned when a username does not resolve in the
// user database.
var ErrUserNotFound = errors.New("user not found")

// User represents an individual user account on the system.
type User struct {
	Username string   // user login name
	UID      int      // user ID
	GID      int      // group ID
	Comment  string   // user full name or comment
	HomeDir  string   // user home directory
	Shell    string   // user's shell
	Groups   []string // supplementary groups, used at creation time
}

// UserManager encompasses operations related to user management.
type UserManager interface {
	// Fetches the details of a user based on username
	GetUser(username string) (User, error)

	// Adds a new user with a home directory
	AddUser(user User) error

	// Deletes a user and its home directory
	DeleteUser(username string) error

	// Lists all users
	ListUsers() ([]User, error)
}
