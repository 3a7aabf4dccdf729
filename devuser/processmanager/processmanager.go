package processmanager

// ProcessManager encompasses operations on processes owned by a user.
type ProcessManager interface {
	// ListForUser returns the PIDs of processes owned by the user.
	ListForUser(username string) ([]int, error)

	// KillForUser terminates every process owned by the user.
	KillForUser(username string) error
}
