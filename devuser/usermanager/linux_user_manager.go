package usermanager

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	cm "github.com/devuserops/devuser/devuser/commandmanager"
)

type LinuxUserManager struct {
	CommandManager cm.CommandManager
}

func (l *LinuxUserManager) GetUser(username string) (User, error) {
	output, err := l.CommandManager.Run(context.TODO(), cm.CommandConfig{
		Command: "getent",
		Args:    []string{"passwd", username},
	})
	if err != nil {
		// getent exits 2 when the key is not present in the database.
		if output.ExitCode == 2 {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}

	user, err := parsePasswdLine(strings.TrimSpace(output.STDOUT))
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (l *LinuxUserManager) AddUser(user User) error {
	args := []string{"-m"}
	if user.Shell != "" {
		args = append(args, "-s", user.Shell)
	}
	if len(user.Groups) > 0 {
		args = append(args, "-G", strings.Join(user.Groups, ","))
	}
	args = append(args, user.Username)

	result, err := l.CommandManager.Run(context.TODO(), cm.CommandConfig{
		Command: "useradd",
		Args:    args,
	})
	if err != nil {
		return fmt.Errorf("useradd %s: %s: %w", user.Username, strings.TrimSpace(result.STDERR), err)
	}
	return nil
}

func (l *LinuxUserManager) DeleteUser(username string) error {
	result, err := l.CommandManager.Run(context.TODO(), cm.CommandConfig{
		Command: "userdel",
		Args:    []string{"-r", username},
	})
	if err != nil {
		// userdel warns about an absent mail spool on stderr; when that is
		// the only complaint the removal itself succeeded.
		filtered := filterMailSpoolWarning(result.STDERR)
		if filtered == "" {
			return nil
		}
		return fmt.Errorf("userdel %s: %s: %w", username, filtered, err)
	}
	return nil
}

func (l *LinuxUserManager) ListUsers() ([]User, error) {
	output, err := l.CommandManager.Run(context.TODO(), cm.CommandConfig{
		Command: "getent",
		Args:    []string{"passwd"},
	})
	if err != nil {
		return nil, err
	}

	lines := strings.Split(output.STDOUT, "\n")
	users := []User{}

	for _, line := range lines {
		user, err := parsePasswdLine(line)
		if err != nil {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func parsePasswdLine(line string) (User, error) {
	parts := strings.Split(line, ":")
	if len(parts) < 7 {
		return User{}, errors.New("unexpected passwd format")
	}

	uid, _ := strconv.Atoi(parts[2])
	gid, _ := strconv.Atoi(parts[3])

	return User{
		Username: parts[0],
		UID:      uid,
		GID:      gid,
		Comment:  parts[4],
		HomeDir:  parts[5],
		Shell:    parts[6],
	}, nil
}

func filterMailSpoolWarning(stderr string) string {
	var kept []string
	for _, line := range strings.Split(stderr, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Contains(line, "mail spool") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
