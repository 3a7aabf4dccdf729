package usermanager

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cm "github.com/devuserops/devuser/devuser/commandmanager"
)

type MockCommandManager struct {
	Outputs  map[string]cm.CommandResult
	Err      error
	LastRun  cm.CommandConfig
	Commands []cm.CommandConfig
}

func (m *MockCommandManager) Run(ctx context.Context, config cm.CommandConfig) (cm.CommandResult, error) {
	m.LastRun = config
	m.Commands = append(m.Commands, config)
	if output, exists := m.Outputs[config.Command]; exists {
		return output, m.Err
	}
	return cm.CommandResult{}, m.Err
}

func (m *MockCommandManager) LookPath(name string) (string, error) {
	return "/usr/sbin/" + name, nil
}

func TestGetUser(t *testing.T) {
	mockCmd := &MockCommandManager{
		Outputs: map[string]cm.CommandResult{
			"getent": {STDOUT: "alice:x:1001:1001:Alice:/home/alice:/bin/bash\n"},
		},
	}
	manager := LinuxUserManager{CommandManager: mockCmd}

	user, err := manager.GetUser("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, 1001, user.UID)
	assert.Equal(t, 1001, user.GID)
	assert.Equal(t, "/home/alice", user.HomeDir)
	assert.Equal(t, "/bin/bash", user.Shell)
}

func TestGetUserNotFound(t *testing.T) {
	mockCmd := &MockCommandManager{
		Outputs: map[string]cm.CommandResult{
			"getent": {ExitCode: 2},
		},
		Err: errors.New("exit status 2"),
	}
	manager := LinuxUserManager{CommandManager: mockCmd}

	_, err := manager.GetUser("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddUser(t *testing.T) {
	mockCmd := &MockCommandManager{}
	manager := LinuxUserManager{CommandManager: mockCmd}

	err := manager.AddUser(User{
		Username: "dev-bob",
		Shell:    "/bin/zsh",
		Groups:   []string{"docker", "dev"},
	})
	require.NoError(t, err)

	assert.Equal(t, "useradd", mockCmd.LastRun.Command)
	assert.Equal(t, []string{"-m", "-s", "/bin/zsh", "-G", "docker,dev", "dev-bob"}, mockCmd.LastRun.Args)
}

func TestAddUserNoGroups(t *testing.T) {
	mockCmd := &MockCommandManager{}
	manager := LinuxUserManager{CommandManager: mockCmd}

	err := manager.AddUser(User{Username: "dev-bob", Shell: "/bin/bash"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-m", "-s", "/bin/bash", "dev-bob"}, mockCmd.LastRun.Args)
}

func TestDeleteUserMailSpoolWarning(t *testing.T) {
	mockCmd := &MockCommandManager{
		Outputs: map[string]cm.CommandResult{
			"userdel": {STDERR: "userdel: dev-bob mail spool (/var/mail/dev-bob) not found\n", ExitCode: 12},
		},
		Err: errors.New("exit status 12"),
	}
	manager := LinuxUserManager{CommandManager: mockCmd}

	err := manager.DeleteUser("dev-bob")
	assert.NoError(t, err)
}

func TestDeleteUserRealFailure(t *testing.T) {
	mockCmd := &MockCommandManager{
		Outputs: map[string]cm.CommandResult{
			"userdel": {STDERR: "userdel: user dev-bob is currently used by process 4242\n", ExitCode: 8},
		},
		Err: errors.New("exit status 8"),
	}
	manager := LinuxUserManager{CommandManager: mockCmd}

	err := manager.DeleteUser("dev-bob")
	assert.Error(t, err)
}

func TestListUsers(t *testing.T) {
	mockCmd := &MockCommandManager{
		Outputs: map[string]cm.CommandResult{
			"getent": {STDOUT: "root:x:0:0:root:/root:/bin/bash\nalice:x:1001:1001::/home/alice:/bin/bash\n"},
		},
	}
	manager := LinuxUserManager{CommandManager: mockCmd}

	users, err := manager.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "root", users[0].Username)
	assert.Equal(t, 0, users[0].UID)
	assert.Equal(t, "alice", users[1].Username)
}
