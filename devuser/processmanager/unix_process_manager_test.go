package processmanager

import (
	"context"
	"errors"
	"testing"

	cm "github.com/devuserops/devuser/devuser/commandmanager"
)

type MockCommandManager struct {
	Result cm.CommandResult
	Err    error
}

func (m *MockCommandManager) Run(ctx context.Context, config cm.CommandConfig) (cm.CommandResult, error) {
	return m.Result, m.Err
}

func (m *MockCommandManager) LookPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

func TestListForUser(t *testing.T) {
	mockCmd := &MockCommandManager{
		Result: cm.CommandResult{STDOUT: "1234\n5678\n"},
	}
	manager := UnixProcessManager{CommandManager: mockCmd}

	pids, err := manager.ListForUser("dev-bob")
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if len(pids) != 2 || pids[0] != 1234 || pids[1] != 5678 {
		t.Errorf("Unexpected pids: %v", pids)
	}
}

func TestListForUserNoProcesses(t *testing.T) {
	mockCmd := &MockCommandManager{
		Result: cm.CommandResult{ExitCode: 1},
		Err:    errors.New("exit status 1"),
	}
	manager := UnixProcessManager{CommandManager: mockCmd}

	pids, err := manager.ListForUser("dev-bob")
	if err != nil {
		t.Errorf("Expected no error when no processes match, got: %v", err)
	}
	if len(pids) != 0 {
		t.Errorf("Expected no pids, got: %v", pids)
	}
}

func TestKillForUserNothingToKill(t *testing.T) {
	mockCmd := &MockCommandManager{
		Result: cm.CommandResult{ExitCode: 1},
		Err:    errors.New("exit status 1"),
	}
	manager := UnixProcessManager{CommandManager: mockCmd}

	if err := manager.KillForUser("dev-bob"); err != nil {
		t.Errorf("Expected no error when nothing matches, got: %v", err)
	}
}

func TestKillForUserFailure(t *testing.T) {
	mockCmd := &MockCommandManager{
		Result: cm.CommandResult{ExitCode: 2, STDERR: "pkill: invalid user name"},
		Err:    errors.New("exit status 2"),
	}
	manager := UnixProcessManager{CommandManager: mockCmd}

	if err := manager.KillForUser("dev-bob"); err == nil {
		t.Errorf("Expected an error for pkill failure")
	}
}
