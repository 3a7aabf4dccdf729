package filemanager

import (
	"context"
	"errors"
	"testing"

	cm "github.com/devuserops/devuser/devuser/commandmanager"
)

type MockCommandManager struct {
	Result  cm.CommandResult
	Err     error
	LastRun cm.CommandConfig
}

func (m *MockCommandManager) Run(ctx context.Context, config cm.CommandConfig) (cm.CommandResult, error) {
	m.LastRun = config
	return m.Result, m.Err
}

func (m *MockCommandManager) LookPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

func TestCreateDirectory(t *testing.T) {
	mockCmd := &MockCommandManager{}
	manager := UnixFileManager{CommandManager: mockCmd}

	err := manager.CreateDirectory("/home/dev-bob/.ssh", 0700)
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if mockCmd.LastRun.Command != "mkdir" {
		t.Errorf("Expected mkdir, got: %v", mockCmd.LastRun.Command)
	}
	if mockCmd.LastRun.Args[1] != "0700" {
		t.Errorf("Expected mode 0700, got: %v", mockCmd.LastRun.Args[1])
	}
}

func TestChmod(t *testing.T) {
	mockCmd := &MockCommandManager{}
	manager := UnixFileManager{CommandManager: mockCmd}

	err := manager.Chmod("/home/dev-bob/.ssh/authorized_keys", 0600)
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if mockCmd.LastRun.Args[0] != "0600" {
		t.Errorf("Expected mode 0600, got: %v", mockCmd.LastRun.Args[0])
	}
}

func TestChownRecursive(t *testing.T) {
	mockCmd := &MockCommandManager{}
	manager := UnixFileManager{CommandManager: mockCmd}

	err := manager.ChownRecursive("/home/dev-bob", "dev-bob", "dev-bob")
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if mockCmd.LastRun.Args[1] != "dev-bob:dev-bob" {
		t.Errorf("Unexpected chown spec: %v", mockCmd.LastRun.Args[1])
	}
}

func TestExists(t *testing.T) {
	mockCmd := &MockCommandManager{}
	manager := UnixFileManager{CommandManager: mockCmd}

	if !manager.Exists("/etc/passwd") {
		t.Errorf("Expected Exists to return true on exit code 0")
	}

	mockCmd.Result = cm.CommandResult{ExitCode: 1}
	mockCmd.Err = errors.New("exit status 1")
	if manager.Exists("/no/such/path") {
		t.Errorf("Expected Exists to return false on non-zero exit")
	}
}

func TestCopyFileError(t *testing.T) {
	mockCmd := &MockCommandManager{
		Err: errors.New("mock error"),
	}
	manager := UnixFileManager{CommandManager: mockCmd}

	err := manager.CopyFile("/src", "/dst")
	if err == nil || err.Error() != "mock error" {
		t.Errorf("Expected mock error, got: %v", err)
	}
}

func TestSymlink(t *testing.T) {
	mockCmd := &MockCommandManager{}
	manager := UnixFileManager{CommandManager: mockCmd}

	err := manager.Symlink("/usr/local/share/dotfiles/zprofile", "/home/dev-bob/.zprofile")
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
	if mockCmd.LastRun.Command != "ln" {
		t.Errorf("Expected ln, got: %v", mockCmd.LastRun.Command)
	}
	if mockCmd.LastRun.Args[0] != "-s" {
		t.Errorf("Expected -s, got: %v", mockCmd.LastRun.Args[0])
	}
}
