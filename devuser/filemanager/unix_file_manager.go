package filemanager

import (
	"context"
	"fmt"
	"os"

	cm "github.com/devuserops/devuser/devuser/commandmanager"
)

type UnixFileManager struct {
	CommandManager cm.CommandManager
}

func (ufm *UnixFileManager) CreateDirectory(path string, mode os.FileMode) error {
	config := cm.CommandConfig{
		Command: "mkdir",
		Args:    []string{"-m", fmt.Sprintf("%04o", mode.Perm()), path},
	}
	result, err := ufm.CommandManager.Run(context.TODO(), config)
	return handleCommandResult(result, err)
}

func (ufm *UnixFileManager) CreateDirectoryAll(path string) error {
	config := cm.CommandConfig{
		Command: "mkdir",
		Args:    []string{"-p", path},
	}
	result, err := ufm.CommandManager.Run(context.TODO(), config)
	return handleCommandResult(result, err)
}

func (ufm *UnixFileManager) CopyDirectory(sourcePath, destPath string) error {
	config := cm.CommandConfig{
		Command: "cp",
		Args:    []string{"-r", sourcePath, destPath},
	}
	result, err := ufm.CommandManager.Run(context.TODO(), config)
	return handleCommandResult(result, err)
}

func (ufm *UnixFileManager) CreateFile(path string) error {
	config := cm.CommandConfig{
		Command: "touch",
		Args:    []string{path},
	}
	result, err := ufm.CommandManager.Run(context.TODO(), config)
	return handleCommandResult(result, err)
}

func (ufm *UnixFileManager) CopyFile(sourcePath, destPath string) error {
	config := cm.CommandConfig{
		Command: "cp",
		Args:    []string{sourcePath, destPath},
	}
	result, err := ufm.CommandManager.Run(context.TODO(), config)
	return handleCommandResult(result, err)
}

func (ufm *UnixFileManager) Symlink(target, link string) error {
	config := cm.CommandConfig{
		Command: "ln",
		Args:    []string{"-s", target, link},
	}
	result, err := ufm.CommandManager.Run(context.TODO(), config)
	return handleCommandResult(result, err)
}

func (ufm *UnixFileManager) Chmod(path string, mode os.FileMode) error {
	config := cm.CommandConfig{
		Command: "chmod",
		Args:    []string{fmt.Sprintf("%04o", mode.Perm()), path},
	}
	result, err := ufm.CommandManager.Run(context.TODO(), config)
	return handleCommandResult(result, err)
}

func (ufm *UnixFileManager) ChownRecursive(path, owner, group string) error {
	config := cm.CommandConfig{
		Command: "chown",
		Args:    []string{"-R", owner + ":" + group, path},
	}
	result, err := ufm.CommandManager.Run(context.TODO(), config)
	return handleCommandResult(result, err)
}

func (ufm *UnixFileManager) Exists(path string) bool {
	config := cm.CommandConfig{
		Command: "test",
		Args:    []string{"-e", path},
	}
	result, err := ufm.CommandManager.Run(context.TODO(), config)
	return err == nil && result.ExitCode == 0
}
