package filemanager

import (
	"errors"
	"os"

	cm "github.com/devuserops/devuser/devuser/commandmanager"
)

// DirOperations represents operations that can be performed on directories.
type DirOperations interface {
	CreateDirectory(path string, mode os.FileMode) error
	CreateDirectoryAll(path string) error
	CopyDirectory(sourcePath, destPath string) error
}

// FileOperations represents operations that can be performed on files.
type FileOperations interface {
	CreateFile(path string) error
	CopyFile(sourcePath, destPath string) error
	Symlink(target, link string) error
}

// AttrOperations represents ownership and permission changes.
type AttrOperations interface {
	Chmod(path string, mode os.FileMode) error
	ChownRecursive(path, owner, group string) error
	Exists(path string) bool
}

// FileManager encompasses operations on both files and directories.
type FileManager interface {
	FileOperations
	DirOperations
	AttrOperations
}

func handleCommandResult(result cm.CommandResult, err error) error {
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return errors.New(result.STDERR)
	}
	return nil
}
