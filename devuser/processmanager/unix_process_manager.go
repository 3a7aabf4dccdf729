package processmanager

import (
	"context"
	"strconv"
	"strings"

	cm "github.com/devuserops/devuser/devuser/commandmanager"
)

type UnixProcessManager struct {
	CommandManager cm.CommandManager
}

func (upm *UnixProcessManager) ListForUser(username string) ([]int, error) {
	output, err := upm.CommandManager.Run(context.TODO(), cm.CommandConfig{
		Command: "pgrep",
		Args:    []string{"-u", username},
	})
	if err != nil {
		// pgrep exits 1 when no processes match.
		if output.ExitCode == 1 {
			return nil, nil
		}
		return nil, err
	}

	var pids []int
	for _, line := range strings.Split(strings.TrimSpace(output.STDOUT), "\n") {
		pid, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			continue
		}
		pids = append(pids, pid)
	}
	return pids, nil
}

func (upm *UnixProcessManager) KillForUser(username string) error {
	output, err := upm.CommandManager.Run(context.TODO(), cm.CommandConfig{
		Command: "pkill",
		Args:    []string{"-KILL", "-u", username},
	})
	if err != nil {
		// Exit 1 means nothing was left to kill.
		if output.ExitCode == 1 {
			return nil
		}
		return err
	}
	return nil
}
