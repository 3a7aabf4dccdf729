package provisioner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirmer supplies the operator's answer to a destructive-action prompt.
type Confirmer interface {
	Confirm(prompt string) (string, error)
}

// TerminalConfirmer prompts on stdout and reads a line from stdin.
type TerminalConfirmer struct {
	In io.Reader
}

func NewTerminalConfirmer() *TerminalConfirmer {
	return &TerminalConfirmer{In: os.Stdin}
}

func (tc *TerminalConfirmer) Confirm(prompt string) (string, error) {
	if f, ok := tc.In.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return "", errors.New("stdin is not a terminal, use --force for non-interactive removal")
	}

	fmt.Print(prompt)
	line, err := bufio.NewReader(tc.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
