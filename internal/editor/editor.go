// Package editor launches the user's preferred text editor.
package editor

import (
	"context"
	"os"
	"os/exec"
	"runtime"

	"github.com/kdeldycke/extra-platforms-sub001/internal/errors"
)

// Command returns the editor invocation for path, wired to the terminal.
func Command(ctx context.Context, path string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, detectEditor(), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Open runs the editor on path and waits for it to exit.
func Open(ctx context.Context, path string) error {
	if err := Command(ctx, path).Run(); err != nil {
		return errors.Wrap(err, "running editor")
	}
	return nil
}

// detectEditor walks $EDITOR, $VISUAL, then a platform default: notepad on
// Windows, nano when installed, vi otherwise.
func detectEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
