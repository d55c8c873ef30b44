// Package editor opens a file in the user's text editor.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Command resolves the editor to run: the override (from config) if
// non-empty, then $EDITOR, then $VISUAL, then nano (notepad on Windows).
func Command(override string) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("EDITOR")); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("VISUAL")); v != "" {
		return v
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "nano"
}

// Open runs the editor on path, attached to the terminal, and waits for it
// to exit. The editor string may carry arguments ("code --wait").
func Open(editor, path string) error {
	args := strings.Fields(editor)
	if len(args) == 0 {
		return fmt.Errorf("empty editor command")
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running editor %s: %w", args[0], err)
	}
	return nil
}
