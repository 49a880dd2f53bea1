//go:build windows

package launcher

import (
	"fmt"
	"os/exec"
	"path/filepath"
)

func detect() Launcher { return windowsLauncher{} }

type windowsLauncher struct{}

func (windowsLauncher) Available() bool { return true }

func (windowsLauncher) Launch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	cmd := exec.Command(abs)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", abs, err)
	}

	// The installer outlives this process.
	return cmd.Process.Release()
}
