//go:build !windows

package launcher

import "errors"

func detect() Launcher { return unavailable{} }

type unavailable struct{}

func (unavailable) Available() bool { return false }

func (unavailable) Launch(string) error {
	return errors.New("launching installers is not supported on this platform")
}
