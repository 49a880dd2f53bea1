// Package launcher starts a downloaded installer as an independent process
// on platforms that support it.
package launcher

// Launcher is the platform's installer-launching capability.
type Launcher interface {
	// Available reports whether launching installers is offered at all.
	Available() bool
	// Launch starts path as a detached process without waiting for it or
	// inspecting its exit status.
	Launch(path string) error
}

// Detect selects the launch capability for the current platform. It is meant
// to be called once at startup.
func Detect() Launcher {
	return detect()
}
