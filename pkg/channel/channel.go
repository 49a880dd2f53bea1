package channel

import (
	"fmt"
	"strings"
)

// Channel identifies an NVDA release track.
type Channel int

const (
	// Stable is the current stable release.
	Stable Channel = iota
	// Alpha is the latest snapshot alpha build.
	Alpha
	// Beta is the current beta release.
	Beta
	// XP is the last build that still runs on Windows XP.
	XP
	// Win7 is the last build that still runs on Windows 7.
	Win7
)

var names = []string{"stable", "alpha", "beta", "xp", "win7"}

// Names returns the accepted channel names in display order.
func Names() []string {
	return append([]string(nil), names...)
}

// Parse maps a user-supplied name to a Channel. Matching is case-insensitive.
func Parse(name string) (Channel, error) {
	switch strings.ToLower(name) {
	case "stable":
		return Stable, nil
	case "alpha":
		return Alpha, nil
	case "beta":
		return Beta, nil
	case "xp":
		return XP, nil
	case "win7":
		return Win7, nil
	default:
		return Stable, fmt.Errorf("unknown channel %q (expected one of: %s)", name, strings.Join(names, ", "))
	}
}

func (c Channel) String() string {
	switch c {
	case Stable:
		return "stable"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case XP:
		return "xp"
	case Win7:
		return "win7"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// Endpoint returns the metadata resource name for the channel, e.g. "alpha.json".
func (c Channel) Endpoint() string {
	return c.String() + ".json"
}
