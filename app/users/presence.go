package users

import (
	"fmt"
	"strings"
)

// PresenceMode controls how much of the user's activity is shared externally.
type PresenceMode int

const (
	PresenceOff PresenceMode = iota
	PresenceLimited
	PresenceFull
)

var presenceModeNames = []string{"Off", "Limited", "Full"}

func PresenceModes() []PresenceMode {
	return []PresenceMode{PresenceOff, PresenceLimited, PresenceFull}
}

func (mode PresenceMode) String() string {
	if mode < 0 || int(mode) >= len(presenceModeNames) {
		return fmt.Sprintf("PresenceMode(%d)", int(mode))
	}

	return presenceModeNames[mode]
}

func (mode PresenceMode) MarshalText() ([]byte, error) {
	if mode < 0 || int(mode) >= len(presenceModeNames) {
		return nil, fmt.Errorf("invalid presence mode: %d", int(mode))
	}

	return []byte(mode.String()), nil
}

func (mode *PresenceMode) UnmarshalText(text []byte) error {
	for i, name := range presenceModeNames {
		if strings.EqualFold(name, string(text)) {
			*mode = PresenceMode(i)
			return nil
		}
	}

	return fmt.Errorf("unknown presence mode: %q", string(text))
}
