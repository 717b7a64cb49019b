package service

import (
	"errors"
	"fmt"

	"github.com/Beenod004/Networkfault/internal/interaction"
)

var (
	// ErrNotFound is returned for unknown device, link, fault or position ids.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedFormat is returned by Export for unknown formats.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	// ErrLinkModeUnavailable is returned when link mode is requested with fewer than two devices.
	ErrLinkModeUnavailable = interaction.ErrLinkModeUnavailable
	// ErrUnknownMode is returned for interaction modes other than pan, edit and link.
	ErrUnknownMode = interaction.ErrUnknownMode
)

func notFound(kind, id string) error {
	return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
}
