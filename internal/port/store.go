package port

import "github.com/cobalt/screentime/internal/domain"

// Store persists the settings document. Load returns defaults merged with
// whatever is on disk; a missing file is not an error.
type Store interface {
	Load() (*domain.Settings, error)
	Save(*domain.Settings) error
}
