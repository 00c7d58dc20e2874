package resume

import (
	"strings"

	"github.com/rs/zerolog"
)

// EntityRecognizer is an optional named-entity collaborator.
// Implementations must be safe for concurrent use or be created per worker.
type EntityRecognizer interface {
	FindPersonEntities(text string) ([]string, error)
	FindOrganizationEntities(text string) ([]string, error)
}

// organizationHints asks the recognizer for organization names in text.
// Recognizer errors are logged and treated as "no hints".
func organizationHints(r EntityRecognizer, text string, log zerolog.Logger) []string {
	if r == nil || strings.TrimSpace(text) == "" {
		return nil
	}
	orgs, err := r.FindOrganizationEntities(text)
	if err != nil {
		log.Warn().Err(err).Msg("organization entity lookup failed")
		return nil
	}
	return orgs
}

// matchHint returns the first hint contained in line, ignoring case
func matchHint(line string, hints []string) (string, bool) {
	lower := strings.ToLower(line)
	for _, h := range hints {
		if h = strings.TrimSpace(h); h != "" && strings.Contains(lower, strings.ToLower(h)) {
			return h, true
		}
	}
	return "", false
}
