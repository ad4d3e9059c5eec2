package ports

import (
	"context"

	"pulsex/domain/core"
	"pulsex/domain/survey"
)

// SessionRepository keeps the last slice criteria of each dashboard session.
// Sessions never observe each other's state.
type SessionRepository interface {
	// LastCriteria returns the criteria last saved for the session
	LastCriteria(ctx context.Context, sessionID core.SessionID) (survey.Criteria, bool)

	// SaveCriteria records the criteria the session is currently viewing
	SaveCriteria(ctx context.Context, sessionID core.SessionID, criteria survey.Criteria) error
}
