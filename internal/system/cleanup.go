package system

import (
	"time"

	coresys "github.com/fallcatch/fallcatch/internal/core/system"
	"github.com/fallcatch/fallcatch/internal/present"
)

// CleanupSystem syncs the presenter with the final view and flushes its
// deferred disposal queue at frame end. Phase 4 (Cleanup).
type CleanupSystem struct {
	session *Session
	tracker *present.Tracker
}

func NewCleanupSystem(session *Session, tracker *present.Tracker) *CleanupSystem {
	return &CleanupSystem{session: session, tracker: tracker}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.tracker.FlushDisposals()
	s.tracker.Sync(s.session.View)
}
