package activity

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AY-10/inventryy/internal/activity/domain"
	"github.com/AY-10/inventryy/pkg/logger"
)

// Recorder writes audit-trail entries without ever blocking or failing the
// operation being recorded. Persistence errors are logged and dropped.
type Recorder struct {
	repo domain.ActivityRepository
}

func NewRecorder(repo domain.ActivityRepository) *Recorder {
	return &Recorder{repo: repo}
}

// Record persists the activity asynchronously. It is safe to call on a nil
// Recorder, which makes auditing optional for callers.
func (r *Recorder) Record(ctx context.Context, userID uint, actionType, entityType string, entityID uint, details map[string]interface{}) {
	if r == nil {
		return
	}

	payload, err := json.Marshal(details)
	if err != nil {
		logger.Error(ctx).Err(err).
			Str("action_type", actionType).
			Str("entity_type", entityType).
			Msg("Failed to marshal activity details")
		payload = []byte("{}")
	}

	activity := &domain.Activity{
		UserID:     userID,
		ActionType: actionType,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    payload,
	}

	go func() {
		// Detached from the request: the core transaction has already
		// committed and must not be undone by a recording failure.
		recordCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := r.repo.Create(recordCtx, activity); err != nil {
			logger.Logger.Error().Err(err).
				Str("action_type", actionType).
				Str("entity_type", entityType).
				Uint("entity_id", entityID).
				Msg("Failed to record activity")
		}
	}()
}
