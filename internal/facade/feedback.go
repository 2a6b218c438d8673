package facade

import (
	"context"
	"sort"

	"coaching-app/internal/apiclient"
	"coaching-app/internal/appstate"
	"coaching-app/internal/entities"
	"coaching-app/internal/notify"

	"go.uber.org/zap"
)

// Feedback mutates and filters the feedback collection.
type Feedback struct {
	opState
	log      *zap.SugaredLogger
	api      apiclient.Client
	store    *appstate.Store
	notifier Notifier
}

// NewFeedback constructs the feedback façade. notifier may be nil.
func NewFeedback(log *zap.SugaredLogger, api apiclient.Client, store *appstate.Store, notifier Notifier) *Feedback {
	return &Feedback{
		log:      log.Named("facade.feedback"),
		api:      api,
		store:    store,
		notifier: notifier,
	}
}

// Add creates feedback. Returns nil on failure.
func (f *Feedback) Add(ctx context.Context, req entities.CreateFeedbackRequest) *entities.Feedback {
	f.begin()
	defer f.end()

	fb, err := f.api.CreateFeedback(ctx, req)
	if err != nil {
		msg := failureMessage(err, "failed to create feedback")
		f.log.Errorw("create feedback", "target_type", req.TargetType, "target_id", req.TargetID, "error", err)
		f.fail(msg)
		report(f.notifier, msg, notify.KindError)
		return nil
	}

	f.store.RefreshFeedback(ctx)
	report(f.notifier, "feedback sent", notify.KindSuccess)
	return fb
}

// ByTarget returns the snapshot's feedback for one target, newest first.
func (f *Feedback) ByTarget(targetType entities.TargetType, targetID int64) []entities.Feedback {
	snap := f.store.Snapshot()

	out := make([]entities.Feedback, 0)
	for _, fb := range snap.Feedback {
		if fb.TargetType == targetType && fb.TargetID == targetID {
			out = append(out, fb)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
