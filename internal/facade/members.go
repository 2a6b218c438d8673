package facade

import (
	"context"

	"coaching-app/internal/apiclient"
	"coaching-app/internal/appstate"
	"coaching-app/internal/entities"
	"coaching-app/internal/notify"

	"go.uber.org/zap"
)

// Members mutates the team member collection.
type Members struct {
	opState
	log      *zap.SugaredLogger
	api      apiclient.Client
	store    *appstate.Store
	notifier Notifier
}

// NewMembers constructs the members façade. notifier may be nil.
func NewMembers(log *zap.SugaredLogger, api apiclient.Client, store *appstate.Store, notifier Notifier) *Members {
	return &Members{
		log:      log.Named("facade.members"),
		api:      api,
		store:    store,
		notifier: notifier,
	}
}

// Add creates a team member. On success the members collection is refreshed
// and the server-confirmed entity returned; on failure Add returns nil, the
// shared snapshot stays untouched and the message is available via Err.
func (f *Members) Add(ctx context.Context, req entities.CreateTeamMemberRequest) *entities.TeamMember {
	f.begin()
	defer f.end()

	member, err := f.api.CreateTeamMember(ctx, req)
	if err != nil {
		msg := failureMessage(err, "failed to create team member")
		f.log.Errorw("create team member", "email", req.Email, "error", err)
		f.fail(msg)
		report(f.notifier, msg, notify.KindError)
		return nil
	}

	f.store.RefreshTeamMembers(ctx)
	report(f.notifier, "team member added", notify.KindSuccess)
	return member
}
