package facade

import (
	"context"

	"coaching-app/internal/apiclient"
	"coaching-app/internal/appstate"
	"coaching-app/internal/entities"
	"coaching-app/internal/notify"

	"go.uber.org/zap"
)

// Teams mutates the team collection.
type Teams struct {
	opState
	log      *zap.SugaredLogger
	api      apiclient.Client
	store    *appstate.Store
	notifier Notifier
}

// NewTeams constructs the teams façade. notifier may be nil.
func NewTeams(log *zap.SugaredLogger, api apiclient.Client, store *appstate.Store, notifier Notifier) *Teams {
	return &Teams{
		log:      log.Named("facade.teams"),
		api:      api,
		store:    store,
		notifier: notifier,
	}
}

// Add creates a team. Returns nil on failure.
func (f *Teams) Add(ctx context.Context, req entities.CreateTeamRequest) *entities.Team {
	f.begin()
	defer f.end()

	team, err := f.api.CreateTeam(ctx, req)
	if err != nil {
		msg := failureMessage(err, "failed to create team")
		f.log.Errorw("create team", "name", req.Name, "error", err)
		f.fail(msg)
		report(f.notifier, msg, notify.KindError)
		return nil
	}

	f.store.RefreshTeams(ctx)
	report(f.notifier, "team created", notify.KindSuccess)
	return team
}

// Delete removes a team. Returns false on failure.
func (f *Teams) Delete(ctx context.Context, teamID int64) bool {
	f.begin()
	defer f.end()

	if err := f.api.DeleteTeam(ctx, teamID); err != nil {
		msg := failureMessage(err, "failed to delete team")
		f.log.Errorw("delete team", "team_id", teamID, "error", err)
		f.fail(msg)
		report(f.notifier, msg, notify.KindError)
		return false
	}

	f.store.RefreshTeams(ctx)
	report(f.notifier, "team deleted", notify.KindSuccess)
	return true
}

// RemoveMember drops a member from a team. Both sides of the relationship
// may carry an embedded list, so teams and members are refreshed.
func (f *Teams) RemoveMember(ctx context.Context, teamID, memberID int64) bool {
	f.begin()
	defer f.end()

	if err := f.api.RemoveMemberFromTeam(ctx, teamID, memberID); err != nil {
		msg := failureMessage(err, "failed to remove member from team")
		f.log.Errorw("remove member", "team_id", teamID, "member_id", memberID, "error", err)
		f.fail(msg)
		report(f.notifier, msg, notify.KindError)
		return false
	}

	f.store.RefreshTeams(ctx)
	f.store.RefreshTeamMembers(ctx)
	report(f.notifier, "member removed from team", notify.KindSuccess)
	return true
}
