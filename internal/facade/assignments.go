package facade

import (
	"context"

	"coaching-app/internal/apiclient"
	"coaching-app/internal/appstate"
	"coaching-app/internal/notify"

	"go.uber.org/zap"
)

// Assignments issues the write-only assign command.
type Assignments struct {
	opState
	log      *zap.SugaredLogger
	api      apiclient.Client
	store    *appstate.Store
	notifier Notifier
}

// NewAssignments constructs the assignments façade. notifier may be nil.
func NewAssignments(log *zap.SugaredLogger, api apiclient.Client, store *appstate.Store, notifier Notifier) *Assignments {
	return &Assignments{
		log:      log.Named("facade.assignments"),
		api:      api,
		store:    store,
		notifier: notifier,
	}
}

// Assign puts a member on a team. The server returns no body, so success is
// a bool and the outcome is observed through the refreshed teams and members
// collections, either of which may embed the changed membership.
func (f *Assignments) Assign(ctx context.Context, teamID, memberID int64) bool {
	f.begin()
	defer f.end()

	if err := f.api.AssignMemberToTeam(ctx, teamID, memberID); err != nil {
		msg := failureMessage(err, "failed to assign member to team")
		f.log.Errorw("assign member", "team_id", teamID, "member_id", memberID, "error", err)
		f.fail(msg)
		report(f.notifier, msg, notify.KindError)
		return false
	}

	f.store.RefreshTeamMembers(ctx)
	f.store.RefreshTeams(ctx)
	report(f.notifier, "member assigned to team", notify.KindSuccess)
	return true
}
