package facade

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"coaching-app/internal/apiclient"
	"coaching-app/internal/appstate"
	"coaching-app/internal/entities"
	"coaching-app/internal/notify"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAPI drives façades in tests. Mutations are function fields; listings
// serve the current canned collections.
type fakeAPI struct {
	mu sync.Mutex

	members  []entities.TeamMember
	teams    []entities.Team
	feedback []entities.Feedback

	memberLists int
	teamLists   int

	createMemberFn   func(entities.CreateTeamMemberRequest) (*entities.TeamMember, error)
	createTeamFn     func(entities.CreateTeamRequest) (*entities.Team, error)
	deleteTeamFn     func(int64) error
	removeMemberFn   func(int64, int64) error
	createFeedbackFn func(entities.CreateFeedbackRequest) (*entities.Feedback, error)
	assignFn         func(int64, int64) error
}

var _ apiclient.Client = (*fakeAPI)(nil)

func (f *fakeAPI) CreateTeamMember(_ context.Context, req entities.CreateTeamMemberRequest) (*entities.TeamMember, error) {
	return f.createMemberFn(req)
}

func (f *fakeAPI) ListTeamMembers(_ context.Context) ([]entities.TeamMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memberLists++
	return append([]entities.TeamMember(nil), f.members...), nil
}

func (f *fakeAPI) CreateTeam(_ context.Context, req entities.CreateTeamRequest) (*entities.Team, error) {
	return f.createTeamFn(req)
}

func (f *fakeAPI) ListTeams(_ context.Context) ([]entities.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teamLists++
	return append([]entities.Team(nil), f.teams...), nil
}

func (f *fakeAPI) GetTeam(_ context.Context, _ int64) (*entities.Team, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) GetTeamMembers(_ context.Context, _ int64) ([]entities.TeamMember, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) DeleteTeam(_ context.Context, teamID int64) error {
	return f.deleteTeamFn(teamID)
}

func (f *fakeAPI) RemoveMemberFromTeam(_ context.Context, teamID, memberID int64) error {
	return f.removeMemberFn(teamID, memberID)
}

func (f *fakeAPI) CreateFeedback(_ context.Context, req entities.CreateFeedbackRequest) (*entities.Feedback, error) {
	return f.createFeedbackFn(req)
}

func (f *fakeAPI) ListFeedback(_ context.Context) ([]entities.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]entities.Feedback(nil), f.feedback...), nil
}

func (f *fakeAPI) ListFeedbackByTeam(_ context.Context, _ int64) ([]entities.Feedback, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) ListFeedbackByMember(_ context.Context, _ int64) ([]entities.Feedback, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) AssignMemberToTeam(_ context.Context, teamID, memberID int64) error {
	return f.assignFn(teamID, memberID)
}

// fakeNotifier records reported outcomes.
type fakeNotifier struct {
	mu    sync.Mutex
	items []notify.Notification
}

func (n *fakeNotifier) Enqueue(message string, kind notify.Kind, duration time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, notify.Notification{Message: message, Kind: kind, Duration: duration})
}

func (n *fakeNotifier) last(t *testing.T) notify.Notification {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	require.NotEmpty(t, n.items)
	return n.items[len(n.items)-1]
}

func newFixture(api *fakeAPI) (*appstate.Store, *fakeNotifier) {
	return appstate.NewStore(zap.NewNop().Sugar(), api), &fakeNotifier{}
}

func TestMembersAddSuccessRefreshesCollection(t *testing.T) {
	api := &fakeAPI{}
	api.createMemberFn = func(req entities.CreateTeamMemberRequest) (*entities.TeamMember, error) {
		created := entities.TeamMember{ID: 7, Name: req.Name, Email: req.Email}
		api.mu.Lock()
		api.members = append(api.members, created)
		api.mu.Unlock()
		return &created, nil
	}
	store, notifier := newFixture(api)
	f := NewMembers(zap.NewNop().Sugar(), api, store, notifier)

	member := f.Add(context.Background(), entities.CreateTeamMemberRequest{Name: "Ann", Email: "ann@x.com"})

	require.NotNil(t, member)
	require.Equal(t, int64(7), member.ID, "server-assigned id comes back")
	require.Contains(t, store.Snapshot().TeamMembers, *member, "refresh landed Ann in the snapshot")
	require.Empty(t, f.Err())
	require.False(t, f.Loading())
	require.Equal(t, notify.KindSuccess, notifier.last(t).Kind)
}

func TestMembersAddFailureLeavesSnapshotUntouched(t *testing.T) {
	api := &fakeAPI{}
	api.createMemberFn = func(entities.CreateTeamMemberRequest) (*entities.TeamMember, error) {
		return nil, &apiclient.APIError{Message: "duplicate email", Status: 409}
	}
	store, notifier := newFixture(api)
	store.RefreshAll(context.Background())
	before := store.Snapshot()

	f := NewMembers(zap.NewNop().Sugar(), api, store, notifier)
	member := f.Add(context.Background(), entities.CreateTeamMemberRequest{Name: "Ann", Email: "ann@x.com"})

	require.Nil(t, member, "failure returns the nil sentinel")
	require.Equal(t, before, store.Snapshot(), "failed mutation leaves the snapshot unchanged")
	require.Equal(t, "duplicate email", f.Err())

	n := notifier.last(t)
	require.Equal(t, notify.KindError, n.Kind)
	require.Equal(t, "duplicate email", n.Message)
}

func TestMembersAddFallbackMessage(t *testing.T) {
	api := &fakeAPI{}
	api.createMemberFn = func(entities.CreateTeamMemberRequest) (*entities.TeamMember, error) {
		return nil, errors.New("connection refused")
	}
	store, notifier := newFixture(api)
	f := NewMembers(zap.NewNop().Sugar(), api, store, notifier)

	require.Nil(t, f.Add(context.Background(), entities.CreateTeamMemberRequest{Name: "Ann", Email: "ann@x.com"}))
	require.Equal(t, "failed to create team member", f.Err(), "untyped failures get the generic message")
}

func TestLoadingTrueOnlyDuringCall(t *testing.T) {
	api := &fakeAPI{}
	store, notifier := newFixture(api)
	f := NewMembers(zap.NewNop().Sugar(), api, store, notifier)

	api.createMemberFn = func(req entities.CreateTeamMemberRequest) (*entities.TeamMember, error) {
		require.True(t, f.Loading(), "loading is true while the call is in flight")
		return &entities.TeamMember{ID: 1, Name: req.Name, Email: req.Email}, nil
	}

	require.False(t, f.Loading())
	f.Add(context.Background(), entities.CreateTeamMemberRequest{Name: "Ann", Email: "ann@x.com"})
	require.False(t, f.Loading(), "loading is false before the caller resumes")
}

func TestConcurrentFacadesDoNotShareState(t *testing.T) {
	api := &fakeAPI{}
	api.createTeamFn = func(req entities.CreateTeamRequest) (*entities.Team, error) {
		return nil, &apiclient.APIError{Message: "team quota reached", Status: 422}
	}
	api.createMemberFn = func(req entities.CreateTeamMemberRequest) (*entities.TeamMember, error) {
		return &entities.TeamMember{ID: 1, Name: req.Name, Email: req.Email}, nil
	}
	store, notifier := newFixture(api)

	members := NewMembers(zap.NewNop().Sugar(), api, store, notifier)
	teams := NewTeams(zap.NewNop().Sugar(), api, store, notifier)

	require.Nil(t, teams.Add(context.Background(), entities.CreateTeamRequest{Name: "Blue"}))
	require.NotNil(t, members.Add(context.Background(), entities.CreateTeamMemberRequest{Name: "Ann", Email: "ann@x.com"}))

	require.Equal(t, "team quota reached", teams.Err())
	require.Empty(t, members.Err(), "each façade tracks only its own last operation")
}

func TestTeamsDeleteSuccess(t *testing.T) {
	api := &fakeAPI{teams: []entities.Team{{ID: 2, Name: "Blue"}}}
	api.deleteTeamFn = func(teamID int64) error {
		api.mu.Lock()
		defer api.mu.Unlock()
		api.teams = nil
		return nil
	}
	store, notifier := newFixture(api)
	store.RefreshTeams(context.Background())

	f := NewTeams(zap.NewNop().Sugar(), api, store, notifier)
	require.True(t, f.Delete(context.Background(), 2))
	require.Empty(t, store.Snapshot().Teams)
}

func TestTeamsRemoveMemberRefreshesBothCollections(t *testing.T) {
	api := &fakeAPI{}
	api.removeMemberFn = func(int64, int64) error { return nil }
	store, notifier := newFixture(api)
	f := NewTeams(zap.NewNop().Sugar(), api, store, notifier)

	require.True(t, f.RemoveMember(context.Background(), 2, 1))
	require.Equal(t, 1, api.teamLists)
	require.Equal(t, 1, api.memberLists)
}

func TestAssignRefreshesMembersAndTeams(t *testing.T) {
	api := &fakeAPI{
		members: []entities.TeamMember{{ID: 1, Name: "Ann", Email: "ann@x.com"}},
		teams:   []entities.Team{{ID: 2, Name: "Blue"}},
	}
	api.assignFn = func(teamID, memberID int64) error {
		api.mu.Lock()
		defer api.mu.Unlock()
		for i := range api.teams {
			if api.teams[i].ID == teamID {
				api.teams[i].Members = append(api.teams[i].Members, api.members[0])
			}
		}
		return nil
	}
	store, notifier := newFixture(api)
	f := NewAssignments(zap.NewNop().Sugar(), api, store, notifier)

	require.True(t, f.Assign(context.Background(), 2, 1))
	require.Equal(t, 1, api.memberLists, "assignment refreshes team members")
	require.Equal(t, 1, api.teamLists, "assignment refreshes teams")

	snap := store.Snapshot()
	require.Len(t, snap.Teams, 1)
	require.Len(t, snap.Teams[0].Members, 1)
	require.Equal(t, int64(1), snap.Teams[0].Members[0].ID, "team 2 embeds member 1 after the refresh")
}

func TestAssignFailure(t *testing.T) {
	api := &fakeAPI{}
	api.assignFn = func(int64, int64) error {
		return &apiclient.APIError{Message: "team not found", Status: 404}
	}
	store, notifier := newFixture(api)
	f := NewAssignments(zap.NewNop().Sugar(), api, store, notifier)

	require.False(t, f.Assign(context.Background(), 99, 1))
	require.Equal(t, "team not found", f.Err())
	require.Zero(t, api.teamLists, "no refresh after a failed write")
	require.Zero(t, api.memberLists)
}

func TestFeedbackAddAndByTarget(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	api := &fakeAPI{
		feedback: []entities.Feedback{
			{ID: 1, TargetType: entities.TargetTeam, TargetID: 2, Content: "older", CreatedAt: now.Add(-time.Hour)},
			{ID: 2, TargetType: entities.TargetMember, TargetID: 1, Content: "other target", CreatedAt: now},
		},
	}
	api.createFeedbackFn = func(req entities.CreateFeedbackRequest) (*entities.Feedback, error) {
		created := entities.Feedback{ID: 3, TargetType: req.TargetType, TargetID: req.TargetID, Content: req.Content, CreatedAt: now}
		api.mu.Lock()
		api.feedback = append(api.feedback, created)
		api.mu.Unlock()
		return &created, nil
	}
	store, notifier := newFixture(api)
	f := NewFeedback(zap.NewNop().Sugar(), api, store, notifier)

	fb := f.Add(context.Background(), entities.CreateFeedbackRequest{TargetType: entities.TargetTeam, TargetID: 2, Content: "great sprint"})
	require.NotNil(t, fb)

	forTeam := f.ByTarget(entities.TargetTeam, 2)
	require.Len(t, forTeam, 2)
	require.Equal(t, "great sprint", forTeam[0].Content, "newest first")
	require.Equal(t, "older", forTeam[1].Content)
}

func TestNilNotifierIsSafe(t *testing.T) {
	api := &fakeAPI{}
	api.createMemberFn = func(req entities.CreateTeamMemberRequest) (*entities.TeamMember, error) {
		return &entities.TeamMember{ID: 1, Name: req.Name, Email: req.Email}, nil
	}
	store := appstate.NewStore(zap.NewNop().Sugar(), api)
	f := NewMembers(zap.NewNop().Sugar(), api, store, nil)

	require.NotNil(t, f.Add(context.Background(), entities.CreateTeamMemberRequest{Name: "Ann", Email: "ann@x.com"}))
}
