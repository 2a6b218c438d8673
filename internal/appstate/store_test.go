package appstate

import (
	"context"
	"errors"
	"sync"
	"testing"

	"coaching-app/internal/apiclient"
	"coaching-app/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAPI serves canned collections and optional per-collection failures.
type fakeAPI struct {
	mu sync.Mutex

	members  []entities.TeamMember
	teams    []entities.Team
	feedback []entities.Feedback

	membersErr  error
	teamsErr    error
	feedbackErr error

	memberLists   int
	teamLists     int
	feedbackLists int
}

var _ apiclient.Client = (*fakeAPI)(nil)

func (f *fakeAPI) ListTeamMembers(_ context.Context) ([]entities.TeamMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memberLists++
	if f.membersErr != nil {
		return nil, f.membersErr
	}
	return append([]entities.TeamMember(nil), f.members...), nil
}

func (f *fakeAPI) ListTeams(_ context.Context) ([]entities.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teamLists++
	if f.teamsErr != nil {
		return nil, f.teamsErr
	}
	return append([]entities.Team(nil), f.teams...), nil
}

func (f *fakeAPI) ListFeedback(_ context.Context) ([]entities.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feedbackLists++
	if f.feedbackErr != nil {
		return nil, f.feedbackErr
	}
	return append([]entities.Feedback(nil), f.feedback...), nil
}

func (f *fakeAPI) CreateTeamMember(_ context.Context, _ entities.CreateTeamMemberRequest) (*entities.TeamMember, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) CreateTeam(_ context.Context, _ entities.CreateTeamRequest) (*entities.Team, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) GetTeam(_ context.Context, _ int64) (*entities.Team, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) GetTeamMembers(_ context.Context, _ int64) ([]entities.TeamMember, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) DeleteTeam(_ context.Context, _ int64) error { return errors.New("not implemented") }

func (f *fakeAPI) RemoveMemberFromTeam(_ context.Context, _, _ int64) error {
	return errors.New("not implemented")
}

func (f *fakeAPI) CreateFeedback(_ context.Context, _ entities.CreateFeedbackRequest) (*entities.Feedback, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) ListFeedbackByTeam(_ context.Context, _ int64) ([]entities.Feedback, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) ListFeedbackByMember(_ context.Context, _ int64) ([]entities.Feedback, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) AssignMemberToTeam(_ context.Context, _, _ int64) error {
	return errors.New("not implemented")
}

func (f *fakeAPI) set(fn func(*fakeAPI)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func TestNewStoreStartsEmptyAndLoading(t *testing.T) {
	store := NewStore(zap.NewNop().Sugar(), &fakeAPI{})

	snap := store.Snapshot()
	require.True(t, snap.Loading)
	require.Empty(t, snap.TeamMembers)
	require.Empty(t, snap.Teams)
	require.Empty(t, snap.Feedback)
	require.Empty(t, snap.Err)
}

func TestRefreshAllPopulatesAllCollections(t *testing.T) {
	api := &fakeAPI{
		members:  []entities.TeamMember{{ID: 1, Name: "Ann", Email: "ann@x.com"}},
		teams:    []entities.Team{{ID: 2, Name: "Blue"}},
		feedback: []entities.Feedback{{ID: 3, TargetType: entities.TargetTeam, TargetID: 2, Content: "nice"}},
	}
	store := NewStore(zap.NewNop().Sugar(), api)

	store.RefreshAll(context.Background())

	snap := store.Snapshot()
	require.False(t, snap.Loading)
	require.Empty(t, snap.Err)
	require.Equal(t, api.members, snap.TeamMembers)
	require.Equal(t, api.teams, snap.Teams)
	require.Equal(t, api.feedback, snap.Feedback)
}

func TestRefreshAllIsIdempotent(t *testing.T) {
	api := &fakeAPI{
		members: []entities.TeamMember{{ID: 1, Name: "Ann", Email: "ann@x.com"}},
		teams:   []entities.Team{{ID: 2, Name: "Blue"}},
	}
	store := NewStore(zap.NewNop().Sugar(), api)

	store.RefreshAll(context.Background())
	first := store.Snapshot()
	store.RefreshAll(context.Background())
	second := store.Snapshot()

	require.Equal(t, first.TeamMembers, second.TeamMembers)
	require.Equal(t, first.Teams, second.Teams)
	require.Equal(t, first.Feedback, second.Feedback)
}

func TestRefreshAllPartialFailureKeepsOtherCollections(t *testing.T) {
	api := &fakeAPI{
		members:  []entities.TeamMember{{ID: 1, Name: "Ann", Email: "ann@x.com"}},
		teams:    []entities.Team{{ID: 2, Name: "Blue"}},
		feedback: []entities.Feedback{{ID: 3, TargetType: entities.TargetMember, TargetID: 1, Content: "solid"}},
	}
	store := NewStore(zap.NewNop().Sugar(), api)
	store.RefreshAll(context.Background())
	before := store.Snapshot()

	api.set(func(f *fakeAPI) {
		f.teamsErr = errors.New("teams are down")
		f.members = append(f.members, entities.TeamMember{ID: 4, Name: "Bob", Email: "bob@x.com"})
	})

	store.RefreshAll(context.Background())
	after := store.Snapshot()

	require.False(t, after.Loading, "loading must clear even on failure")
	require.Contains(t, after.Err, "teams are down")
	require.Equal(t, before.Teams, after.Teams, "failed collection keeps its previous value")
	require.Len(t, after.TeamMembers, 2, "healthy collections still update")
	require.Equal(t, before.Feedback, after.Feedback)
}

func TestRefreshAllClearsPreviousError(t *testing.T) {
	api := &fakeAPI{membersErr: errors.New("boom")}
	store := NewStore(zap.NewNop().Sugar(), api)

	store.RefreshAll(context.Background())
	require.NotEmpty(t, store.Snapshot().Err)

	api.set(func(f *fakeAPI) { f.membersErr = nil })
	store.RefreshAll(context.Background())
	require.Empty(t, store.Snapshot().Err)
}

func TestTargetedRefreshSwallowsErrors(t *testing.T) {
	api := &fakeAPI{teams: []entities.Team{{ID: 2, Name: "Blue"}}}
	store := NewStore(zap.NewNop().Sugar(), api)
	store.RefreshAll(context.Background())
	before := store.Snapshot()

	api.set(func(f *fakeAPI) { f.teamsErr = errors.New("boom") })
	store.RefreshTeams(context.Background())

	after := store.Snapshot()
	require.Empty(t, after.Err, "targeted refreshes never surface a blocking error")
	require.Equal(t, before.Teams, after.Teams)
}

func TestTargetedRefreshReplacesOneCollection(t *testing.T) {
	api := &fakeAPI{members: []entities.TeamMember{{ID: 1, Name: "Ann", Email: "ann@x.com"}}}
	store := NewStore(zap.NewNop().Sugar(), api)
	store.RefreshAll(context.Background())

	api.set(func(f *fakeAPI) {
		f.members = append(f.members, entities.TeamMember{ID: 2, Name: "Bob", Email: "bob@x.com"})
	})
	store.RefreshTeamMembers(context.Background())

	snap := store.Snapshot()
	require.Len(t, snap.TeamMembers, 2)
	require.Equal(t, 2, api.memberLists)
	require.Equal(t, 1, api.teamLists, "only the members collection was re-fetched after the initial refresh")
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	api := &fakeAPI{}
	store := NewStore(zap.NewNop().Sugar(), api)

	var mu sync.Mutex
	var seen []Snapshot
	unsubscribe := store.Subscribe(func(snap Snapshot) {
		mu.Lock()
		seen = append(seen, snap)
		mu.Unlock()
	})

	store.RefreshAll(context.Background())

	mu.Lock()
	count := len(seen)
	last := seen[count-1]
	mu.Unlock()
	require.GreaterOrEqual(t, count, 2, "at least loading start and finish are published")
	require.False(t, last.Loading)

	unsubscribe()
	store.RefreshAll(context.Background())

	mu.Lock()
	require.Len(t, seen, count, "no deliveries after unsubscribe")
	mu.Unlock()
}
