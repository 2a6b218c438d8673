// Package appstate owns the client-side snapshot of server data and the
// refresh protocol that keeps it converged with the API.
package appstate

import (
	"context"
	"sync"

	"coaching-app/internal/apiclient"
	"coaching-app/internal/entities"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Snapshot is one immutable version of everything fetched from the server.
// Collections are replaced wholesale, never edited in place, so a held
// Snapshot stays internally consistent forever.
type Snapshot struct {
	TeamMembers []entities.TeamMember
	Teams       []entities.Team
	Feedback    []entities.Feedback
	Loading     bool
	Err         string
}

// Store is the sole writer of the Snapshot. Views and façades read it via
// Snapshot or Subscribe and may only request refreshes.
type Store struct {
	log *zap.SugaredLogger
	api apiclient.Client

	mu      sync.Mutex
	snap    Snapshot
	subs    map[int]func(Snapshot)
	nextSub int
}

// NewStore creates a store holding an empty loading snapshot. Nothing is
// fetched until the first refresh.
func NewStore(log *zap.SugaredLogger, api apiclient.Client) *Store {
	return &Store{
		log:  log.Named("appstate"),
		api:  api,
		snap: Snapshot{Loading: true},
		subs: make(map[int]func(Snapshot)),
	}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Subscribe registers fn to receive every published snapshot and returns an
// unsubscribe func. A subscriber that unsubscribed may still observe one
// in-flight delivery.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// RefreshAll fetches all three collections concurrently. A collection whose
// fetch fails keeps its previous value while the others still update; the
// combined failure message lands in Snapshot.Err. Loading is true for the
// duration of the call and false on every exit path.
func (s *Store) RefreshAll(ctx context.Context) {
	s.update(func(snap *Snapshot) {
		snap.Loading = true
		snap.Err = ""
	})

	var (
		wg    sync.WaitGroup
		errMu sync.Mutex
		errs  error
	)
	collect := func(name string, err error) {
		s.log.Errorw("refresh failed", "collection", name, "error", err)
		errMu.Lock()
		errs = multierr.Append(errs, err)
		errMu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		if err := s.fetchTeamMembers(ctx); err != nil {
			collect("team_members", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.fetchTeams(ctx); err != nil {
			collect("teams", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.fetchFeedback(ctx); err != nil {
			collect("feedback", err)
		}
	}()
	wg.Wait()

	s.update(func(snap *Snapshot) {
		snap.Loading = false
		if errs != nil {
			snap.Err = errs.Error()
		}
	})
}

// RefreshTeamMembers re-fetches the members collection. Best effort: a
// failure is logged and swallowed, and Snapshot.Err is left alone, because
// targeted refreshes reconcile after a mutation that already reported its
// own outcome.
func (s *Store) RefreshTeamMembers(ctx context.Context) {
	if err := s.fetchTeamMembers(ctx); err != nil {
		s.log.Errorw("refresh team members failed", "error", err)
	}
}

// RefreshTeams re-fetches the teams collection. Best effort.
func (s *Store) RefreshTeams(ctx context.Context) {
	if err := s.fetchTeams(ctx); err != nil {
		s.log.Errorw("refresh teams failed", "error", err)
	}
}

// RefreshFeedback re-fetches the feedback collection. Best effort.
func (s *Store) RefreshFeedback(ctx context.Context) {
	if err := s.fetchFeedback(ctx); err != nil {
		s.log.Errorw("refresh feedback failed", "error", err)
	}
}

func (s *Store) fetchTeamMembers(ctx context.Context) error {
	members, err := s.api.ListTeamMembers(ctx)
	if err != nil {
		return err
	}
	s.update(func(snap *Snapshot) { snap.TeamMembers = members })
	return nil
}

func (s *Store) fetchTeams(ctx context.Context) error {
	teams, err := s.api.ListTeams(ctx)
	if err != nil {
		return err
	}
	s.update(func(snap *Snapshot) { snap.Teams = teams })
	return nil
}

func (s *Store) fetchFeedback(ctx context.Context) error {
	fbs, err := s.api.ListFeedback(ctx)
	if err != nil {
		return err
	}
	s.update(func(snap *Snapshot) { snap.Feedback = fbs })
	return nil
}

// update applies fn to a copy of the current snapshot, installs the copy as
// the new version and notifies subscribers. Each collection swap happens in
// one synchronous step, so readers never observe a torn collection.
func (s *Store) update(fn func(*Snapshot)) {
	s.mu.Lock()
	next := s.snap
	fn(&next)
	s.snap = next

	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(next)
	}
}
