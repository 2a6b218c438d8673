// Package main runs the sync layer against a coaching API and logs the
// snapshot as it converges. It is the headless counterpart of the UI: the
// same store, façades and notification queue, wired without views.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"coaching-app/config"
	"coaching-app/internal/apiclient"
	"coaching-app/internal/appstate"
	"coaching-app/internal/facade"
	"coaching-app/internal/notify"
	"coaching-app/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	api := apiclient.New(cfg.Client.BaseURL, cfg.Client.RequestTimeout, log)
	store := appstate.NewStore(log, api)
	queue := notify.NewQueue()

	unsubscribe := store.Subscribe(func(snap appstate.Snapshot) {
		log.Infow("snapshot",
			"team_members", len(snap.TeamMembers),
			"teams", len(snap.Teams),
			"feedback", len(snap.Feedback),
			"loading", snap.Loading,
			"error", snap.Err,
		)
	})
	defer unsubscribe()

	queue.Subscribe(func(items []notify.Notification) {
		for _, n := range items {
			log.Infow("notification", "kind", n.Kind, "message", n.Message)
		}
	})

	// Façades are constructed up front the way views would hold them.
	_ = facade.NewMembers(log, api, store, queue)
	_ = facade.NewTeams(log, api, store, queue)
	_ = facade.NewFeedback(log, api, store, queue)
	_ = facade.NewAssignments(log, api, store, queue)

	store.RefreshAll(ctx)
	if snap := store.Snapshot(); snap.Err != "" {
		// One retry mirrors the UI's retry affordance on a failed initial load.
		log.Warnw("initial load failed, retrying", "error", snap.Err)
		store.RefreshAll(ctx)
		if snap := store.Snapshot(); snap.Err != "" {
			log.Errorw("initial load failed", "error", snap.Err)
			os.Exit(1)
		}
	}

	<-ctx.Done()
}
