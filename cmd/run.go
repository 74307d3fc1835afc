package cmd

import (
	"context"
	"fmt"

	"github.com/bazs0328/graduation/internal/app"
	"github.com/bazs0328/graduation/internal/backend"
	"github.com/bazs0328/graduation/internal/logging"
	"github.com/bazs0328/graduation/internal/screen"
	"github.com/bazs0328/graduation/internal/state"
	"github.com/bazs0328/graduation/internal/store"
	"github.com/spf13/cobra"
)

// snapshotKeep bounds how many session snapshots are retained.
const snapshotKeep = 10

// runApp opens the store, restores the session, builds the service client,
// and launches the TUI. A non-nil start builder opens a feature screen
// directly above the home screen.
func runApp(cmd *cobra.Command, start func(app.Options) screen.Screen) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// The TUI owns the terminal, so logs go to a file.
	logger, logFile, err := logging.NewFile()
	if err == nil {
		defer logFile.Close()
	}
	ctx = logging.IntoContext(ctx, logger)

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events := st.EventRepo()
	snapshots := st.SnapshotRepo()

	sess, err := restoreSession(ctx, snapshots)
	if err != nil {
		return err
	}

	client, err := newClient(ctx, events)
	if err != nil {
		return err
	}

	opts := app.Options{
		Ctx:     ctx,
		Client:  client,
		Events:  events,
		Session: sess,
	}
	if start != nil {
		opts.Start = start(opts)
	}
	runErr := app.Run(opts)

	// Persist whatever the run changed (active document, most commonly).
	if err := saveSession(ctx, snapshots, sess); err != nil {
		logger.Warn().Err(err).Msg("save session snapshot")
	}
	return runErr
}

// newClient builds the HTTP client from env config, logging every request
// outcome into the local event store.
func newClient(ctx context.Context, events store.EventRepo) (*backend.HTTPClient, error) {
	cfg, err := backend.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return backend.NewHTTPClient(cfg, backend.WithObserver(func(o backend.Outcome) {
		data := store.APIRequestEventData{
			Endpoint:  o.Endpoint,
			Status:    o.Status,
			LatencyMs: o.Latency.Milliseconds(),
			Success:   o.Err == nil,
		}
		if o.Err != nil {
			data.ErrorMessage = o.Err.Error()
		}
		_ = events.AppendAPIRequest(ctx, data)
	})), nil
}

// restoreSession loads the latest snapshot, or starts a fresh session when
// none exists.
func restoreSession(ctx context.Context, snapshots store.SnapshotRepo) (*state.Session, error) {
	snap, err := snapshots.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session snapshot: %w", err)
	}
	if snap == nil || snap.Data.SessionID == "" {
		sess := state.NewSession()
		if err := saveSession(ctx, snapshots, &sess); err != nil {
			return nil, err
		}
		return &sess, nil
	}
	sess := state.Session{
		ID:         snap.Data.SessionID,
		DocumentID: snap.Data.DocumentID,
	}.Normalized()
	return &sess, nil
}

func saveSession(ctx context.Context, snapshots store.SnapshotRepo, sess *state.Session) error {
	snap := &store.Snapshot{
		Data: store.ClientState{
			Version:    1,
			SessionID:  sess.ID,
			DocumentID: sess.DocumentID,
		},
	}
	if err := snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save session snapshot: %w", err)
	}
	return snapshots.Prune(ctx, snapshotKeep)
}

// cliSession builds the context, client, and session for one-shot commands.
// They share the session and event store with the TUI.
func cliSession(cmd *cobra.Command) (context.Context, *backend.HTTPClient, *state.Session, func(), error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.IntoContext(ctx, logging.NewConsole())

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("open store: %w", err)
	}

	sess, err := restoreSession(ctx, st.SnapshotRepo())
	if err != nil {
		st.Close()
		return nil, nil, nil, nil, err
	}

	client, err := newClient(ctx, st.EventRepo())
	if err != nil {
		st.Close()
		return nil, nil, nil, nil, err
	}

	cleanup := func() { st.Close() }
	return ctx, client, sess, cleanup, nil
}
