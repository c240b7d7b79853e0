package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/albapepper/octofit-dashboard/internal/collection"
	"github.com/albapepper/octofit-dashboard/internal/ranking"
	"github.com/albapepper/octofit-dashboard/internal/record"
)

// ErrNoSuchRecord is returned when a selection index is outside the rows
// currently displayed.
var ErrNoSuchRecord = errors.New("no record at that position")

// Dashboard holds one isolated View per collection resource plus the
// leaderboard's metric selection. Views share no mutable state.
type Dashboard struct {
	ctx     context.Context
	baseURL string
	views   map[collection.Resource]*View
	board   *ranking.Board
	logger  *slog.Logger
}

// NewDashboard builds views for every resource. ctx bounds every fetch the
// dashboard starts; cancelling it cancels in-flight requests.
func NewDashboard(ctx context.Context, fetcher collection.Fetcher, baseURL string, logger *slog.Logger) *Dashboard {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dashboard{
		ctx:     ctx,
		baseURL: baseURL,
		views:   make(map[collection.Resource]*View, len(collection.All())),
		board:   ranking.NewBoard(),
		logger:  logger,
	}
	for _, r := range collection.All() {
		d.views[r] = New(fetcher, r, WithLogger(logger.With("view", string(r))))
	}
	return d
}

// View returns the view for r.
func (d *Dashboard) View(r collection.Resource) (*View, error) {
	v, ok := d.views[r]
	if !ok {
		return nil, fmt.Errorf("%w: %q", collection.ErrUnknownResource, r)
	}
	return v, nil
}

// Board returns the leaderboard metric selection.
func (d *Dashboard) Board() *ranking.Board {
	return d.board
}

// Endpoint returns the remote URL a view reads from.
func (d *Dashboard) Endpoint(r collection.Resource) string {
	return r.Endpoint(d.baseURL)
}

// ActivateAll starts every view. The returned channel closes once all
// initial attempts have settled.
func (d *Dashboard) ActivateAll() <-chan struct{} {
	pending := make([]<-chan struct{}, 0, len(d.views))
	for _, r := range collection.All() {
		pending = append(pending, d.views[r].Activate(d.ctx))
	}
	all := make(chan struct{})
	go func() {
		defer close(all)
		for _, ch := range pending {
			<-ch
		}
	}()
	return all
}

// Refresh reactivates a view, as when a user revisits the screen.
func (d *Dashboard) Refresh(r collection.Resource) (<-chan struct{}, error) {
	v, err := d.View(r)
	if err != nil {
		return nil, err
	}
	return v.Activate(d.ctx), nil
}

// Retry re-runs a failed view.
func (d *Dashboard) Retry(r collection.Resource) (<-chan struct{}, error) {
	v, err := d.View(r)
	if err != nil {
		return nil, err
	}
	return v.Retry(d.ctx)
}

// Select marks the record at index of the displayed rows for detail. For the
// leaderboard the index refers to ranked order.
func (d *Dashboard) Select(r collection.Resource, index int) (record.Record, error) {
	v, err := d.View(r)
	if err != nil {
		return nil, err
	}
	rows := d.rows(r, v.State())
	if index < 0 || index >= len(rows) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoSuchRecord, index, len(rows))
	}
	v.Selection.Select(rows[index])
	return rows[index], nil
}

// Clear drops a view's detail selection.
func (d *Dashboard) Clear(r collection.Resource) error {
	v, err := d.View(r)
	if err != nil {
		return err
	}
	v.Selection.Clear()
	return nil
}

// Close tears down every view.
func (d *Dashboard) Close() {
	for _, v := range d.views {
		v.Close()
	}
}

// rows returns the records in display order.
func (d *Dashboard) rows(r collection.Resource, s State) []record.Record {
	if r == collection.Leaderboard {
		return ranking.Records(d.board.Apply(s.Records))
	}
	return s.Records
}
