package view

import (
	"github.com/albapepper/octofit-dashboard/internal/collection"
	"github.com/albapepper/octofit-dashboard/internal/ranking"
	"github.com/albapepper/octofit-dashboard/internal/record"
)

// Row is one displayed record with its presentation fields resolved.
type Row struct {
	Index   int           `json:"index"`
	Rank    int           `json:"rank,omitempty"`
	Tier    ranking.Tier  `json:"tier,omitempty"`
	Medal   string        `json:"medal,omitempty"`
	Display any           `json:"display"`
	Record  record.Record `json:"record"`
}

// Snapshot is everything a renderer needs to draw one view.
type Snapshot struct {
	Resource        collection.Resource `json:"resource"`
	Endpoint        string              `json:"endpoint"`
	Phase           Phase               `json:"phase"`
	Message         string              `json:"message,omitempty"`
	Count           int                 `json:"count"`
	Rows            []Row               `json:"rows"`
	Metric          ranking.Metric      `json:"metric,omitempty"`
	TopPerformers   []Row               `json:"top_performers,omitempty"`
	Selection       *Row                `json:"selection,omitempty"`
	DetailRequested bool                `json:"detail_requested"`
}

// Snapshot renders the current state of view r.
func (d *Dashboard) Snapshot(r collection.Resource) (Snapshot, error) {
	v, err := d.View(r)
	if err != nil {
		return Snapshot{}, err
	}
	metric := ranking.Metric("")
	if r == collection.Leaderboard {
		metric = d.board.Metric()
	}
	return Build(r, d.Endpoint(r), v.State(), metric, &v.Selection), nil
}

// Build assembles a Snapshot. metric is only used for the leaderboard; sel
// may be nil.
func Build(r collection.Resource, endpoint string, s State, metric ranking.Metric, sel *Selection) Snapshot {
	snap := Snapshot{
		Resource: r,
		Endpoint: endpoint,
		Phase:    s.Phase,
		Message:  s.Message,
		Count:    len(s.Records),
		Rows:     []Row{},
	}

	if r == collection.Leaderboard {
		if metric == "" {
			metric = ranking.DefaultMetric
		}
		snap.Metric = metric
		ranked := ranking.Rank(s.Records, metric)
		for i, e := range ranked {
			snap.Rows = append(snap.Rows, rankedRow(i, e))
		}
		for i, e := range ranking.TopPerformers(ranked) {
			snap.TopPerformers = append(snap.TopPerformers, rankedRow(i, e))
		}
	} else {
		for i, rec := range s.Records {
			snap.Rows = append(snap.Rows, Row{Index: i, Display: Display(r, rec), Record: rec})
		}
	}

	if sel != nil {
		if rec, ok := sel.Current(); ok {
			snap.Selection = &Row{Index: -1, Display: Display(r, rec), Record: rec}
		}
		snap.DetailRequested = sel.DetailRequested()
	}
	return snap
}

func rankedRow(i int, e ranking.RankedEntry) Row {
	return Row{
		Index:   i,
		Rank:    e.Rank,
		Tier:    e.Tier,
		Medal:   e.Tier.Medal(),
		Display: record.AsLeaderboardEntry(e.Record),
		Record:  e.Record,
	}
}

// Display resolves the presentation fields of rec for resource r.
func Display(r collection.Resource, rec record.Record) any {
	switch r {
	case collection.Activities:
		return record.AsActivity(rec)
	case collection.Leaderboard:
		return record.AsLeaderboardEntry(rec)
	case collection.Teams:
		return record.AsTeam(rec)
	case collection.Users:
		return record.AsUser(rec)
	case collection.Workouts:
		return record.AsWorkout(rec)
	default:
		return rec
	}
}
