// Package ranking orders leaderboard records by a selectable metric.
//
// Sorting is stable and descending with no secondary key: entries with equal
// values keep the relative order the server sent them in.
package ranking

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/albapepper/octofit-dashboard/internal/record"
)

// Metric is a leaderboard sort key.
type Metric string

const (
	TotalPoints   Metric = "total_points"
	ActivityCount Metric = "activity_count"
	TotalDuration Metric = "total_duration"
	TotalCalories Metric = "total_calories"

	DefaultMetric = TotalPoints
)

// ErrUnknownMetric is returned by ParseMetric for keys outside the set.
var ErrUnknownMetric = errors.New("unknown ranking metric")

// Metrics lists the selectable metrics.
func Metrics() []Metric {
	return []Metric{TotalPoints, ActivityCount, TotalDuration, TotalCalories}
}

// ParseMetric resolves a metric key; the empty string selects DefaultMetric.
func ParseMetric(key string) (Metric, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return DefaultMetric, nil
	}
	for _, m := range Metrics() {
		if Metric(key) == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMetric, key)
}

// Keys returns the record fields consulted for the metric, preferred first.
func (m Metric) Keys() []string {
	switch m {
	case ActivityCount:
		return record.EntryActivityKeys
	case TotalDuration:
		return record.EntryDurationKeys
	case TotalCalories:
		return record.EntryCaloriesKeys
	default:
		return record.EntryPointsKeys
	}
}

// Value resolves the metric on r; absent fields read as 0.
func (m Metric) Value(r record.Record) float64 {
	return r.Number(m.Keys()...)
}

// Tier classifies a ranked position for presentation.
type Tier string

const (
	Top1  Tier = "top1"
	Top2  Tier = "top2"
	Top3  Tier = "top3"
	Other Tier = "other"
)

// TierAt maps a zero-based position to its tier.
func TierAt(index int) Tier {
	switch index {
	case 0:
		return Top1
	case 1:
		return Top2
	case 2:
		return Top3
	default:
		return Other
	}
}

// Medal names the badge drawn for podium tiers, "" otherwise.
func (t Tier) Medal() string {
	switch t {
	case Top1:
		return "gold"
	case Top2:
		return "silver"
	case Top3:
		return "bronze"
	default:
		return ""
	}
}

// RankedEntry is a record with its computed position.
type RankedEntry struct {
	Record record.Record `json:"record"`
	Rank   int           `json:"rank"`
	Tier   Tier          `json:"tier"`
	Value  float64       `json:"value"`
}

// Rank returns records ordered by metric, highest first. The input slice and
// its records are left untouched.
func Rank(records []record.Record, metric Metric) []RankedEntry {
	entries := make([]RankedEntry, len(records))
	for i, r := range records {
		entries[i] = RankedEntry{Record: r, Value: metric.Value(r)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	for idx := range entries {
		entries[idx].Rank = idx + 1
		entries[idx].Tier = TierAt(idx)
	}
	return entries
}

// Records strips ranking annotations, preserving order.
func Records(entries []RankedEntry) []record.Record {
	out := make([]record.Record, len(entries))
	for i, e := range entries {
		out[i] = e.Record
	}
	return out
}

// TopPerformers returns up to the first three entries.
func TopPerformers(entries []RankedEntry) []RankedEntry {
	n := min(len(entries), 3)
	return append([]RankedEntry(nil), entries[:n]...)
}

// Board holds the currently selected metric for one leaderboard view.
type Board struct {
	mu     sync.RWMutex
	metric Metric
}

// NewBoard returns a board sorted by DefaultMetric.
func NewBoard() *Board {
	return &Board{metric: DefaultMetric}
}

// Metric returns the selected metric.
func (b *Board) Metric() Metric {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.metric
}

// SetMetric selects the metric named by key.
func (b *Board) SetMetric(key string) (Metric, error) {
	m, err := ParseMetric(key)
	if err != nil {
		return "", err
	}
	b.mu.Lock()
	b.metric = m
	b.mu.Unlock()
	return m, nil
}

// Apply ranks records by the selected metric.
func (b *Board) Apply(records []record.Record) []RankedEntry {
	return Rank(records, b.Metric())
}
