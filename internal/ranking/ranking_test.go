package ranking

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/albapepper/octofit-dashboard/internal/record"
)

func ids(entries []RankedEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Record.ID()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRankStableOnTies(t *testing.T) {
	records := []record.Record{
		{"id": "A", "points": json.Number("10")},
		{"id": "B", "points": json.Number("10")},
	}
	if got := ids(Rank(records, TotalPoints)); !equal(got, []string{"A", "B"}) {
		t.Fatalf("expected [A B], got %v", got)
	}
}

func TestRankMetricSwitch(t *testing.T) {
	records := []record.Record{
		{"id": "A", "total_points": json.Number("5"), "activity_count": json.Number("9")},
		{"id": "B", "total_points": json.Number("8"), "activity_count": json.Number("1")},
	}
	board := NewBoard()
	if got := ids(board.Apply(records)); !equal(got, []string{"B", "A"}) {
		t.Fatalf("total_points: expected [B A], got %v", got)
	}
	if _, err := board.SetMetric("activity_count"); err != nil {
		t.Fatalf("SetMetric returned error: %v", err)
	}
	if got := ids(board.Apply(records)); !equal(got, []string{"A", "B"}) {
		t.Fatalf("activity_count: expected [A B], got %v", got)
	}
	if records[0].ID() != "A" || records[1].ID() != "B" {
		t.Fatal("source slice was reordered")
	}
}

func TestRankNonFiniteReadsAsZero(t *testing.T) {
	records := []record.Record{
		{"id": "A", "total_points": json.Number("5")},
		{"id": "B", "total_points": "NaN"},
		{"id": "C", "total_points": json.Number("10")},
		{"id": "D", "total_points": "-Infinity"},
	}
	entries := Rank(records, TotalPoints)
	if got := ids(entries); !equal(got, []string{"C", "A", "B", "D"}) {
		t.Fatalf("expected [C A B D], got %v", got)
	}
	for _, e := range entries {
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			t.Fatalf("entry %s carries a non-finite value", e.Record.ID())
		}
	}
}

func TestRankIdempotent(t *testing.T) {
	records := []record.Record{
		{"id": "a", "total_calories": json.Number("100")},
		{"id": "b", "calories": json.Number("300")},
		{"id": "c"},
		{"id": "d", "total_calories": json.Number("300")},
	}
	first := Rank(records, TotalCalories)
	second := Rank(Records(first), TotalCalories)
	if !equal(ids(first), ids(second)) {
		t.Fatalf("ranking not idempotent: %v vs %v", ids(first), ids(second))
	}
	if want := []string{"b", "d", "a", "c"}; !equal(ids(first), want) {
		t.Fatalf("expected %v, got %v", want, ids(first))
	}
}

func TestTiers(t *testing.T) {
	records := make([]record.Record, 5)
	for i := range records {
		records[i] = record.Record{"id": string(rune('a' + i)), "total_points": json.Number("1")}
	}
	entries := Rank(records, TotalPoints)
	want := []Tier{Top1, Top2, Top3, Other, Other}
	for i, e := range entries {
		if e.Tier != want[i] {
			t.Errorf("index %d: tier %s, want %s", i, e.Tier, want[i])
		}
		if e.Rank != i+1 {
			t.Errorf("index %d: rank %d, want %d", i, e.Rank, i+1)
		}
	}
	if Top1.Medal() != "gold" || Top3.Medal() != "bronze" || Other.Medal() != "" {
		t.Fatal("unexpected medals")
	}
}

func TestTopPerformers(t *testing.T) {
	records := []record.Record{{"id": "a"}, {"id": "b"}, {"id": "c"}, {"id": "d"}}
	if got := TopPerformers(Rank(records, TotalPoints)); len(got) != 3 {
		t.Fatalf("expected 3 top performers, got %d", len(got))
	}
	if got := TopPerformers(Rank(records[:1], TotalPoints)); len(got) != 1 {
		t.Fatalf("expected 1 top performer, got %d", len(got))
	}
	if got := TopPerformers(nil); len(got) != 0 {
		t.Fatalf("expected none, got %d", len(got))
	}
}

func TestParseMetric(t *testing.T) {
	if m, err := ParseMetric(""); err != nil || m != TotalPoints {
		t.Fatalf("expected default metric, got %s %v", m, err)
	}
	if m, err := ParseMetric(" Total_Duration "); err != nil || m != TotalDuration {
		t.Fatalf("expected total_duration, got %s %v", m, err)
	}
	if _, err := ParseMetric("distance"); !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("expected ErrUnknownMetric, got %v", err)
	}
	board := NewBoard()
	if _, err := board.SetMetric("bogus"); err == nil {
		t.Fatal("expected error for unknown metric")
	}
	if board.Metric() != TotalPoints {
		t.Fatalf("failed SetMetric changed metric to %s", board.Metric())
	}
}
