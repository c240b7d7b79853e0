package render

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/albapepper/octofit-dashboard/internal/collection"
	"github.com/albapepper/octofit-dashboard/internal/record"
	"github.com/albapepper/octofit-dashboard/internal/view"
)

func TestSnapshotLeaderboard(t *testing.T) {
	state := view.State{Phase: view.Ready, Records: []record.Record{
		{"id": "A", "user_name": "ada", "total_points": json.Number("5")},
		{"id": "B", "user_name": "bob", "total_points": json.Number("8"), "team_name": "blue"},
	}}
	snap := view.Build(collection.Leaderboard, "http://api.test/api/leaderboard/", state, "", nil)

	var out strings.Builder
	if err := Snapshot(&out, snap); err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Leaderboard", "Total Competitors: 2", "1 (gold)", "2 (silver)", "No Team", "8 pts"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Index(text, "bob") > strings.Index(text, "ada") {
		t.Errorf("expected bob ranked above ada:\n%s", text)
	}
}

func TestSnapshotFailedAndEmpty(t *testing.T) {
	failed := view.Build(collection.Teams, "http://api.test/api/teams/", view.State{Phase: view.Failed, Message: "HTTP error! status: 500"}, "", nil)
	var out strings.Builder
	if err := Snapshot(&out, failed); err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Error Loading Data") || !strings.Contains(out.String(), "status: 500") {
		t.Fatalf("unexpected failed output:\n%s", out.String())
	}

	empty := view.Build(collection.Leaderboard, "http://api.test/api/leaderboard/", view.State{Phase: view.Ready, Records: []record.Record{}}, "", nil)
	out.Reset()
	if err := Snapshot(&out, empty); err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if !strings.Contains(out.String(), "Be the first to compete!") {
		t.Fatalf("unexpected empty output:\n%s", out.String())
	}
}

func TestSnapshotDetail(t *testing.T) {
	var sel view.Selection
	rec := record.Record{"id": "w1", "name": "HIIT", "difficulty": "hard"}
	sel.Select(rec)
	snap := view.Build(collection.Workouts, "http://api.test/api/workouts/", view.State{Phase: view.Ready, Records: []record.Record{rec}}, "", &sel)

	var out strings.Builder
	if err := Snapshot(&out, snap); err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Workout Details") || !strings.Contains(text, "hard [danger]") {
		t.Fatalf("unexpected detail output:\n%s", text)
	}
}
