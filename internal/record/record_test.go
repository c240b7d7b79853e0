package record

import (
	"encoding/json"
	"math"
	"testing"
)

func TestExtractValue(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"nil", nil, 0, false},
		{"json number", json.Number("42.5"), 42.5, true},
		{"float", float64(7), 7, true},
		{"int", 3, 3, true},
		{"numeric string", " 12 ", 12, true},
		{"text", "abc", 0, false},
		{"nan string", "NaN", 0, false},
		{"inf string", "Infinity", 0, false},
		{"negative inf string", "-Inf", 0, false},
		{"nan float", math.NaN(), 0, false},
		{"inf float", math.Inf(1), 0, false},
		{"bool", true, 0, false},
		{"nested total", map[string]any{"total": json.Number("15"), "goals": 12}, 15, true},
		{"nested unknown", map[string]any{"goals": 12}, 0, false},
	}
	for _, tc := range cases {
		got, ok := ExtractValue(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("%s: ExtractValue(%v) = (%v, %v), want (%v, %v)", tc.name, tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNumberPriority(t *testing.T) {
	r := Record{"points": json.Number("9")}
	if got := r.Number(EntryPointsKeys...); got != 9 {
		t.Fatalf("expected legacy points fallback 9, got %v", got)
	}
	r["total_points"] = json.Number("20")
	if got := r.Number(EntryPointsKeys...); got != 20 {
		t.Fatalf("expected total_points to win, got %v", got)
	}
	if got := (Record{"total_points": json.Number("0"), "points": json.Number("7")}).Number(EntryPointsKeys...); got != 7 {
		t.Fatalf("expected zero total_points to fall through to points, got %v", got)
	}
	if got := (Record{"total_points": "NaN", "points": json.Number("4")}).Number(EntryPointsKeys...); got != 4 {
		t.Fatalf("expected NaN to be skipped, got %v", got)
	}
	if got := (Record{}).Number(EntryPointsKeys...); got != 0 {
		t.Fatalf("expected missing metric to read as 0, got %v", got)
	}
}

func TestTextPlaceholder(t *testing.T) {
	r := Record{"user_name": "", "name": "  "}
	if got := r.Text(PlaceholderNA, EntryNameKeys...); got != PlaceholderNA {
		t.Fatalf("expected placeholder, got %q", got)
	}
	r["username"] = "octocat"
	if got := r.Text(PlaceholderNA, EntryNameKeys...); got != "octocat" {
		t.Fatalf("expected username fallback, got %q", got)
	}
}

func TestCloneDoesNotShareMap(t *testing.T) {
	r := Record{"id": "a"}
	c := r.Clone()
	c["id"] = "b"
	if r["id"] != "a" {
		t.Fatal("clone mutated the source record")
	}
}

func TestAsLeaderboardEntryDefaults(t *testing.T) {
	e := AsLeaderboardEntry(Record{"id": json.Number("1"), "name": "Ada", "points": json.Number("30")})
	if e.ID != "1" || e.Name != "Ada" || e.Team != PlaceholderNoTeam || e.Points != 30 || e.Calories != 0 {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestAsTeamMemberFallbacks(t *testing.T) {
	if got := AsTeam(Record{"member_count": json.Number("4")}).Members; got != 4 {
		t.Fatalf("expected explicit count, got %d", got)
	}
	if got := AsTeam(Record{"members": []any{"a", "b"}}).Members; got != 2 {
		t.Fatalf("expected members length, got %d", got)
	}
	if got := AsTeam(Record{"member_ids": []any{"a", "b", "c"}}).Members; got != 3 {
		t.Fatalf("expected member_ids length, got %d", got)
	}
	if got := AsTeam(Record{}).Members; got != 0 {
		t.Fatalf("expected zero, got %d", got)
	}
}

func TestAsUserNames(t *testing.T) {
	cases := []struct {
		rec  Record
		want string
	}{
		{Record{"first_name": "Ada", "last_name": "Lovelace"}, "Ada Lovelace"},
		{Record{"first_name": "Ada"}, "Ada"},
		{Record{"last_name": "Lovelace"}, "Lovelace"},
		{Record{"name": "Countess"}, "Countess"},
		{Record{}, PlaceholderFullName},
	}
	for _, tc := range cases {
		if got := AsUser(tc.rec).FullName; got != tc.want {
			t.Errorf("full name for %v = %q, want %q", tc.rec, got, tc.want)
		}
	}
	u := AsUser(Record{"fitness_level": "Expert", "date_joined": "2024-03-01T10:00:00Z"})
	if u.Username != PlaceholderUsername || u.Email != PlaceholderNA {
		t.Fatalf("expected placeholders, got %+v", u)
	}
	if u.Badge != BadgeDanger || u.Joined != "2024-03-01" {
		t.Fatalf("unexpected badge/joined %+v", u)
	}
}

func TestBadges(t *testing.T) {
	if DifficultyBadge("MODERATE") != BadgeWarning {
		t.Fatal("difficulty badge should be case-insensitive")
	}
	if DifficultyBadge("impossible") != BadgeSecondary || FitnessBadge("") != BadgeSecondary {
		t.Fatal("unknown levels should map to secondary")
	}
}

func TestFormatDate(t *testing.T) {
	cases := map[string]string{
		"":                           "",
		"2025-01-02T03:04:05Z":       "2025-01-02",
		"2025-01-02T03:04:05.123456": "2025-01-02",
		"2025-01-02":                 "2025-01-02",
		"yesterday":                  "yesterday",
	}
	for in, want := range cases {
		if got := FormatDate(in); got != want {
			t.Errorf("FormatDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAsActivityAndWorkout(t *testing.T) {
	a := AsActivity(Record{"user": "u-1", "type": "run", "duration": json.Number("30"), "calories_burned": json.Number("250")})
	if a.User != "u-1" || a.ActivityType != "run" || a.Duration != 30 || a.Calories != 250 {
		t.Fatalf("unexpected activity %+v", a)
	}
	w := AsWorkout(Record{"name": "HIIT", "difficulty": "hard", "duration": json.Number("20")})
	if w.Badge != BadgeDanger || w.Duration != 20 || w.ActivityType != PlaceholderNA {
		t.Fatalf("unexpected workout %+v", w)
	}
}
