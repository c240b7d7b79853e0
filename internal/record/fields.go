package record

import (
	"strings"
	"time"
)

// Field priority lists. The API has shipped several spellings for the same
// logical field over time. For numbers the first non-zero value wins; for
// text the first non-empty one.
var (
	ActivityUserKeys     = []string{"user_name", "user", "user_id"}
	ActivityTypeKeys     = []string{"activity_type", "type"}
	ActivityCaloriesKeys = []string{"calories_burned", "calories"}

	EntryNameKeys     = []string{"user_name", "name", "username"}
	EntryTeamKeys     = []string{"team_name", "team"}
	EntryPointsKeys   = []string{"total_points", "points"}
	EntryActivityKeys = []string{"activity_count", "activities"}
	EntryDurationKeys = []string{"total_duration", "duration"}
	EntryDistanceKeys = []string{"total_distance", "distance"}
	EntryCaloriesKeys = []string{"total_calories", "calories"}

	TeamMemberCountKeys = []string{"member_count"}
	TeamMemberListKeys  = []string{"members", "member_ids"}

	UserJoinedKeys = []string{"date_joined", "created_at"}

	WorkoutTypeKeys       = []string{"activity_type", "type"}
	WorkoutDifficultyKeys = []string{"difficulty_level", "difficulty"}
	WorkoutDurationKeys   = []string{"duration_minutes", "duration"}
)

// Placeholders shown for absent name-like fields.
const (
	PlaceholderNA       = "N/A"
	PlaceholderNoTeam   = "No Team"
	PlaceholderUsername = "No Username"
	PlaceholderFullName = "Name not provided"
)

// DateLayout is the display layout for timestamps.
const DateLayout = "2006-01-02"

type Activity struct {
	ID           string  `json:"id"`
	User         string  `json:"user"`
	ActivityType string  `json:"activity_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Calories     float64 `json:"calories"`
	Date         string  `json:"date"`
}

func AsActivity(r Record) Activity {
	return Activity{
		ID:           r.ID(),
		User:         r.Text(PlaceholderNA, ActivityUserKeys...),
		ActivityType: r.Text(PlaceholderNA, ActivityTypeKeys...),
		Duration:     r.Number("duration"),
		Distance:     r.Number("distance"),
		Calories:     r.Number(ActivityCaloriesKeys...),
		Date:         FormatDate(r.Text("", "date")),
	}
}

type LeaderboardEntry struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Team          string  `json:"team"`
	Points        float64 `json:"total_points"`
	ActivityCount float64 `json:"activity_count"`
	Duration      float64 `json:"total_duration"`
	Distance      float64 `json:"total_distance"`
	Calories      float64 `json:"total_calories"`
}

func AsLeaderboardEntry(r Record) LeaderboardEntry {
	return LeaderboardEntry{
		ID:            r.ID(),
		Name:          r.Text(PlaceholderNA, EntryNameKeys...),
		Team:          r.Text(PlaceholderNoTeam, EntryTeamKeys...),
		Points:        r.Number(EntryPointsKeys...),
		ActivityCount: r.Number(EntryActivityKeys...),
		Duration:      r.Number(EntryDurationKeys...),
		Distance:      r.Number(EntryDistanceKeys...),
		Calories:      r.Number(EntryCaloriesKeys...),
	}
}

type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Members     int    `json:"member_count"`
	Created     string `json:"created_at"`
}

func AsTeam(r Record) Team {
	return Team{
		ID:          r.ID(),
		Name:        r.Text(PlaceholderNA, "name"),
		Description: r.Text("", "description"),
		Members:     memberCount(r),
		Created:     FormatDate(r.Text("", "created_at")),
	}
}

// memberCount prefers the explicit count, then the length of whichever
// member list the server sent.
func memberCount(r Record) int {
	if n := r.Number(TeamMemberCountKeys...); n != 0 {
		return int(n)
	}
	for _, k := range TeamMemberListKeys {
		if list, ok := r[k].([]any); ok && len(list) > 0 {
			return len(list)
		}
	}
	return 0
}

type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	FitnessLevel string `json:"fitness_level"`
	Badge        string `json:"fitness_badge"`
	Joined       string `json:"joined"`
}

func AsUser(r Record) User {
	level := r.Text("", "fitness_level")
	return User{
		ID:           r.ID(),
		Username:     r.Text(PlaceholderUsername, "username"),
		FullName:     fullName(r),
		Email:        r.Text(PlaceholderNA, "email"),
		FitnessLevel: level,
		Badge:        FitnessBadge(level),
		Joined:       FormatDate(r.Text("", UserJoinedKeys...)),
	}
}

func fullName(r Record) string {
	first := r.Text("", "first_name")
	last := r.Text("", "last_name")
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	case last != "":
		return last
	}
	return r.Text(PlaceholderFullName, "name")
}

type Workout struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	ActivityType      string  `json:"activity_type"`
	Difficulty        string  `json:"difficulty"`
	Badge             string  `json:"difficulty_badge"`
	Duration          float64 `json:"duration_minutes"`
	EstimatedCalories float64 `json:"estimated_calories"`
}

func AsWorkout(r Record) Workout {
	difficulty := r.Text("", WorkoutDifficultyKeys...)
	return Workout{
		ID:                r.ID(),
		Name:              r.Text(PlaceholderNA, "name"),
		Description:       r.Text("", "description"),
		ActivityType:      r.Text(PlaceholderNA, WorkoutTypeKeys...),
		Difficulty:        difficulty,
		Badge:             DifficultyBadge(difficulty),
		Duration:          r.Number(WorkoutDurationKeys...),
		EstimatedCalories: r.Number("estimated_calories"),
	}
}

// Badge tones. Unknown levels map to BadgeSecondary.
const (
	BadgeInfo      = "info"
	BadgePrimary   = "primary"
	BadgeSuccess   = "success"
	BadgeWarning   = "warning"
	BadgeDanger    = "danger"
	BadgeDark      = "dark"
	BadgeSecondary = "secondary"
)

var fitnessBadges = map[string]string{
	"beginner":     BadgeInfo,
	"intermediate": BadgePrimary,
	"advanced":     BadgeSuccess,
	"expert":       BadgeDanger,
}

var difficultyBadges = map[string]string{
	"easy":         BadgeSuccess,
	"beginner":     BadgeSuccess,
	"intermediate": BadgeWarning,
	"moderate":     BadgeWarning,
	"advanced":     BadgeDanger,
	"hard":         BadgeDanger,
	"expert":       BadgeDark,
}

// FitnessBadge classifies a user's fitness level, case-insensitively.
func FitnessBadge(level string) string {
	if b, ok := fitnessBadges[strings.ToLower(strings.TrimSpace(level))]; ok {
		return b
	}
	return BadgeSecondary
}

// DifficultyBadge classifies a workout difficulty, case-insensitively.
func DifficultyBadge(level string) string {
	if b, ok := difficultyBadges[strings.ToLower(strings.TrimSpace(level))]; ok {
		return b
	}
	return BadgeSecondary
}

// FormatDate renders an API timestamp as a calendar date. Values that do not
// parse are returned unchanged.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05", DateLayout} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout)
		}
	}
	return raw
}
