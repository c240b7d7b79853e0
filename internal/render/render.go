// Package render draws view snapshots as terminal tables.
package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/albapepper/octofit-dashboard/internal/collection"
	"github.com/albapepper/octofit-dashboard/internal/ranking"
	"github.com/albapepper/octofit-dashboard/internal/record"
	"github.com/albapepper/octofit-dashboard/internal/view"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#666", Dark: "#999"})
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#555", Dark: "#555"})

	tierStyles = map[ranking.Tier]lipgloss.Style{
		ranking.Top1: cellStyle.Bold(true).Foreground(lipgloss.Color("#D4AF37")),
		ranking.Top2: cellStyle.Bold(true).Foreground(lipgloss.Color("#C0C0C0")),
		ranking.Top3: cellStyle.Bold(true).Foreground(lipgloss.Color("#CD7F32")),
	}
)

// emptyMessages mirror what each screen shows for an empty collection.
var emptyMessages = map[collection.Resource]string{
	collection.Activities:  "No activities found.",
	collection.Leaderboard: "No leaderboard data found. Be the first to compete!",
	collection.Teams:       "No teams found.",
	collection.Users:       "No users found.",
	collection.Workouts:    "No workouts found.",
}

// Snapshot writes the view: a loading line, the failure message, or a table
// of rows followed by the detail panel when one is requested.
func Snapshot(w io.Writer, snap view.Snapshot) error {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title(snap.Resource)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("API Endpoint: " + snap.Endpoint))
	b.WriteString("\n\n")

	switch snap.Phase {
	case view.Loading:
		b.WriteString(fmt.Sprintf("Loading %s...\n", snap.Resource))
	case view.Failed:
		b.WriteString(errorStyle.Render("Error Loading Data"))
		b.WriteString("\n")
		b.WriteString(snap.Message)
		b.WriteString("\n")
	case view.Ready:
		if snap.Count == 0 {
			b.WriteString(emptyMessages[snap.Resource])
			b.WriteString("\n")
			break
		}
		b.WriteString(mutedStyle.Render(summary(snap)))
		b.WriteString("\n")
		b.WriteString(Table(snap))
		b.WriteString("\n")
		if snap.DetailRequested && snap.Selection != nil {
			b.WriteString("\n")
			b.WriteString(Detail(snap.Resource, *snap.Selection))
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Table renders the rows of a ready snapshot.
func Table(snap view.Snapshot) string {
	headers, cells := columns(snap)
	tiers := make([]ranking.Tier, len(snap.Rows))
	for i, r := range snap.Rows {
		tiers[i] = r.Tier
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 0 && row >= 0 && row < len(tiers) {
				if s, ok := tierStyles[tiers[row]]; ok {
					return s
				}
			}
			return cellStyle
		})
	return t.Render()
}

// Detail renders every field of the selected record, sorted by name.
func Detail(r collection.Resource, row view.Row) string {
	keys := make([]string, 0, len(row.Record))
	for k := range row.Record {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.TrimSuffix(title(r), "s") + " Details"))
	b.WriteString("\n")
	for _, k := range keys {
		v, _ := row.Record.Lookup(k)
		b.WriteString(fmt.Sprintf("  %-20s %v\n", k+":", v))
	}
	return b.String()
}

func title(r collection.Resource) string {
	s := string(r)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func summary(snap view.Snapshot) string {
	if snap.Resource == collection.Leaderboard {
		return fmt.Sprintf("Total Competitors: %d  (sorted by %s)", snap.Count, snap.Metric)
	}
	return fmt.Sprintf("Total %s: %d", title(snap.Resource), snap.Count)
}

func columns(snap view.Snapshot) ([]string, [][]string) {
	var headers []string
	cells := make([][]string, 0, len(snap.Rows))

	switch snap.Resource {
	case collection.Leaderboard:
		headers = []string{"Rank", "User", "Team", "Total Points", "Activities", "Duration", "Distance", "Calories"}
		for _, row := range snap.Rows {
			e := record.AsLeaderboardEntry(row.Record)
			cells = append(cells, []string{
				rankLabel(row), e.Name, e.Team,
				num(e.Points) + " pts", num(e.ActivityCount),
				num(e.Duration) + " min", num(e.Distance) + " km", num(e.Calories) + " kcal",
			})
		}
	case collection.Activities:
		headers = []string{"#", "User", "Type", "Duration", "Distance", "Calories", "Date"}
		for _, row := range snap.Rows {
			a := record.AsActivity(row.Record)
			cells = append(cells, []string{
				strconv.Itoa(row.Index), a.User, a.ActivityType,
				num(a.Duration) + " min", num(a.Distance) + " km", num(a.Calories) + " kcal", a.Date,
			})
		}
	case collection.Teams:
		headers = []string{"#", "Name", "Description", "Members", "Created"}
		for _, row := range snap.Rows {
			t := record.AsTeam(row.Record)
			cells = append(cells, []string{
				strconv.Itoa(row.Index), t.Name, t.Description, strconv.Itoa(t.Members), t.Created,
			})
		}
	case collection.Users:
		headers = []string{"#", "Username", "Name", "Email", "Fitness Level", "Joined"}
		for _, row := range snap.Rows {
			u := record.AsUser(row.Record)
			cells = append(cells, []string{
				strconv.Itoa(row.Index), "@" + u.Username, u.FullName, u.Email,
				badge(u.FitnessLevel, u.Badge), u.Joined,
			})
		}
	case collection.Workouts:
		headers = []string{"#", "Name", "Type", "Difficulty", "Duration", "Est. Calories"}
		for _, row := range snap.Rows {
			wo := record.AsWorkout(row.Record)
			cells = append(cells, []string{
				strconv.Itoa(row.Index), wo.Name, wo.ActivityType,
				badge(wo.Difficulty, wo.Badge), num(wo.Duration) + " min", num(wo.EstimatedCalories) + " kcal",
			})
		}
	}
	return headers, cells
}

func rankLabel(row view.Row) string {
	if medal := row.Tier.Medal(); medal != "" {
		return fmt.Sprintf("%d (%s)", row.Rank, medal)
	}
	return strconv.Itoa(row.Rank)
}

func badge(level, tone string) string {
	if level == "" {
		return record.PlaceholderNA
	}
	return fmt.Sprintf("%s [%s]", level, tone)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
