// Command octofit is the OctoFit terminal client.
//
// Usage:
//
//	octofit resources
//	octofit metrics
//	octofit show leaderboard --metric activity_count
//	octofit show users --detail 0
//	octofit show teams --json
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/octofit-dashboard/internal/collection"
	"github.com/albapepper/octofit-dashboard/internal/config"
	"github.com/albapepper/octofit-dashboard/internal/ranking"
	"github.com/albapepper/octofit-dashboard/internal/render"
	"github.com/albapepper/octofit-dashboard/internal/view"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

var errLoadFailed = errors.New("view failed to load")

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	var baseURL string
	root := &cobra.Command{
		Use:           "octofit",
		Short:         "OctoFit terminal dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if baseURL != "" {
				_ = os.Setenv("API_BASE_URL", baseURL)
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
		},
	}
	root.PersistentFlags().StringVar(&baseURL, "api-base-url", "", "OctoFit API origin (overrides API_BASE_URL and CODESPACE_NAME)")
	root.PersistentFlags().Bool("debug", false, "Log fetches to stderr")

	root.AddCommand(showCmd())
	root.AddCommand(resourcesCmd())
	root.AddCommand(metricsCmd())

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errLoadFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// show command
// --------------------------------------------------------------------------

func showCmd() *cobra.Command {
	var (
		metric  string
		detail  int
		asJSON  bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:       "show <resource>",
		Short:     "Load one collection and print it",
		Args:      cobra.ExactArgs(1),
		ValidArgs: resourceNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := collection.Parse(args[0])
			if err != nil {
				return err
			}
			m, err := ranking.ParseMetric(metric)
			if err != nil {
				return err
			}
			return runView(timeout, func(ctx context.Context, cfg *config.Config, client *collection.Client) error {
				v := view.New(client, res, view.WithLogger(logger.With("view", string(res))))
				defer v.Close()

				select {
				case <-v.Activate(ctx):
				case <-ctx.Done():
					return ctx.Err()
				}

				snap := view.Build(res, client.Endpoint(res), v.State(), m, &v.Selection)
				if detail >= 0 && snap.Phase == view.Ready {
					if detail >= len(snap.Rows) {
						return fmt.Errorf("%w: %d of %d", view.ErrNoSuchRecord, detail, len(snap.Rows))
					}
					v.Selection.Select(snap.Rows[detail].Record)
					snap = view.Build(res, client.Endpoint(res), v.State(), m, &v.Selection)
				}

				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					if err := enc.Encode(snap); err != nil {
						return err
					}
				} else if err := render.Snapshot(cmd.OutOrStdout(), snap); err != nil {
					return err
				}

				if snap.Phase == view.Failed {
					return errLoadFailed
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&metric, "metric", string(ranking.DefaultMetric), "Leaderboard sort metric")
	cmd.Flags().IntVar(&detail, "detail", -1, "Show the detail panel for the row at this index")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the snapshot as JSON")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Give up after this long (0 waits indefinitely)")
	return cmd
}

// --------------------------------------------------------------------------
// listing commands
// --------------------------------------------------------------------------

func resourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List collections and their endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			for _, r := range collection.All() {
				endpoint := r.Path()
				if err == nil {
					endpoint = r.Endpoint(cfg.APIBaseURL)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", r, endpoint)
			}
			return nil
		},
	}
}

func metricsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "List leaderboard sort metrics",
		Run: func(cmd *cobra.Command, args []string) {
			for _, m := range ranking.Metrics() {
				marker := ""
				if m == ranking.DefaultMetric {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", m, marker)
			}
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runView handles config loading, client construction, and context
// cancellation.
func runView(timeout time.Duration, fn func(ctx context.Context, cfg *config.Config, client *collection.Client) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if timeout > 0 {
		var tcancel context.CancelFunc
		ctx, tcancel = context.WithTimeout(ctx, timeout)
		defer tcancel()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client := collection.NewClient(cfg.APIBaseURL,
		collection.WithTimeout(cfg.FetchTimeout),
		collection.WithRequestsPerMinute(cfg.FetchRequestsPerMinute),
		collection.WithLogger(logger),
	)
	return fn(ctx, cfg, client)
}

func resourceNames() []string {
	out := make([]string, 0, len(collection.All()))
	for _, r := range collection.All() {
		out = append(out, string(r))
	}
	return out
}
