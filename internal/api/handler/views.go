package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/octofit-dashboard/internal/api/respond"
	"github.com/albapepper/octofit-dashboard/internal/collection"
	"github.com/albapepper/octofit-dashboard/internal/config"
	"github.com/albapepper/octofit-dashboard/internal/view"
)

type resourceInfo struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Endpoint string `json:"endpoint"`
}

// ListResources returns every collection the dashboard can show.
// @Summary List resources
// @Description Returns the collection resources with their remote endpoints.
// @Tags views
// @Produce json
// @Success 200 {array} resourceInfo
// @Router /resources [get]
func (h *Handler) ListResources(w http.ResponseWriter, r *http.Request) {
	out := make([]resourceInfo, 0, len(collection.All()))
	for _, res := range collection.All() {
		out = append(out, resourceInfo{Name: string(res), Path: res.Path(), Endpoint: h.dash.Endpoint(res)})
	}
	respond.WriteJSONObject(w, http.StatusOK, out)
}

// GetView returns the current state of one view.
// @Summary Get view state
// @Description Returns phase, message, rows (ranked for the leaderboard) and the detail selection. Supports If-None-Match.
// @Tags views
// @Produce json
// @Param resource path string true "Collection" Enums(activities, leaderboard, teams, users, workouts)
// @Success 200 {object} view.Snapshot
// @Success 304
// @Failure 404 {object} respond.ErrorResponse
// @Router /views/{resource} [get]
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	snap, err := h.dash.Snapshot(res)
	if err != nil {
		writeViewError(w, err)
		return
	}
	respond.WriteConditional(w, r, snap)
}

// RefreshView reactivates a view, as when a user revisits it.
// @Summary Refresh view
// @Description Re-enters Loading and issues a new fetch. With wait=true the response is sent once the fetch settles, or with 202 after WAIT_TIMEOUT.
// @Tags views
// @Produce json
// @Param resource path string true "Collection" Enums(activities, leaderboard, teams, users, workouts)
// @Param wait query bool false "Wait for the fetch to settle"
// @Success 200 {object} view.Snapshot
// @Success 202 {object} view.Snapshot
// @Failure 404 {object} respond.ErrorResponse
// @Router /views/{resource}/refresh [post]
func (h *Handler) RefreshView(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	done, err := h.dash.Refresh(res)
	if err != nil {
		writeViewError(w, err)
		return
	}
	h.afterActivation(w, r, res, done)
}

// RetryView re-runs a failed view.
// @Summary Retry view
// @Description Only valid while the view is failed. Restarts the fetch from scratch.
// @Tags views
// @Produce json
// @Param resource path string true "Collection" Enums(activities, leaderboard, teams, users, workouts)
// @Param wait query bool false "Wait for the fetch to settle"
// @Success 200 {object} view.Snapshot
// @Success 202 {object} view.Snapshot
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /views/{resource}/retry [post]
func (h *Handler) RetryView(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	done, err := h.dash.Retry(res)
	if err != nil {
		writeViewError(w, err)
		return
	}
	h.afterActivation(w, r, res, done)
}

// SelectRecord opens the detail view for the row at index.
// @Summary Select record
// @Description Selects the record at the given display index, replacing any previous selection.
// @Tags selection
// @Produce json
// @Param resource path string true "Collection" Enums(activities, leaderboard, teams, users, workouts)
// @Param index path int true "Row index in display order"
// @Success 200 {object} view.Snapshot
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /views/{resource}/selection/{index} [put]
func (h *Handler) SelectRecord(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_INDEX", "index must be an integer")
		return
	}
	if _, err := h.dash.Select(res, index); err != nil {
		writeViewError(w, err)
		return
	}
	h.writeSnapshot(w, res, http.StatusOK)
}

// ClearSelection closes the detail view.
// @Summary Clear selection
// @Tags selection
// @Produce json
// @Param resource path string true "Collection" Enums(activities, leaderboard, teams, users, workouts)
// @Success 200 {object} view.Snapshot
// @Failure 404 {object} respond.ErrorResponse
// @Router /views/{resource}/selection [delete]
func (h *Handler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	res, ok := h.resource(w, r)
	if !ok {
		return
	}
	if err := h.dash.Clear(res); err != nil {
		writeViewError(w, err)
		return
	}
	h.writeSnapshot(w, res, http.StatusOK)
}

// SetMetric changes the leaderboard sort metric.
// @Summary Set leaderboard metric
// @Tags leaderboard
// @Produce json
// @Param key query string true "Metric" Enums(total_points, activity_count, total_duration, total_calories)
// @Success 200 {object} view.Snapshot
// @Failure 400 {object} respond.ErrorResponse
// @Router /leaderboard/metric [put]
func (h *Handler) SetMetric(w http.ResponseWriter, r *http.Request) {
	if _, err := h.dash.Board().SetMetric(r.URL.Query().Get("key")); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "INVALID_METRIC", "Unknown metric", err.Error())
		return
	}
	h.writeSnapshot(w, collection.Leaderboard, http.StatusOK)
}

// GetTopPerformers returns the podium of the leaderboard.
// @Summary Top performers
// @Description Returns up to three leading entries under the selected metric.
// @Tags leaderboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /leaderboard/top [get]
func (h *Handler) GetTopPerformers(w http.ResponseWriter, r *http.Request) {
	snap, err := h.dash.Snapshot(collection.Leaderboard)
	if err != nil {
		writeViewError(w, err)
		return
	}
	top := snap.TopPerformers
	if top == nil {
		top = []view.Row{}
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"phase":          snap.Phase,
		"metric":         snap.Metric,
		"top_performers": top,
	})
}

// --------------------------------------------------------------------------
// helpers
// --------------------------------------------------------------------------

func (h *Handler) resource(w http.ResponseWriter, r *http.Request) (collection.Resource, bool) {
	res, err := collection.Parse(chi.URLParam(r, "resource"))
	if err != nil {
		respond.WriteErrorDetail(w, http.StatusNotFound, "UNKNOWN_RESOURCE", "Unknown collection resource", err.Error())
		return "", false
	}
	return res, true
}

// afterActivation answers 202 right away, or with wait=true blocks until the
// fetch settles. The wait is capped by WaitTimeout; past it the request gets
// 202 with the still-loading snapshot.
func (h *Handler) afterActivation(w http.ResponseWriter, r *http.Request, res collection.Resource, done <-chan struct{}) {
	if wait, _ := strconv.ParseBool(r.URL.Query().Get("wait")); wait {
		ctx, cancel := context.WithTimeout(r.Context(), h.waitTimeout())
		defer cancel()
		select {
		case <-done:
			h.writeSnapshot(w, res, http.StatusOK)
		case <-ctx.Done():
			if r.Context().Err() != nil {
				return
			}
			h.writeSnapshot(w, res, http.StatusAccepted)
		}
		return
	}
	h.writeSnapshot(w, res, http.StatusAccepted)
}

func (h *Handler) waitTimeout() time.Duration {
	if h.cfg != nil && h.cfg.WaitTimeout > 0 {
		return h.cfg.WaitTimeout
	}
	return config.DefaultWaitTimeout
}

func (h *Handler) writeSnapshot(w http.ResponseWriter, res collection.Resource, status int) {
	snap, err := h.dash.Snapshot(res)
	if err != nil {
		writeViewError(w, err)
		return
	}
	respond.WriteJSONObject(w, status, snap)
}

func writeViewError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, collection.ErrUnknownResource):
		respond.WriteErrorDetail(w, http.StatusNotFound, "UNKNOWN_RESOURCE", "Unknown collection resource", err.Error())
	case errors.Is(err, view.ErrNotFailed):
		respond.WriteError(w, http.StatusConflict, "NOT_FAILED", "Retry is only available after a failed load")
	case errors.Is(err, view.ErrNoSuchRecord):
		respond.WriteErrorDetail(w, http.StatusNotFound, "NO_SUCH_RECORD", "No record at that position", err.Error())
	case errors.Is(err, view.ErrClosed):
		respond.WriteError(w, http.StatusServiceUnavailable, "SHUTTING_DOWN", "Dashboard is shutting down")
	default:
		respond.WriteErrorDetail(w, http.StatusInternalServerError, "INTERNAL", "Internal error", err.Error())
	}
}
