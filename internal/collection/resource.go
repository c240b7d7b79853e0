// Package collection fetches OctoFit collection resources and normalizes
// their response envelopes into ordered record lists.
package collection

import (
	"errors"
	"fmt"
	"strings"
)

// Resource names one remote collection.
type Resource string

const (
	Activities  Resource = "activities"
	Leaderboard Resource = "leaderboard"
	Teams       Resource = "teams"
	Users       Resource = "users"
	Workouts    Resource = "workouts"
)

// ErrUnknownResource is returned by Parse for names outside the registry.
var ErrUnknownResource = errors.New("unknown collection resource")

// All lists every resource in navigation order.
func All() []Resource {
	return []Resource{Activities, Leaderboard, Teams, Users, Workouts}
}

// Parse resolves a resource name, case-insensitively.
func Parse(name string) (Resource, error) {
	r := Resource(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range All() {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownResource, name)
}

// Path returns the API path for the resource, e.g. /api/teams/.
func (r Resource) Path() string {
	return "/api/" + string(r) + "/"
}

// Endpoint joins the API origin with the resource path.
func (r Resource) Endpoint(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + r.Path()
}

func (r Resource) String() string {
	return string(r)
}
