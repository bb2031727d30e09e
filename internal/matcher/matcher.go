// Package matcher computes the set of recipients eligible for an alert by
// applying group routing rules: source host/service filters and receive/mute
// time windows. It is a pure package: all inputs, including the evaluation
// instant, are passed in by the caller.
package matcher

import (
	"time"

	"github.com/google/uuid"

	"github.com/mzhdanov/alert-router/internal/model"
)

// Query describes one alert being routed.
type Query struct {
	// TargetGroups restricts matching to these group codes. Empty means
	// all groups associated with the message type. Codes that do not
	// resolve to a candidate group are silently dropped.
	TargetGroups []string

	// SourceHost and SourceService are matched against group filters.
	// An empty value passes every filter.
	SourceHost    string
	SourceService string

	// At is the evaluation instant for time-window gates. Zero means now.
	At time.Time
}

// Eligible filters the candidate groups through the routing gates and
// returns the union of their subscribed members, deduplicated by recipient
// ID. Inactive groups, inactive recipients and recipients without a
// subscription token are excluded. An empty result is not an error.
func Eligible(groups []model.Group, q Query) []model.Recipient {
	at := q.At
	if at.IsZero() {
		at = time.Now()
	}

	var wanted map[string]struct{}
	if len(q.TargetGroups) > 0 {
		wanted = make(map[string]struct{}, len(q.TargetGroups))
		for _, code := range q.TargetGroups {
			wanted[code] = struct{}{}
		}
	}

	seen := make(map[uuid.UUID]struct{})
	var recipients []model.Recipient

	for _, g := range groups {
		if !g.IsActive {
			continue
		}

		if wanted != nil {
			if _, ok := wanted[g.Code]; !ok {
				continue
			}
		}

		// The filter gates apply only when both the filter and the
		// source value are present.
		if g.HostFilter != "" && q.SourceHost != "" && !MatchGlob(q.SourceHost, g.HostFilter) {
			continue
		}
		if g.ServiceFilter != "" && q.SourceService != "" && !MatchGlob(q.SourceService, g.ServiceFilter) {
			continue
		}

		if !inReceiveWindow(g, at) {
			continue
		}

		for _, r := range g.Members {
			if !r.IsActive || r.LineAccessToken == "" {
				continue
			}

			if _, ok := seen[r.ID]; ok {
				continue
			}
			seen[r.ID] = struct{}{}

			recipients = append(recipients, r)
		}
	}

	return recipients
}
