// Package sla computes deadline status for assigned work items. It is a
// pure read-side rollup; the cron-style reminder jobs that re-invoke these
// checks live outside the core.
package sla

import (
	"time"

	"github.com/jonmaxmore/Botanical-Audit-Framework-sub007/internal/domain/entities"
)

// DefaultNearDeadlineThreshold is the window in which an open item counts
// as near its deadline.
const DefaultNearDeadlineThreshold = 24 * time.Hour

// NearDeadline reports whether an unfinished item is within threshold of
// its due timestamp: 0 < dueAt-now <= threshold. An already-overdue item
// is breached, not near-deadline.
func NearDeadline(item entities.WorkItem, now time.Time, threshold time.Duration) bool {
	if item.Finished() {
		return false
	}
	remaining := item.DueAt.Sub(now)
	return remaining > 0 && remaining <= threshold
}

// Breached reports whether the item is past due and not completed or
// cancelled.
func Breached(item entities.WorkItem, now time.Time) bool {
	if item.Finished() {
		return false
	}
	return now.After(item.DueAt)
}

// CompletedOnTime reports whether a completed item met its deadline.
func CompletedOnTime(item entities.WorkItem) bool {
	return item.Status == entities.WorkItemStatusCompleted &&
		item.CompletedAt != nil && !item.CompletedAt.After(item.DueAt)
}

// GroupStats is one role+kind bucket of the rollup.
type GroupStats struct {
	Role            entities.Role         `json:"role"`
	Kind            entities.WorkItemKind `json:"kind"`
	CompletedOnTime int                   `json:"completed_on_time"`
	CompletedLate   int                   `json:"completed_late"`
	Open            int                   `json:"open"`
	BreachedOpen    int                   `json:"breached_open"`
}

// Rollup aggregates on-time vs breached counts grouped by assignee role
// and work-item kind, over the items whose due timestamps fall inside
// [from, to). Pure; no mutation.
func Rollup(items []entities.WorkItem, now, from, to time.Time) []GroupStats {
	type key struct {
		role entities.Role
		kind entities.WorkItemKind
	}

	buckets := make(map[key]*GroupStats)
	var order []key
	for _, item := range items {
		if item.DueAt.Before(from) || !item.DueAt.Before(to) {
			continue
		}
		k := key{role: item.AssigneeRole, kind: item.Kind}
		b, ok := buckets[k]
		if !ok {
			b = &GroupStats{Role: k.role, Kind: k.kind}
			buckets[k] = b
			order = append(order, k)
		}

		switch {
		case item.Status == entities.WorkItemStatusCompleted && CompletedOnTime(item):
			b.CompletedOnTime++
		case item.Status == entities.WorkItemStatusCompleted:
			b.CompletedLate++
		case item.Status == entities.WorkItemStatusCancelled:
			// cancelled items do not count either way
		default:
			b.Open++
			if Breached(item, now) {
				b.BreachedOpen++
			}
		}
	}

	out := make([]GroupStats, 0, len(order))
	for _, k := range order {
		out = append(out, *buckets[k])
	}
	return out
}
