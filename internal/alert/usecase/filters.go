package usecase

import (
	"strings"

	"rockguard-srv/internal/model"
)

// recipientFilter decides whether one roster entry is targeted.
type recipientFilter func(model.Recipient) bool

// matchAll composes filters with AND semantics. No filters means broadcast to
// everyone.
func matchAll(filters ...recipientFilter) recipientFilter {
	return func(r model.Recipient) bool {
		for _, f := range filters {
			if !f(r) {
				return false
			}
		}
		return true
	}
}

// byRole matches recipients whose role is in roles. Empty roles matches all.
func byRole(roles []string) recipientFilter {
	if len(roles) == 0 {
		return func(model.Recipient) bool { return true }
	}

	set := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}

	return func(r model.Recipient) bool {
		_, ok := set[strings.ToLower(r.Role)]
		return ok
	}
}

// byLocation matches recipients whose location contains any of the given
// fragments, case-insensitively. "Tunnel A" matches "Tunnel A - Section 2".
// Empty locations matches all.
func byLocation(locations []string) recipientFilter {
	fragments := make([]string, 0, len(locations))
	for _, loc := range locations {
		if trimmed := strings.TrimSpace(loc); trimmed != "" {
			fragments = append(fragments, strings.ToLower(trimmed))
		}
	}
	if len(fragments) == 0 {
		return func(model.Recipient) bool { return true }
	}

	return func(r model.Recipient) bool {
		location := strings.ToLower(r.Location)
		for _, fragment := range fragments {
			if strings.Contains(location, fragment) {
				return true
			}
		}
		return false
	}
}

func filterRecipients(recipients []model.Recipient, filter recipientFilter) []model.Recipient {
	matched := make([]model.Recipient, 0, len(recipients))
	for _, r := range recipients {
		if filter(r) {
			matched = append(matched, r)
		}
	}
	return matched
}
