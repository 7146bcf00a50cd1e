package state

import (
	"sort"
)

// Hosts returns the hosts with recorded state, sorted
func (rs *RuntimeState) Hosts() []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	hosts := make([]string, 0, len(rs.Windows))
	for h := range rs.Windows {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}

// HasState returns true if state was recorded for host
func (rs *RuntimeState) HasState(host string) bool {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	_, ok := rs.Windows[host]
	return ok
}

// Summary returns a summary of the state for display
func (rs *RuntimeState) Summary() map[string]interface{} {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	summary := map[string]interface{}{
		"version":     rs.Version,
		"lastUpdated": rs.LastUpdated,
		"windowCount": len(rs.Windows),
	}

	windows := make(map[string]interface{})
	for host, ws := range rs.Windows {
		windows[host] = map[string]interface{}{
			"policy":   string(ws.Policy),
			"top":      ws.Top.String(),
			"left":     ws.Left.String(),
			"width":    ws.Width.String(),
			"height":   ws.Height.String(),
			"snapshot": ws.Snapshot != nil,
			"savedAt":  ws.SavedAt,
		}
	}
	summary["windows"] = windows

	return summary
}
