package permission

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"sports-admin-service/internal/menu"
)

// RouteEntry maps one route pattern to the permissions allowed to view it.
type RouteEntry struct {
	Pattern string
	Allowed []string
	Public  bool
}

// RouteTable holds route entries in deterministic match order: more
// segments first, literal segments before parameter segments, then lexical.
// Matching therefore never depends on menu declaration order.
type RouteTable struct {
	entries []RouteEntry
}

// BuildRouteTable derives one entry per leaf of the menu tree: children are
// keyed "/parent/child", childless top-level nodes "/parent". Parameter
// segments in the configured paths are preserved verbatim. A duplicate full
// path keeps the first registration and logs a warning.
func BuildRouteTable(tree []menu.Node, logger *zap.SugaredLogger) *RouteTable {
	seen := make(map[string]struct{})
	entries := make([]RouteEntry, 0)

	register := func(pattern string, node menu.Node) {
		if _, ok := seen[pattern]; ok {
			logger.Warnw("duplicate route pattern in menu tree, keeping first registration", "pattern", pattern)
			return
		}
		seen[pattern] = struct{}{}
		entries = append(entries, RouteEntry{
			Pattern: pattern,
			Allowed: node.AllowedPermissions,
			Public:  node.IsPublicRoute,
		})
	}

	for _, node := range tree {
		if len(node.Children) == 0 {
			register("/"+node.Path, node)
			continue
		}
		for _, child := range node.Children {
			register("/"+node.Path+"/"+child.Path, child)
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return morePrecise(entries[i].Pattern, entries[j].Pattern)
	})

	return &RouteTable{entries: entries}
}

// NewRouteTable builds a table directly from entries, sorted the same way
// as BuildRouteTable. Used for route tables that do not come from a menu
// tree, such as the API surface.
func NewRouteTable(entries []RouteEntry) *RouteTable {
	sorted := make([]RouteEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return morePrecise(sorted[i].Pattern, sorted[j].Pattern)
	})
	return &RouteTable{entries: sorted}
}

// Match returns the most specific entry matching the pathname.
func (t *RouteTable) Match(pathname string) (RouteEntry, bool) {
	for _, e := range t.entries {
		if MatchPath(e.Pattern, pathname) {
			return e, true
		}
	}
	return RouteEntry{}, false
}

// Entries returns the table's entries in match order.
func (t *RouteTable) Entries() []RouteEntry {
	return t.entries
}

func morePrecise(a, b string) bool {
	aSegs, bSegs := splitPath(a), splitPath(b)
	if len(aSegs) != len(bSegs) {
		return len(aSegs) > len(bSegs)
	}
	for i := range aSegs {
		aParam := strings.HasPrefix(aSegs[i], ":")
		bParam := strings.HasPrefix(bSegs[i], ":")
		if aParam != bParam {
			return bParam
		}
	}
	return a < b
}
