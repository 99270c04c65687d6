package permission

import "strings"

// MatchPath reports whether a concrete pathname matches a route pattern.
// Patterns are segment-wise: a literal segment must match exactly, a
// ":name" segment matches any single non-empty segment. Segment counts
// must agree. Trailing slashes are ignored on both sides.
func MatchPath(pattern, pathname string) bool {
	patSegs := splitPath(pattern)
	pathSegs := splitPath(pathname)
	if len(patSegs) != len(pathSegs) {
		return false
	}

	for i, seg := range patSegs {
		if strings.HasPrefix(seg, ":") {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}

	return true
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
