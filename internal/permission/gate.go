package permission

// Decision is the outcome of an access check.
type Decision int

const (
	Unauthorized Decision = iota
	Authorized
)

func (d Decision) String() string {
	if d == Authorized {
		return "AUTHORIZED"
	}
	return "UNAUTHORIZED"
}

// Gate decides whether a navigation target renders for a user. The decision
// is synchronous and pure; callers re-run it on every path or permission
// change.
type Gate struct {
	table *RouteTable
}

func NewGate(table *RouteTable) *Gate {
	return &Gate{table: table}
}

// Decide applies the access rules in order: root users are authorized
// everywhere, a public matched route is authorized for anyone, a protected
// matched route requires a non-empty intersection between its allowed set
// and the user's permissions, and an unmatched pathname is denied.
func (g *Gate) Decide(pathname string, userPerms []string, isRoot bool) Decision {
	if isRoot {
		return Authorized
	}

	entry, ok := g.table.Match(pathname)
	if !ok {
		return Unauthorized
	}

	if entry.Public {
		return Authorized
	}

	if intersects(entry.Allowed, userPerms) {
		return Authorized
	}
	return Unauthorized
}

func intersects(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}
