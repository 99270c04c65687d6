package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sports-admin-service/internal/menu"
)

func hotelsTree() []menu.Node {
	return []menu.Node{
		{
			Path: "hotels-administration",
			Children: []menu.Node{
				{Path: "hotels", AllowedPermissions: []string{"VIEW:HOTELS"}},
			},
		},
		{Path: "login", IsPublicRoute: true},
	}
}

func TestGateDecide(t *testing.T) {
	gate := NewGate(BuildRouteTable(hotelsTree(), testLogger()))

	tests := []struct {
		name      string
		pathname  string
		userPerms []string
		isRoot    bool
		want      Decision
	}{
		{
			name:      "matching permission authorizes",
			pathname:  "/hotels-administration/hotels",
			userPerms: []string{"VIEW:HOTELS"},
			want:      Authorized,
		},
		{
			name:      "disjoint permissions deny",
			pathname:  "/hotels-administration/hotels",
			userPerms: []string{"VIEW:USERS"},
			want:      Unauthorized,
		},
		{
			name:      "empty permission set denies protected route",
			pathname:  "/hotels-administration/hotels",
			userPerms: []string{},
			want:      Unauthorized,
		},
		{
			name:      "public route authorizes regardless of permissions",
			pathname:  "/login",
			userPerms: []string{},
			want:      Authorized,
		},
		{
			name:      "unknown path denies by default",
			pathname:  "/no-such-route",
			userPerms: []string{"VIEW:HOTELS"},
			want:      Unauthorized,
		},
		{
			name:     "root user bypasses everything",
			pathname: "/hotels-administration/hotels",
			isRoot:   true,
			want:     Authorized,
		},
		{
			name:     "root user authorized even on unmatched path",
			pathname: "/no-such-route",
			isRoot:   true,
			want:     Authorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gate.Decide(tt.pathname, tt.userPerms, tt.isRoot)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "AUTHORIZED", Authorized.String())
	assert.Equal(t, "UNAUTHORIZED", Unauthorized.String())
}
