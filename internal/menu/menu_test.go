package menu

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissionString(t *testing.T) {
	tests := []struct {
		action string
		label  string
		want   string
	}{
		{ActionView, "Hotels", "VIEW:HOTELS"},
		{ActionCreate, "Sports Camps", "CREATE:SPORTS_CAMPS"},
		{ActionUpdate, "hotels", "UPDATE:HOTELS"},
		{ActionPublish, "Tournaments!", "PUBLISH:TOURNAMENTS"},
		{ActionDelete, "  User Management  ", "DELETE:USER_MANAGEMENT"},
		{ActionView, "SFA-Next 2024", "VIEW:SFANEXT_2024"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, PermissionString(tt.action, tt.label))
		})
	}
}

func TestLoad(t *testing.T) {
	content := `
- label: Hotels Administration
  path: hotels-administration
  icon: hotel
  children:
    - label: Hotels
      path: hotels
      allowedPermissions:
        - "VIEW:HOTELS"
- label: Login
  path: login
  isPublicRoute: true
  hideInMenu: true
`
	path := filepath.Join(t.TempDir(), "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tree, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	assert.Equal(t, "hotels-administration", tree[0].Path)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, []string{"VIEW:HOTELS"}, tree[0].Children[0].AllowedPermissions)

	assert.True(t, tree[1].IsPublicRoute)
	assert.True(t, tree[1].HideInMenu)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDefaultTreeShape(t *testing.T) {
	tree := Default()
	assert.NotEmpty(t, tree)

	for _, node := range tree {
		assert.NotEmpty(t, node.Path, "top-level node %q has no path", node.Label)
		for _, child := range node.Children {
			assert.NotEmpty(t, child.Path, "child %q of %q has no path", child.Label, node.Label)
			assert.Empty(t, child.Children, "tree depth must not exceed two")
		}
	}
}
