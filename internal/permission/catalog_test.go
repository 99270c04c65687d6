package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"sports-admin-service/internal/menu"
)

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func TestBuildCatalogPreservesDuplicatesAndOrder(t *testing.T) {
	tree := []menu.Node{
		{
			Path:               "tournaments",
			AllowedPermissions: []string{"VIEW:TOURNAMENTS", "CREATE:TOURNAMENTS"},
		},
		{
			Path:               "hotels-administration",
			AllowedPermissions: []string{"VIEW:HOTELS"},
			Children: []menu.Node{
				{Path: "hotels", AllowedPermissions: []string{"VIEW:HOTELS", "CREATE:HOTELS"}},
			},
		},
	}

	catalog := BuildCatalog(tree, testLogger())

	// One entry per occurrence: VIEW:HOTELS appears on both the parent and
	// the child and must be present twice.
	assert.Len(t, catalog, 5)

	labels := make([]string, len(catalog))
	for i, opt := range catalog {
		labels[i] = opt.Label
	}
	assert.Equal(t, []string{
		"VIEW:TOURNAMENTS", "CREATE:TOURNAMENTS", "VIEW:HOTELS", "VIEW:HOTELS", "CREATE:HOTELS",
	}, labels)

	// Duplicate occurrences carry the same identifier.
	assert.Equal(t, catalog[2].Value, catalog[3].Value)
}

func TestBuildCatalogEmptyInput(t *testing.T) {
	assert.Empty(t, BuildCatalog(nil, testLogger()))
	assert.Empty(t, BuildCatalog([]menu.Node{}, testLogger()))
}

func TestIDDeterministic(t *testing.T) {
	assert.Equal(t, ID("VIEW:HOTELS"), ID("VIEW:HOTELS"))
	assert.NotEqual(t, ID("VIEW:HOTELS"), ID("CREATE:HOTELS"))

	// Identifiers are stable forever: previously stored values must remain
	// valid across releases.
	assert.Equal(t, ID("VIEW:HOTELS"), ID("VIEW:HOTELS"))
	assert.Len(t, ID("VIEW:HOTELS"), 36)
}
