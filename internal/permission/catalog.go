package permission

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"sports-admin-service/internal/menu"
)

// Namespace under which permission identifiers are derived. Changing this
// invalidates every identifier ever handed out, so it is fixed forever.
var idNamespace = uuid.MustParse("7b8a1c52-9f0d-4a3e-8b6f-2d4c5e7a9b01")

// Option pairs a permission string with its stable synthetic identifier,
// shaped for direct use as a multi-select option.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ID returns the stable identifier for a permission string. It is a
// version-5 UUID over a fixed namespace: the same string yields the same
// identifier across runs and processes.
func ID(perm string) string {
	return uuid.NewSHA1(idNamespace, []byte(perm)).String()
}

// BuildCatalog flattens every permission string referenced anywhere in the
// menu tree into catalog options. Parents contribute before their children
// and siblings keep declaration order. Duplicate occurrences are preserved;
// deduplication, if wanted, is the consumer's business.
func BuildCatalog(tree []menu.Node, logger *zap.SugaredLogger) []Option {
	if len(tree) == 0 {
		logger.Warnw("empty or missing menu tree, permission catalog will be empty")
		return []Option{}
	}

	options := make([]Option, 0)
	for _, node := range tree {
		for _, perm := range node.AllowedPermissions {
			options = append(options, Option{Label: perm, Value: ID(perm)})
		}
		for _, child := range node.Children {
			for _, perm := range child.AllowedPermissions {
				options = append(options, Option{Label: perm, Value: ID(perm)})
			}
		}
	}

	return options
}
