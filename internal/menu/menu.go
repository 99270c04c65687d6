package menu

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node is one entry of the static navigation tree the admin panel is built
// from. The tree is loaded once at startup and never mutated afterwards.
// Observed depth is two: top-level sections and their leaf pages.
type Node struct {
	Label              string   `yaml:"label" json:"label"`
	Path               string   `yaml:"path" json:"path"`
	Icon               string   `yaml:"icon,omitempty" json:"icon,omitempty"`
	AllowedPermissions []string `yaml:"allowedPermissions,omitempty" json:"allowedPermissions,omitempty"`
	IsPublicRoute      bool     `yaml:"isPublicRoute,omitempty" json:"isPublicRoute,omitempty"`
	HideInMenu         bool     `yaml:"hideInMenu,omitempty" json:"hideInMenu,omitempty"`
	Children           []Node   `yaml:"children,omitempty" json:"children,omitempty"`
}

// Actions a permission string can carry.
const (
	ActionView    = "VIEW"
	ActionCreate  = "CREATE"
	ActionUpdate  = "UPDATE"
	ActionDelete  = "DELETE"
	ActionPublish = "PUBLISH"
)

// PermissionString builds the ACTION:RESOURCE token for a human label.
// The resource part is the label uppercased with spaces collapsed to
// underscores and every other non-alphanumeric character stripped.
func PermissionString(action, label string) string {
	return action + ":" + sanitizeResource(label)
}

func sanitizeResource(label string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(label)) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Load reads a menu tree from a YAML file.
func Load(path string) ([]Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var tree []Node
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}

	return tree, nil
}

// Default returns the built-in navigation tree used when no menu file is
// configured.
func Default() []Node {
	return []Node{
		{
			Label:              "Dashboard",
			Path:               "dashboard",
			Icon:               "dashboard",
			AllowedPermissions: []string{PermissionString(ActionView, "Dashboard")},
		},
		{
			Label:              "Tournaments",
			Path:               "tournaments",
			Icon:               "trophy",
			AllowedPermissions: []string{
				PermissionString(ActionView, "Tournaments"),
				PermissionString(ActionCreate, "Tournaments"),
				PermissionString(ActionPublish, "Tournaments"),
			},
		},
		{
			Label: "Hotels Administration",
			Path:  "hotels-administration",
			Icon:  "hotel",
			Children: []Node{
				{
					Label: "Hotels",
					Path:  "hotels",
					AllowedPermissions: []string{
						PermissionString(ActionView, "Hotels"),
						PermissionString(ActionCreate, "Hotels"),
						PermissionString(ActionUpdate, "Hotels"),
					},
				},
				{
					Label:              "Hotel Onboarding",
					Path:               "onboarding/:id",
					HideInMenu:         true,
					AllowedPermissions: []string{PermissionString(ActionCreate, "Hotels")},
				},
			},
		},
		{
			Label: "Academy",
			Path:  "academy",
			Icon:  "school",
			Children: []Node{
				{
					Label:              "Overview",
					Path:               "overview",
					AllowedPermissions: []string{PermissionString(ActionView, "Academy")},
				},
				{
					Label: "Coaches",
					Path:  "coaches",
					AllowedPermissions: []string{
						PermissionString(ActionView, "Coaches"),
						PermissionString(ActionCreate, "Coaches"),
					},
				},
			},
		},
		{
			Label: "Sports Camps",
			Path:  "sports-camps",
			Icon:  "tent",
			AllowedPermissions: []string{
				PermissionString(ActionView, "Sports Camps"),
				PermissionString(ActionCreate, "Sports Camps"),
			},
		},
		{
			Label: "User Management",
			Path:  "user-management",
			Icon:  "users",
			Children: []Node{
				{
					Label: "Users",
					Path:  "users",
					AllowedPermissions: []string{
						PermissionString(ActionView, "Users"),
						PermissionString(ActionCreate, "Users"),
					},
				},
				{
					Label: "Roles",
					Path:  "roles",
					AllowedPermissions: []string{
						PermissionString(ActionView, "Roles"),
						PermissionString(ActionCreate, "Roles"),
					},
				},
			},
		},
		{
			Label:         "Login",
			Path:          "login",
			HideInMenu:    true,
			IsPublicRoute: true,
		},
	}
}
