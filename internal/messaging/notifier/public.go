package notifier

import (
	"context"

	"sports-admin-service/internal/repository/model"
)

// ChangeType describes what happened to the record a message is about.
type ChangeType string

const (
	ChangeTypeCreate ChangeType = "CREATE"
	ChangeTypeModify ChangeType = "MODIFY"
)

// Notifier publishes domain events for downstream consumers. Publishing is
// best-effort: callers log failures and carry on, the originating mutation
// is never rolled back.
type Notifier interface {
	ActivityCreated(ctx context.Context, activity *model.Activity) error
	RoleUpdate(ctx context.Context, role *model.Role, changeType ChangeType) error
}
