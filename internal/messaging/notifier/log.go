package notifier

import (
	"context"

	"go.uber.org/zap"

	"sports-admin-service/internal/repository/model"
)

// logNotifier is used in development or when Kafka is disabled: events are
// logged and dropped.
type logNotifier struct {
	logger *zap.SugaredLogger
}

func NewLogNotifier(logger *zap.SugaredLogger) Notifier {
	return &logNotifier{logger: logger}
}

func (l *logNotifier) ActivityCreated(_ context.Context, activity *model.Activity) error {
	l.logger.Infow("activity created", "entityType", activity.EntityType,
		"entityId", activity.EntityID, "description", activity.Description)
	return nil
}

func (l *logNotifier) RoleUpdate(_ context.Context, role *model.Role, changeType ChangeType) error {
	l.logger.Infow("role update", "roleId", role.ID, "name", role.Name, "changeType", changeType)
	return nil
}
