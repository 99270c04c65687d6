package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"sports-admin-service/internal/config"
	"sports-admin-service/internal/repository/model"
)

const topic = "sports-admin"

const (
	eventTypeActivityCreated = "sports-admin.activity.created"
	eventTypeRoleUpdate      = "sports-admin.role.update"
)

type kafkaNotifier struct {
	logger *zap.SugaredLogger
	w      *kafka.Writer
}

func NewKafkaNotifier(ctx context.Context, wg *sync.WaitGroup, logger *zap.SugaredLogger, cfg config.KafkaConfig) Notifier {
	w := &kafka.Writer{
		Addr:        kafka.TCP(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		Topic:       topic,
		Async:       true,
		Balancer:    &kafka.LeastBytes{},
		ErrorLogger: zap.NewStdLog(zap.L()),
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("shutting down kafka writer")
		if err := w.Close(); err != nil {
			logger.Errorw("failed to close kafka writer", "error", err)
		}
	}()

	return &kafkaNotifier{
		logger: logger,
		w:      w,
	}
}

func (k *kafkaNotifier) ActivityCreated(ctx context.Context, activity *model.Activity) error {
	return k.publishMessage(ctx, eventTypeActivityCreated, activity)
}

func (k *kafkaNotifier) RoleUpdate(ctx context.Context, role *model.Role, changeType ChangeType) error {
	msg := struct {
		Role       *model.Role `json:"role"`
		ChangeType ChangeType  `json:"changeType"`
	}{Role: role, ChangeType: changeType}

	return k.publishMessage(ctx, eventTypeRoleUpdate, msg)
}

func (k *kafkaNotifier) publishMessage(ctx context.Context, eventType string, payload any) error {
	bytes, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if err := k.w.WriteMessages(ctx, kafka.Message{
		Value:   bytes,
		Headers: []kafka.Header{{Key: "X-Event-Type", Value: []byte(eventType)}},
	}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
