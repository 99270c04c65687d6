package app

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"sports-admin-service/internal/config"
	"sports-admin-service/internal/menu"
	"sports-admin-service/internal/messaging/notifier"
	"sports-admin-service/internal/repository"
	"sports-admin-service/internal/service"
)

func Run(cfg config.Config, logger *zap.SugaredLogger) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	wg := &sync.WaitGroup{}

	delayedCtx, infraCancel := context.WithCancel(context.Background())
	delayedWg := &sync.WaitGroup{}

	tree := loadMenuTree(cfg, logger)

	repo := createRepository(delayedCtx, logger, delayedWg, cfg)

	var notif notifier.Notifier
	if cfg.Kafka.Enabled {
		notif = notifier.NewKafkaNotifier(delayedCtx, delayedWg, logger, cfg.Kafka)
	} else {
		notif = notifier.NewLogNotifier(logger)
	}

	if cfg.Development && cfg.Repository == config.RepositoryMemory {
		if err := repository.Seed(ctx, repo); err != nil {
			logger.Fatalw("failed to seed repository", "error", err)
		}
		logger.Info("seeded development fixtures")
	}

	service.RunServices(ctx, logger, wg, cfg, repo, notif, tree)

	wg.Wait()
	logger.Info("shutting down")

	logger.Info("shutting down delayed services")
	infraCancel()
	delayedWg.Wait()
}

func loadMenuTree(cfg config.Config, logger *zap.SugaredLogger) []menu.Node {
	if cfg.MenuFile == "" {
		return menu.Default()
	}

	tree, err := menu.Load(cfg.MenuFile)
	if err != nil {
		logger.Fatalw("failed to load menu tree", "error", err, "file", cfg.MenuFile)
	}
	return tree
}

func createRepository(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup,
	cfg config.Config) repository.Repository {

	switch cfg.Repository {
	case config.RepositoryMongo:
		repo, err := repository.NewMongoRepository(ctx, logger, wg, cfg.MongoDB)
		if err != nil {
			logger.Fatalw("failed to create repository", "error", err)
		}
		return repo
	case config.RepositoryMemory:
		return repository.NewMemoryRepository()
	default:
		logger.Fatalw("unknown repository backend", "repository", cfg.Repository)
		return nil
	}
}
