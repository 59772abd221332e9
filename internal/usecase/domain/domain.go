// Package domain contains application usecases orchestrating roster import
// and role synchronization.
package domain

import (
	"context"
	"time"

	"github.com/BotDogs4645/theLAW/config"
	"github.com/BotDogs4645/theLAW/internal/entities"
	"github.com/BotDogs4645/theLAW/internal/grantapi"
	"github.com/BotDogs4645/theLAW/internal/repository"
	"github.com/BotDogs4645/theLAW/internal/roster"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx      context.Context
	log      *zap.SugaredLogger
	repo     repository.Repository
	grants   grantapi.Client
	roleMap  entities.RoleMap
	syncCfg  config.SyncConfig
	importer *roster.Importer
	timeout  time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	grants grantapi.Client,
	roleMap entities.RoleMap,
	syncCfg config.SyncConfig,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:      ctx,
		log:      log,
		repo:     repo,
		grants:   grants,
		roleMap:  roleMap,
		syncCfg:  syncCfg,
		importer: roster.NewImporter(log, repo),
		timeout:  timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
