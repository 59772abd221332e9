package usecase

import (
	"context"
	"time"

	"github.com/BotDogs4645/theLAW/config"
	"github.com/BotDogs4645/theLAW/internal/entities"
	"github.com/BotDogs4645/theLAW/internal/grantapi"
	"github.com/BotDogs4645/theLAW/internal/repository"
	"github.com/BotDogs4645/theLAW/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	RosterUsecaseInterface
	IdentityUsecaseInterface
	SyncUsecaseInterface
}

// New constructs a new usecase layer with its dependencies. roleMap is loaded
// once at startup and treated as immutable for every sync pass.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	grants grantapi.Client,
	roleMap entities.RoleMap,
	syncCfg config.SyncConfig,
	timeout time.Duration,
) InterfaceUsecase {
	return domain.New(log, ctx, repo, grants, roleMap, syncCfg, timeout)
}
