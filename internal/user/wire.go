//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/AY-10/inventryy/internal/activity"
	"github.com/AY-10/inventryy/internal/user/delivery/http"
	"github.com/AY-10/inventryy/internal/user/domain"
	"github.com/AY-10/inventryy/internal/user/repository"
	"github.com/AY-10/inventryy/internal/user/usecase/command"
	"github.com/AY-10/inventryy/internal/user/usecase/query"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

var HandlerSet = wire.NewSet(
	ProvideUserRepository,
	command.NewRegisterUserHandler,
	command.NewLoginUserHandler,
	command.NewChangeRoleHandler,
	query.NewGetUserHandler,
	query.NewListUsersHandler,
)

// InitializeHTTPHandler initializes the user HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, recorder *activity.Recorder) (*http.UserHandler, error) {
	wire.Build(
		HandlerSet,
		http.NewUserHandler,
	)
	return nil, nil
}
