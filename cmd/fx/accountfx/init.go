package accountfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"swoon/internal/repositories"
	"swoon/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepositoryInterface {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepositoryInterface) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo)
}
