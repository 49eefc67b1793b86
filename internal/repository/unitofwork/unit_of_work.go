package unitofwork

import (
	"context"

	"stock-visibility-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	CategoryRepository() contract.CategoryRepository
	OptionRepository() contract.OptionRepository
	AdminUserRepository() contract.AdminUserRepository
	NotificationRepository() contract.NotificationRepository
}
