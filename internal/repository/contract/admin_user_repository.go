package contract

import (
	"context"

	"stock-visibility-be/internal/entity"
	"stock-visibility-be/internal/repository/specification"
)

type AdminUserRepository interface {
	Create(ctx context.Context, user *entity.AdminUser) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AdminUser, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
