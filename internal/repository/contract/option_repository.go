package contract

import (
	"context"

	"stock-visibility-be/internal/entity"
)

// OptionRepository is the generic key-value option API. Get returns
// (nil, nil) for an absent key; Put is an upsert replacing the whole value.
type OptionRepository interface {
	Get(ctx context.Context, key string) (*entity.StoreOption, error)
	Put(ctx context.Context, option *entity.StoreOption) error
}
