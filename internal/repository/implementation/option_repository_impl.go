package implementation

import (
	"context"
	"errors"
	"time"

	"stock-visibility-be/internal/entity"
	"stock-visibility-be/internal/model"
	"stock-visibility-be/internal/repository/contract"
	"stock-visibility-be/internal/repository/specification"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OptionRepositoryImpl struct {
	db *gorm.DB
}

func NewOptionRepository(db *gorm.DB) contract.OptionRepository {
	return &OptionRepositoryImpl{db: db}
}

func (r *OptionRepositoryImpl) Get(ctx context.Context, key string) (*entity.StoreOption, error) {
	var m model.StoreOption
	query := specification.ByKey{Key: key}.Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var updatedAt *time.Time
	if !m.UpdatedAt.IsZero() {
		t := m.UpdatedAt
		updatedAt = &t
	}

	return &entity.StoreOption{
		Key:       m.Key,
		Value:     []byte(m.Value),
		UpdatedAt: updatedAt,
	}, nil
}

func (r *OptionRepositoryImpl) Put(ctx context.Context, option *entity.StoreOption) error {
	m := model.StoreOption{
		Key:   option.Key,
		Value: datatypes.JSON(option.Value),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&m).Error
}
