package repositories

import (
	"context"
	"errors"
	"time"

	"tastypoint-cart/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Cart snapshot repository implementation
type postgresStore struct {
	db *gorm.DB
}

func NewPostgresStore(db *gorm.DB) CartKVStore {
	return &postgresStore{db: db}
}

func (r *postgresStore) Get(ctx context.Context, key string) (string, error) {
	var snapshot models.CartSnapshot
	err := r.db.WithContext(ctx).Where("cart_key = ?", key).First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return snapshot.Data, nil
}

func (r *postgresStore) Set(ctx context.Context, key, value string) error {
	snapshot := models.CartSnapshot{
		CartKey:   key,
		Data:      value,
		UpdatedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cart_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snapshot).Error
}
