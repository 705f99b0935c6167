package profile

import (
	"context"

	"gorm.io/gorm"

	"cosmolink/internal/dbmysql"
)

// Repository is the profile store collaborator.
type Repository interface {
	Create(ctx context.Context, p *dbmysql.Profile) error
	Fetch(ctx context.Context, userID int64) (*dbmysql.Profile, error)
	FetchByEmail(ctx context.Context, email string) (*dbmysql.Profile, error)
	UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p *dbmysql.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) Fetch(ctx context.Context, userID int64) (*dbmysql.Profile, error) {
	var p dbmysql.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FetchByEmail(ctx context.Context, email string) (*dbmysql.Profile, error) {
	var p dbmysql.Profile
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) UpdateFields(ctx context.Context, userID int64, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&dbmysql.Profile{}).Where("user_id = ?", userID).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
