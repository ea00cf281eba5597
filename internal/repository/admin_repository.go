package repository

import (
	"context"

	"github.com/gradi-as/contractor-api/internal/domain"
	"gorm.io/gorm"
)

// AdminRepository holds destructive maintenance operations
type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// ClearAll deletes every record of every entity type in one
// transaction, children before parents so referential constraints
// hold throughout. Either the entire dataset is cleared or none of it.
// Running it against an empty database is a no-op success.
func (r *AdminRepository) ClearAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		models := []interface{}{
			&domain.ProjectEmployee{},
			&domain.AdditionalService{},
			&domain.Cost{},
			&domain.Project{},
			&domain.Employee{},
			&domain.Client{},
			&domain.UploadedDocument{},
		}
		for _, model := range models {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
