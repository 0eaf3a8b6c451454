package repository

import (
	"go-storefront/internal/model"

	"gorm.io/gorm"
)

type PrivilegeRepository interface {
	FindAll() ([]model.Privilege, error)
	SeedDefaults() error
}

type privilegeRepo struct {
	db *gorm.DB
}

func NewPrivilegeRepo(db *gorm.DB) PrivilegeRepository {
	return &privilegeRepo{db}
}

func (r *privilegeRepo) FindAll() ([]model.Privilege, error) {
	var privileges []model.Privilege
	err := r.db.Find(&privileges).Error
	return privileges, err
}

func (r *privilegeRepo) SeedDefaults() error {
	for _, privilege := range model.DefaultPrivileges {
		var existing model.Privilege
		if err := r.db.Where("code = ?", privilege.Code).FirstOrCreate(&existing, privilege).Error; err != nil {
			return err
		}
	}
	return nil
}
