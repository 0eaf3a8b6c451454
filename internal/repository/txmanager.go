package repository

import "gorm.io/gorm"

// TxManager runs a function inside one database transaction. Services depend
// on this instead of *gorm.DB directly so multi-step flows (find-or-create
// client, reserve stock, insert sale) stay testable without a live database.
type TxManager interface {
	Transaction(fn func(tx *gorm.DB) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db}
}

func (m *gormTxManager) Transaction(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}
