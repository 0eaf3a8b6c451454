package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestReserveStockDecrementsWhenAvailable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepo(db)

	id := uuid.New()
	// One statement: decrement guarded by the stock check, bump sold_count,
	// and flag the listing sold out when the last unit goes
	mock.ExpectExec(`UPDATE "products" SET "is_sold"=\(stock = 1\),"sold_count"=sold_count \+ 1,"stock"=stock - 1 WHERE .*id = \$1 AND stock >= 1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := repo.ReserveStock(db, id)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveStockRefusesWhenOutOfStock(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProductRepo(db)

	id := uuid.New()
	// Zero rows affected means the stock guard in the WHERE clause rejected it
	mock.ExpectExec(`UPDATE "products" SET`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.ReserveStock(db, id)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientFindOrCreateMatchesCaseInsensitively(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewClientRepo(db)

	sellerID := uuid.New()
	clientID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "clients"`).
		WithArgs(sellerID, "Ana Torres", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seller_id", "name"}).
			AddRow(clientID.String(), sellerID.String(), "Ana Torres"))

	// Surrounding whitespace is stripped before matching
	client, err := repo.FindOrCreate(db, sellerID, "  Ana Torres ")

	require.NoError(t, err)
	assert.Equal(t, clientID, client.ID)
	assert.Equal(t, "Ana Torres", client.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
