package repository

import (
	"fmt"
	"testing"
	"time"

	"monedero/internal/database"
	"monedero/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func ledgerEntry(companyID, clientID uint, saleKey string, earned float64) *models.Points {
	return &models.Points{
		CompanyID:      companyID,
		ClientID:       clientID,
		SaleKey:        saleKey,
		SaleAmount:     earned * 100,
		RequiredAmount: 100,
		PointsToEarn:   1,
		EarnedPoints:   earned,
		Date:           time.Now(),
	}
}

// The composite unique index is the authoritative idempotency guard: a second
// insert with the same (company, sale key) must fail at the storage layer.
func TestInsert_DuplicateSaleKeyRejectedByConstraint(t *testing.T) {
	db := newTestDB(t)
	repo := NewPointsRepository(db)

	require.NoError(t, repo.Insert(ledgerEntry(1, 1, "sale-1", 2)))

	err := repo.Insert(ledgerEntry(1, 2, "sale-1", 3))
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// Same key under another company is a different sale.
	require.NoError(t, repo.Insert(ledgerEntry(2, 1, "sale-1", 2)))
}

func TestSumEarnedPoints(t *testing.T) {
	db := newTestDB(t)
	repo := NewPointsRepository(db)

	require.NoError(t, repo.Insert(ledgerEntry(1, 1, "sale-1", 2)))
	require.NoError(t, repo.Insert(ledgerEntry(1, 1, "sale-2", 0)))
	require.NoError(t, repo.Insert(ledgerEntry(1, 1, "sale-3", 5)))
	require.NoError(t, repo.Insert(ledgerEntry(1, 2, "sale-4", 9)))

	sum, err := repo.SumEarnedPoints(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, sum)

	sum, err = repo.SumEarnedPoints(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sum)
}

func TestCompanyClientMappingUniquePerPair(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyClientMappingRepository(db)

	require.NoError(t, repo.Insert(&models.CompanyClientMapping{CompanyID: 1, ClientID: 1}))
	err := repo.Insert(&models.CompanyClientMapping{CompanyID: 1, ClientID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
