package service

import (
	"testing"

	"monedero/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPhone = "+12025550123"

func TestAwardPoints_EarnsFlooredPoints(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	svc := f.pointsService()

	earned, err := svc.AwardPoints(companyID, testPhone, "sale-1", 250)
	require.NoError(t, err)
	assert.Equal(t, 2.0, earned)

	client, err := f.clientRepo.GetByPhone(testPhone)
	require.NoError(t, err)
	assert.True(t, client.CanReceivePromoSms)

	mapping, err := f.mappingRepo.GetByCompanyIDClientID(companyID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, mapping.Points)

	entry, err := f.pointsRepo.GetByCompanyIDSaleKey(companyID, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, 250.0, entry.SaleAmount)
	assert.Equal(t, 100.0, entry.RequiredAmount)
	assert.Equal(t, 1.0, entry.PointsToEarn)
	assert.Equal(t, 2.0, entry.EarnedPoints)
	assert.False(t, entry.Date.IsZero())
}

func TestAwardPoints_TruncatesFractionalPoints(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 3)
	svc := f.pointsService()

	// 250/100*3 = 7.5, truncated to 7
	earned, err := svc.AwardPoints(companyID, testPhone, "sale-1", 250)
	require.NoError(t, err)
	assert.Equal(t, 7.0, earned)
}

func TestAwardPoints_BelowRequiredAmountIsZeroButSuccessful(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	svc := f.pointsService()

	earned, err := svc.AwardPoints(companyID, testPhone, "sale-1", 50)
	require.NoError(t, err)
	assert.Equal(t, 0.0, earned)

	client, err := f.clientRepo.GetByPhone(testPhone)
	require.NoError(t, err)
	mapping, err := f.mappingRepo.GetByCompanyIDClientID(companyID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, mapping.Points)

	// The sale is still recorded, so the same key cannot be replayed later.
	_, err = f.pointsRepo.GetByCompanyIDSaleKey(companyID, "sale-1")
	require.NoError(t, err)
}

func TestAwardPoints_DuplicateSaleKeyAppliesEffectOnce(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	svc := f.pointsService()

	earned, err := svc.AwardPoints(companyID, testPhone, "sale-1", 250)
	require.NoError(t, err)
	require.Equal(t, 2.0, earned)

	_, err = svc.AwardPoints(companyID, testPhone, "sale-1", 250)
	require.Error(t, err)
	assert.Equal(t, ReasonDuplicateSaleKey, ReasonOf(err))
	assert.Equal(t, KindValidation, KindOf(err))

	client, err := f.clientRepo.GetByPhone(testPhone)
	require.NoError(t, err)
	mapping, err := f.mappingRepo.GetByCompanyIDClientID(companyID, client.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, mapping.Points)

	var count int64
	require.NoError(t, f.db.Model(&models.Points{}).Where("company_id = ?", companyID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAwardPoints_ConstraintFailureIsDuplicateOnlyWhenLedgerHoldsKey(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	svc := f.pointsService()

	_, err := svc.AwardPoints(companyID, testPhone, "sale-1", 250)
	require.NoError(t, err)

	// The ledger holds the key, so the conflict is the sale-key guard.
	err = svc.resolveAwardConflict(companyID, "sale-1", gorm.ErrDuplicatedKey)
	assert.Equal(t, ReasonDuplicateSaleKey, ReasonOf(err))
	assert.Equal(t, KindValidation, KindOf(err))

	// The ledger does not hold the key: the constraint that fired was the
	// client phone or mapping index, the award rolled back, and the caller
	// must get a retryable failure instead of "already recorded".
	err = svc.resolveAwardConflict(companyID, "sale-2", gorm.ErrDuplicatedKey)
	assert.Equal(t, KindStorage, KindOf(err))
	assert.NotEqual(t, ReasonDuplicateSaleKey, ReasonOf(err))
}

func TestAwardPoints_SameSaleKeyDifferentCompany(t *testing.T) {
	f := newFixture(t)
	first := f.createCompany(t, 100, 1)
	second := f.createCompany(t, 100, 1)
	svc := f.pointsService()

	_, err := svc.AwardPoints(first, testPhone, "sale-1", 100)
	require.NoError(t, err)
	// Sale keys are only unique within a company.
	_, err = svc.AwardPoints(second, testPhone, "sale-1", 100)
	require.NoError(t, err)
}

func TestAwardPoints_InvalidPhone(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	svc := f.pointsService()

	_, err := svc.AwardPoints(companyID, "12345", "sale-1", 250)
	require.Error(t, err)
	assert.Equal(t, ReasonInvalidPhone, ReasonOf(err))

	// First failure wins: nothing was written.
	var count int64
	require.NoError(t, f.db.Model(&models.Client{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestAwardPoints_EmptySaleKey(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	svc := f.pointsService()

	_, err := svc.AwardPoints(companyID, testPhone, "", 250)
	require.Error(t, err)
	assert.Equal(t, ReasonEmptySaleKey, ReasonOf(err))
}

func TestAwardPoints_MissingConfiguration(t *testing.T) {
	f := newFixture(t)
	company := &models.Company{Name: "Unconfigured"}
	require.NoError(t, f.companyRepo.Insert(company))
	svc := f.pointsService()

	_, err := svc.AwardPoints(company.ID, testPhone, "sale-1", 250)
	require.Error(t, err)
	assert.Equal(t, ReasonMissingConfiguration, ReasonOf(err))
	assert.Equal(t, KindConfiguration, KindOf(err))
}

func TestAwardPoints_RuleUpdateDoesNotRewriteHistory(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	svc := f.pointsService()

	_, err := svc.AwardPoints(companyID, testPhone, "sale-1", 250)
	require.NoError(t, err)

	require.NoError(t, f.configRepo.Update(companyID, 10, 5))

	earned, err := svc.AwardPoints(companyID, testPhone, "sale-2", 250)
	require.NoError(t, err)
	assert.Equal(t, 125.0, earned)

	old, err := f.pointsRepo.GetByCompanyIDSaleKey(companyID, "sale-1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, old.RequiredAmount)
	assert.Equal(t, 1.0, old.PointsToEarn)
	assert.Equal(t, 2.0, old.EarnedPoints)
}

func TestAwardPoints_BalanceMatchesLedgerSum(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	otherCompanyID := f.createCompany(t, 50, 2)
	svc := f.pointsService()

	otherPhone := "+12025550199"
	awards := []struct {
		companyID uint
		phone     string
		saleKey   string
		amount    float64
	}{
		{companyID, testPhone, "a-1", 250},
		{companyID, testPhone, "a-2", 99},
		{companyID, testPhone, "a-3", 1000},
		{companyID, otherPhone, "a-4", 500},
		{otherCompanyID, testPhone, "b-1", 125},
	}
	for _, a := range awards {
		_, err := svc.AwardPoints(a.companyID, a.phone, a.saleKey, a.amount)
		require.NoError(t, err)
	}

	var mappings []models.CompanyClientMapping
	require.NoError(t, f.db.Find(&mappings).Error)
	require.NotEmpty(t, mappings)
	for _, m := range mappings {
		sum, err := f.pointsRepo.SumEarnedPoints(m.CompanyID, m.ClientID)
		require.NoError(t, err)
		assert.Equal(t, sum, m.Points, "mapping %d balance diverged from ledger", m.ID)
	}
}

func TestCalculateEarnedPoints(t *testing.T) {
	assert.Equal(t, 2.0, calculateEarnedPoints(250, 100, 1))
	assert.Equal(t, 0.0, calculateEarnedPoints(99, 100, 1))
	assert.Equal(t, 1.0, calculateEarnedPoints(100, 100, 1))
	assert.Equal(t, 7.0, calculateEarnedPoints(250, 100, 3))
	assert.Equal(t, 0.0, calculateEarnedPoints(100, 100, 0))
}
