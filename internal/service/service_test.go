package service

import (
	"fmt"
	"testing"

	"monedero/internal/database"
	"monedero/internal/models"
	"monedero/internal/repository"
	"monedero/pkg/phone"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema, so
// transactions and unique constraints behave like the real storage layer.
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

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type fixture struct {
	db            *gorm.DB
	clientRepo    *repository.ClientRepository
	companyRepo   *repository.CompanyRepository
	userRepo      *repository.CompanyUserRepository
	configRepo    *repository.PointsConfigurationRepository
	mappingRepo   *repository.CompanyClientMappingRepository
	pointsRepo    *repository.PointsRepository
	promotionRepo *repository.PromotionConfigurationRepository
}

func newFixture(t *testing.T) *fixture {
	db := newTestDB(t)
	return &fixture{
		db:            db,
		clientRepo:    repository.NewClientRepository(db),
		companyRepo:   repository.NewCompanyRepository(db),
		userRepo:      repository.NewCompanyUserRepository(db),
		configRepo:    repository.NewPointsConfigurationRepository(db),
		mappingRepo:   repository.NewCompanyClientMappingRepository(db),
		pointsRepo:    repository.NewPointsRepository(db),
		promotionRepo: repository.NewPromotionConfigurationRepository(db),
	}
}

func (f *fixture) pointsService() *PointsService {
	return NewPointsService(f.db, f.clientRepo, f.mappingRepo, f.pointsRepo, f.configRepo, phone.NewValidator("US"), testLogger())
}

func (f *fixture) promotionService() *PromotionService {
	return NewPromotionService(f.promotionRepo, f.mappingRepo, f.clientRepo, testLogger())
}

func (f *fixture) clientService() *ClientService {
	return NewClientService(f.db, f.clientRepo, f.mappingRepo, phone.NewValidator("US"), testLogger())
}

// createCompany seeds a company with the given earning rule.
func (f *fixture) createCompany(t *testing.T, requiredAmount, pointsToEarn float64) uint {
	t.Helper()
	company := &models.Company{Name: "Test Company"}
	require.NoError(t, f.companyRepo.Insert(company))
	require.NoError(t, f.configRepo.Insert(&models.PointsConfiguration{
		CompanyID:      company.ID,
		RequiredAmount: requiredAmount,
		PointsToEarn:   pointsToEarn,
	}))
	return company.ID
}

// enrollClient seeds a client and its mapping with a starting balance.
func (f *fixture) enrollClient(t *testing.T, companyID uint, phoneNumber string, balance float64) uint {
	t.Helper()
	client, err := f.clientRepo.FindOrCreateByPhone(phoneNumber)
	require.NoError(t, err)
	require.NoError(t, f.mappingRepo.Insert(&models.CompanyClientMapping{
		CompanyID: companyID,
		ClientID:  client.ID,
		Points:    balance,
	}))
	return client.ID
}
