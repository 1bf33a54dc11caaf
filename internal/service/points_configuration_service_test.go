package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsConfiguration_GetAndUpdate(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	svc := NewPointsConfigurationService(f.configRepo, testLogger())

	config, err := svc.GetByCompanyID(companyID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, config.RequiredAmount)

	require.NoError(t, svc.Update(companyID, 50, 2))

	config, err = svc.GetByCompanyID(companyID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, config.RequiredAmount)
	assert.Equal(t, 2.0, config.PointsToEarn)
}

func TestPointsConfiguration_GetMissing(t *testing.T) {
	f := newFixture(t)
	svc := NewPointsConfigurationService(f.configRepo, testLogger())

	_, err := svc.GetByCompanyID(424242)
	require.Error(t, err)
	assert.Equal(t, ReasonMissingConfiguration, ReasonOf(err))
	assert.Equal(t, KindConfiguration, KindOf(err))
}

func TestPointsConfiguration_UpdateValidation(t *testing.T) {
	f := newFixture(t)
	companyID := f.createCompany(t, 100, 1)
	svc := NewPointsConfigurationService(f.configRepo, testLogger())

	err := svc.Update(companyID, 0, 1)
	require.Error(t, err)
	assert.Equal(t, ReasonInvalidEarningRule, ReasonOf(err))

	err = svc.Update(companyID, 100, -1)
	require.Error(t, err)
	assert.Equal(t, ReasonInvalidEarningRule, ReasonOf(err))
}
