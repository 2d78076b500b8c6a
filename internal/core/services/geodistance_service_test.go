package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/apperrors"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type GeodistanceServiceTestSuite struct {
	suite.Suite
	mockGeomapping *MockGeomappingProvider
}

func (suite *GeodistanceServiceTestSuite) SetupTest() {
	suite.mockGeomapping = new(MockGeomappingProvider)
}

func (suite *GeodistanceServiceTestSuite) TestDistance_NilEndpointInvalid() {
	service := services.NewGeodistanceService(suite.mockGeomapping)

	result := service.Distance(context.Background(), nil, &domain.Coordinates{Lat: 51.5, Lon: -0.1})

	suite.False(result.Valid)
	suite.Zero(result.Meters)
	suite.Zero(result.Km)
	suite.Zero(result.Miles)
	suite.mockGeomapping.AssertNotCalled(suite.T(), "RouteDistance", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GeodistanceServiceTestSuite) TestDistance_UsesRoadDistance() {
	service := services.NewGeodistanceService(suite.mockGeomapping)
	origin := domain.Coordinates{Lat: 51.5007, Lon: -0.1246}
	dest := domain.Coordinates{Lat: 51.5014, Lon: -0.1419}

	suite.mockGeomapping.On("RouteDistance", mock.Anything, origin, dest).Return(1530.0, 4*time.Minute, nil).Once()

	result := service.Distance(context.Background(), &origin, &dest)

	suite.True(result.Valid)
	suite.Equal(1530.0, result.Meters)
	suite.Equal(1.5, result.Km)
	suite.Equal(1.0, result.Miles)
	suite.mockGeomapping.AssertExpectations(suite.T())
}

func (suite *GeodistanceServiceTestSuite) TestDistance_FallsBackToGreatCircle() {
	service := services.NewGeodistanceService(suite.mockGeomapping)
	origin := domain.Coordinates{Lat: 51.5007, Lon: -0.1246}
	dest := domain.Coordinates{Lat: 51.5014, Lon: -0.1419}

	suite.mockGeomapping.On("RouteDistance", mock.Anything, origin, dest).Return(0.0, time.Duration(0), apperrors.ErrUnavailable).Once()

	result := service.Distance(context.Background(), &origin, &dest)

	// Westminster Bridge to Buckingham Palace is roughly 1.2km as the crow flies.
	suite.True(result.Valid)
	suite.InDelta(1200, result.Meters, 100)
	suite.Equal(1.2, result.Km)
}

func (suite *GeodistanceServiceTestSuite) TestDistance_NoProviderStillMeasures() {
	service := services.NewGeodistanceService(nil)
	origin := domain.Coordinates{Lat: 51.5, Lon: -0.1}
	dest := domain.Coordinates{Lat: 51.5, Lon: -0.1}

	result := service.Distance(context.Background(), &origin, &dest)

	suite.True(result.Valid)
	suite.Zero(result.Meters)
}

func TestGeodistanceService(t *testing.T) {
	suite.Run(t, new(GeodistanceServiceTestSuite))
}
