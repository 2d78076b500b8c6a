package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/domain"
	"github.com/backbencherstudio/digytalagency-healthcare-backend-sub000/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	orgID    string
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.orgID = uuid.NewString()
}

func (suite *ReportingServiceTestSuite) TestGetFulfilmentReport_ComputesRatesAndAverages() {
	ctx := context.Background()
	service := services.NewReportingService(suite.mockRepo)

	suite.mockRepo.On("GetFulfilmentCounts", ctx, suite.orgID).Return(10, 3, 4, nil).Once()
	suite.mockRepo.On("ListTimeToFillSamples", ctx, suite.orgID).Return([]domain.TimeToFillSample{
		{ShiftID: uuid.NewString(), TimeToFill: 2 * time.Hour},
		{ShiftID: uuid.NewString(), TimeToFill: 6 * time.Hour},
		{ShiftID: uuid.NewString(), TimeToFill: 28 * time.Hour, Approx: true},
	}, nil).Once()

	report, err := service.GetFulfilmentReport(ctx, suite.orgID)

	suite.Require().NoError(err)
	suite.Equal(10, report.TotalShifts)
	suite.Equal(3, report.AssignedShifts)
	suite.Equal(4, report.CompletedShifts)
	suite.InDelta(0.7, report.FillRate, 1e-9)
	suite.InDelta(12.0, report.AvgTimeToFillHours, 1e-9)
	suite.Equal(3, report.SampleCount)
	suite.Equal(1, report.ApproxSampleCount)
}

func (suite *ReportingServiceTestSuite) TestGetFulfilmentReport_NoShifts() {
	ctx := context.Background()
	service := services.NewReportingService(suite.mockRepo)

	suite.mockRepo.On("GetFulfilmentCounts", ctx, suite.orgID).Return(0, 0, 0, nil).Once()
	suite.mockRepo.On("ListTimeToFillSamples", ctx, suite.orgID).Return([]domain.TimeToFillSample{}, nil).Once()

	report, err := service.GetFulfilmentReport(ctx, suite.orgID)

	suite.Require().NoError(err)
	suite.Zero(report.FillRate)
	suite.Zero(report.AvgTimeToFillHours)
	suite.Zero(report.SampleCount)
}

func (suite *ReportingServiceTestSuite) TestGetFulfilmentReport_CountsError() {
	ctx := context.Background()
	service := services.NewReportingService(suite.mockRepo)

	suite.mockRepo.On("GetFulfilmentCounts", ctx, suite.orgID).Return(0, 0, 0, assert.AnError).Once()

	report, err := service.GetFulfilmentReport(ctx, suite.orgID)

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, assert.AnError)
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
