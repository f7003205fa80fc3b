package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"internal-tools-api/internal/dto"
	"internal-tools-api/internal/models"
	"internal-tools-api/internal/repositories"
	"internal-tools-api/internal/repositories/repository_mocks"
	"internal-tools-api/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ToolServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	toolRepo     *repository_mocks.MockToolRepositoryInterface
	categoryRepo *repository_mocks.MockCategoryRepositoryInterface
	metrics      *service_mocks.MockMetricsRecorderInterface
	service      ToolServiceInterface
	ctx          context.Context
}

func TestToolServiceSuite(t *testing.T) {
	suite.Run(t, new(ToolServiceTestSuite))
}

func (s *ToolServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.toolRepo = repository_mocks.NewMockToolRepositoryInterface(s.ctrl)
	s.categoryRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.service = NewToolService(s.toolRepo, s.categoryRepo, s.metrics, nil)
	s.ctx = context.Background()
}

func (s *ToolServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ToolServiceTestSuite) createRequest() *dto.CreateToolRequest {
	cost := decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2)
	description := gofakeit.Sentence(6)
	return &dto.CreateToolRequest{
		Name:            "  Linear  ",
		Description:     &description,
		Vendor:          gofakeit.Company(),
		CategoryID:      3,
		MonthlyCost:     &cost,
		OwnerDepartment: models.DepartmentEngineering,
	}
}

func (s *ToolServiceTestSuite) expectMutationMetrics(operation string) {
	s.metrics.EXPECT().IncrementCounter("tool.mutation", map[string]string{"operation": operation})
	s.toolRepo.EXPECT().CountByStatus(gomock.Any()).Return(map[models.ToolStatus]int64{
		models.ToolStatusActive: 4,
		models.ToolStatusTrial:  1,
	}, nil)
	s.metrics.EXPECT().RecordGauge("tools", float64(4), map[string]string{"status": "active"})
	s.metrics.EXPECT().RecordGauge("tools", float64(0), map[string]string{"status": "deprecated"})
	s.metrics.EXPECT().RecordGauge("tools", float64(1), map[string]string{"status": "trial"})
}

func (s *ToolServiceTestSuite) TestCreateTool_AppliesDefaults() {
	req := s.createRequest()

	s.categoryRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.Category{ID: 3, Name: "Development"}, nil)
	s.toolRepo.EXPECT().ExistsByName(gomock.Any(), "Linear", int64(0)).Return(false, nil)
	s.toolRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tool *models.Tool) error {
		s.Equal("Linear", tool.Name)
		s.Equal(models.ToolStatusActive, tool.Status)
		s.Equal(0, tool.ActiveUsersCount)
		s.True(tool.MonthlyCost.Equal(*req.MonthlyCost))
		tool.ID = 42
		return nil
	})
	s.expectMutationMetrics("create")

	tool, err := s.service.CreateTool(s.ctx, req)
	s.Require().NoError(err)
	s.Equal(int64(42), tool.ID)
}

func (s *ToolServiceTestSuite) TestCreateTool_ExplicitStatusAndUsers() {
	req := s.createRequest()
	trial := models.ToolStatusTrial
	users := 12
	req.Status = &trial
	req.ActiveUsersCount = &users

	s.categoryRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.Category{ID: 3}, nil)
	s.toolRepo.EXPECT().ExistsByName(gomock.Any(), "Linear", int64(0)).Return(false, nil)
	s.toolRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, tool *models.Tool) error {
		s.Equal(models.ToolStatusTrial, tool.Status)
		s.Equal(12, tool.ActiveUsersCount)
		return nil
	})
	s.expectMutationMetrics("create")

	_, err := s.service.CreateTool(s.ctx, req)
	s.NoError(err)
}

func (s *ToolServiceTestSuite) TestCreateTool_UnknownCategory() {
	s.categoryRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(nil, repositories.ErrCategoryNotFound)

	_, err := s.service.CreateTool(s.ctx, s.createRequest())
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *ToolServiceTestSuite) TestCreateTool_NameTaken() {
	s.categoryRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.Category{ID: 3}, nil)
	s.toolRepo.EXPECT().ExistsByName(gomock.Any(), "Linear", int64(0)).Return(true, nil)

	_, err := s.service.CreateTool(s.ctx, s.createRequest())
	s.ErrorIs(err, ErrToolNameTaken)
}

func (s *ToolServiceTestSuite) TestCreateTool_WriteErrors() {
	testCases := []struct {
		name     string
		repoErr  error
		expected error
	}{
		{"duplicate key", fmt.Errorf("failed to create tool: %w", repositories.ErrToolNameExists), ErrToolNameTaken},
		{"foreign key", repositories.ErrCategoryNotFound, ErrCategoryNotFound},
		{"model validation", fmt.Errorf("failed to create tool: %w", models.ErrInvalidMonthlyCost), ErrInvalidParameter},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.categoryRepo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.Category{ID: 3}, nil)
			s.toolRepo.EXPECT().ExistsByName(gomock.Any(), "Linear", int64(0)).Return(false, nil)
			s.toolRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(tc.repoErr)

			_, err := s.service.CreateTool(s.ctx, s.createRequest())
			s.ErrorIs(err, tc.expected)
		})
	}
}

func (s *ToolServiceTestSuite) TestGetTool() {
	s.toolRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&models.Tool{ID: 7, Name: "Figma"}, nil)

	tool, err := s.service.GetTool(s.ctx, 7)
	s.Require().NoError(err)
	s.Equal("Figma", tool.Name)
}

func (s *ToolServiceTestSuite) TestGetTool_NotFound() {
	s.toolRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, repositories.ErrToolNotFound)

	_, err := s.service.GetTool(s.ctx, 7)
	s.ErrorIs(err, ErrToolNotFound)
}

func (s *ToolServiceTestSuite) TestListTools_WrapsStoreError() {
	storeErr := errors.New("connection reset")
	s.toolRepo.EXPECT().GetAllWithFilters(gomock.Any(), models.ToolFilters{}, 0, 100).Return(nil, int64(0), storeErr)

	_, _, err := s.service.ListTools(s.ctx, models.ToolFilters{}, 0, 100)
	s.ErrorIs(err, storeErr)
}

func (s *ToolServiceTestSuite) TestUpdateTool_PartialFields() {
	existing := &models.Tool{
		ID:               7,
		Name:             "Figma",
		Vendor:           "Figma",
		CategoryID:       2,
		MonthlyCost:      decimal.RequireFromString("15.00"),
		ActiveUsersCount: 4,
		OwnerDepartment:  models.DepartmentDesign,
		Status:           models.ToolStatusActive,
	}
	users := 9
	deprecated := models.ToolStatusDeprecated

	s.toolRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(existing, nil)
	s.toolRepo.EXPECT().Update(gomock.Any(), existing).Return(nil)
	s.expectMutationMetrics("update")

	tool, err := s.service.UpdateTool(s.ctx, 7, &dto.UpdateToolRequest{ActiveUsersCount: &users, Status: &deprecated})
	s.Require().NoError(err)
	s.Equal(9, tool.ActiveUsersCount)
	s.Equal(models.ToolStatusDeprecated, tool.Status)
	s.Equal("Figma", tool.Name)
	s.Equal("15", tool.MonthlyCost.String())
}

func (s *ToolServiceTestSuite) TestUpdateTool_RenameChecksUniqueness() {
	existing := &models.Tool{ID: 7, Name: "Figma", CategoryID: 2}
	name := "Sketch"

	s.toolRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(existing, nil)
	s.toolRepo.EXPECT().ExistsByName(gomock.Any(), "Sketch", int64(7)).Return(true, nil)

	_, err := s.service.UpdateTool(s.ctx, 7, &dto.UpdateToolRequest{Name: &name})
	s.ErrorIs(err, ErrToolNameTaken)
}

func (s *ToolServiceTestSuite) TestUpdateTool_CategoryMustExist() {
	existing := &models.Tool{ID: 7, Name: "Figma", CategoryID: 2}
	categoryID := int64(99)

	s.toolRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(existing, nil)
	s.categoryRepo.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, repositories.ErrCategoryNotFound)

	_, err := s.service.UpdateTool(s.ctx, 7, &dto.UpdateToolRequest{CategoryID: &categoryID})
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *ToolServiceTestSuite) TestUpdateTool_EmptyRequest() {
	_, err := s.service.UpdateTool(s.ctx, 7, &dto.UpdateToolRequest{})
	s.ErrorIs(err, ErrNoFieldsToUpdate)
	s.ErrorIs(err, ErrInvalidParameter)
}

func (s *ToolServiceTestSuite) TestUpdateTool_NotFound() {
	name := "Sketch"
	s.toolRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(nil, repositories.ErrToolNotFound)

	_, err := s.service.UpdateTool(s.ctx, 7, &dto.UpdateToolRequest{Name: &name})
	s.ErrorIs(err, ErrToolNotFound)
}

func (s *ToolServiceTestSuite) TestDeleteTool() {
	s.toolRepo.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
	s.expectMutationMetrics("delete")

	s.NoError(s.service.DeleteTool(s.ctx, 7))
}

func (s *ToolServiceTestSuite) TestDeleteTool_NotFound() {
	s.toolRepo.EXPECT().Delete(gomock.Any(), int64(7)).Return(repositories.ErrToolNotFound)

	s.ErrorIs(s.service.DeleteTool(s.ctx, 7), ErrToolNotFound)
}

func (s *ToolServiceTestSuite) TestDeleteTool_GaugeRefreshFailureIsIgnored() {
	s.toolRepo.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)
	s.metrics.EXPECT().IncrementCounter("tool.mutation", gomock.Any())
	s.toolRepo.EXPECT().CountByStatus(gomock.Any()).Return(nil, errors.New("timeout"))

	s.NoError(s.service.DeleteTool(s.ctx, 7))
}

func TestSnapshotLoader_DelegatesToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	toolRepo := repository_mocks.NewMockToolRepositoryInterface(ctrl)
	loader := NewSnapshotLoader(toolRepo)

	toolRepo.EXPECT().FindByStatus(gomock.Any(), models.ToolStatusActive).Return([]models.Tool{{ID: 1}}, nil)
	toolRepo.EXPECT().FindLowUsage(gomock.Any(), 3).Return([]models.Tool{}, nil)

	active, err := loader.ActiveTools(context.Background())
	if err != nil || len(active) != 1 {
		t.Fatalf("unexpected active tools: %v, %v", active, err)
	}
	if _, err := loader.LowUsageTools(context.Background(), 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
