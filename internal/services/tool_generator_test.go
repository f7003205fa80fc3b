package services

import (
	"testing"

	"internal-tools-api/internal/models"
	"internal-tools-api/internal/money"
	"internal-tools-api/internal/validation"

	"github.com/stretchr/testify/suite"
)

type ToolGeneratorTestSuite struct {
	suite.Suite
	generator  *toolGenerator
	categories []models.Category
}

func TestToolGeneratorSuite(t *testing.T) {
	suite.Run(t, new(ToolGeneratorTestSuite))
}

func (s *ToolGeneratorTestSuite) SetupTest() {
	s.generator = NewToolGenerator().(*toolGenerator)
	s.categories = []models.Category{
		{ID: 1, Name: "Communication"},
		{ID: 2, Name: "Development"},
		{ID: 3, Name: "Design"},
	}
}

func (s *ToolGeneratorTestSuite) TestProductPool_IsConsistent() {
	for _, product := range s.generator.productPool {
		s.NotEmpty(product.Name)
		s.NotEmpty(product.Vendor)
		s.LessOrEqual(product.MinCost, product.MaxCost, "cost range of %s", product.Name)
	}
}

func (s *ToolGeneratorTestSuite) TestGenerateTools_ProducesValidRequests() {
	requests := s.generator.GenerateTools(s.categories, 200)
	s.Len(requests, 200)

	validCategory := map[int64]bool{1: true, 2: true, 3: true}
	for i := range requests {
		req := requests[i]
		s.NoError(validation.GetValidator().Struct(&req), "request %d: %s", i, req.Name)
		s.True(validCategory[req.CategoryID])
		s.True(money.HasMaxScale(*req.MonthlyCost, money.ScaleMoney))
		s.GreaterOrEqual(*req.ActiveUsersCount, 0)
	}
}

func (s *ToolGeneratorTestSuite) TestGenerateTools_MatchesCategoryByName() {
	requests := s.generator.GenerateTools([]models.Category{{ID: 9, Name: "communication"}}, 50)
	for _, req := range requests {
		s.Equal(int64(9), req.CategoryID)
	}
}

func (s *ToolGeneratorTestSuite) TestGenerateTools_NothingToDo() {
	s.Empty(s.generator.GenerateTools(nil, 10))
	s.Empty(s.generator.GenerateTools(s.categories, 0))
}
