package repositories

import (
	"context"
	"testing"

	"internal-tools-api/internal/database"
	"internal-tools-api/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/suite"
)

type CategoryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
	ctx  context.Context
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) TestCreate_AppliesDefaultColor() {
	description := gofakeit.Sentence(4)
	category := &models.Category{Name: "Analytics", Description: &description}

	s.Require().NoError(s.repo.Create(s.ctx, category))
	s.NotZero(category.ID)
	s.Equal(models.DefaultCategoryColor, category.ColorHex)
}

func (s *CategoryRepositorySuite) TestCreate_DuplicateName() {
	s.Require().NoError(s.repo.Create(s.ctx, &models.Category{Name: "Analytics"}))

	err := s.repo.Create(s.ctx, &models.Category{Name: "Analytics"})
	s.ErrorIs(err, ErrCategoryNameExists)
}

func (s *CategoryRepositorySuite) TestGetByID() {
	created := database.CreateTestCategory(s.T(), s.db, "Design")

	category, err := s.repo.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("Design", category.Name)

	_, err = s.repo.GetByID(s.ctx, created.ID+100)
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestGetAll_OrderedByName() {
	for _, name := range []string{"Development", "Analytics", "Communication"} {
		database.CreateTestCategory(s.T(), s.db, name)
	}

	categories, err := s.repo.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(categories, 3)
	s.Equal("Analytics", categories[0].Name)
	s.Equal("Communication", categories[1].Name)
	s.Equal("Development", categories[2].Name)
}

func (s *CategoryRepositorySuite) TestGetAll_Empty() {
	categories, err := s.repo.GetAll(s.ctx)
	s.NoError(err)
	s.Empty(categories)
}
