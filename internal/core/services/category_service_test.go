package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/core/services"
	"github.com/SscSPs/money_planner/internal/dto"
)

type ReferenceDataTestSuite struct {
	suite.Suite
	ctx          context.Context
	categoryRepo *MockCategoryRepository
	tagRepo      *MockTagRepository
	categories   portssvc.CategorySvcFacade
	tags         portssvc.TagSvcFacade
}

func (suite *ReferenceDataTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.categoryRepo = new(MockCategoryRepository)
	suite.tagRepo = new(MockTagRepository)
	suite.categories = services.NewCategoryService(suite.categoryRepo)
	suite.tags = services.NewTagService(suite.tagRepo)
}

func (suite *ReferenceDataTestSuite) TearDownTest() {
	suite.categoryRepo.AssertExpectations(suite.T())
	suite.tagRepo.AssertExpectations(suite.T())
}

func (suite *ReferenceDataTestSuite) TestCreateCategory() {
	suite.categoryRepo.On("SaveCategory", suite.ctx, mock.MatchedBy(func(c domain.Category) bool {
		return c.Name == "Groceries" && c.UserID == testUserID && c.Type == domain.Expense
	})).Return(nil).Once()

	category, err := suite.categories.CreateCategory(suite.ctx, testUserID, dto.CreateCategoryRequest{Name: " Groceries ", Type: domain.Expense})

	suite.Require().NoError(err)
	suite.NotEmpty(category.CategoryID)
}

func (suite *ReferenceDataTestSuite) TestCreateCategory_Duplicate() {
	suite.categoryRepo.On("SaveCategory", suite.ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.categories.CreateCategory(suite.ctx, testUserID, dto.CreateCategoryRequest{Name: "Salary", Type: domain.Income})

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ReferenceDataTestSuite) TestDeleteCategory_ChecksOwner() {
	suite.categoryRepo.On("FindCategoryByID", suite.ctx, "cat-mine").
		Return(&domain.Category{CategoryID: "cat-mine", UserID: testUserID}, nil).Once()
	suite.categoryRepo.On("FindCategoryByID", suite.ctx, "cat-theirs").
		Return(&domain.Category{CategoryID: "cat-theirs", UserID: "someone-else"}, nil).Once()
	suite.categoryRepo.On("DeleteCategory", suite.ctx, "cat-mine").Return(nil).Once()

	suite.NoError(suite.categories.DeleteCategory(suite.ctx, testUserID, "cat-mine"))
	suite.ErrorIs(suite.categories.DeleteCategory(suite.ctx, testUserID, "cat-theirs"), apperrors.ErrNotFound)
	suite.categoryRepo.AssertNotCalled(suite.T(), "DeleteCategory", suite.ctx, "cat-theirs")
}

func (suite *ReferenceDataTestSuite) TestListCategories_ByType() {
	income := domain.Income
	suite.categoryRepo.On("ListCategories", suite.ctx, testUserID, &income).
		Return([]domain.Category{{CategoryID: "cat-1", Type: domain.Income}}, nil).Once()

	categories, err := suite.categories.ListCategories(suite.ctx, testUserID, &income)

	suite.Require().NoError(err)
	suite.Len(categories, 1)
}

func (suite *ReferenceDataTestSuite) TestTags() {
	suite.tagRepo.On("SaveTag", suite.ctx, mock.AnythingOfType("domain.Tag")).Return(nil).Once()
	suite.tagRepo.On("FindTagByID", suite.ctx, "tag-theirs").
		Return(&domain.Tag{TagID: "tag-theirs", UserID: "someone-else"}, nil).Once()
	suite.tagRepo.On("FindTagByID", suite.ctx, "tag-missing").Return(nil, apperrors.ErrNotFound).Once()

	tag, err := suite.tags.CreateTag(suite.ctx, testUserID, dto.CreateTagRequest{Name: "vacation"})
	suite.Require().NoError(err)
	suite.Equal("vacation", tag.Name)

	_, err = suite.tags.GetTagByID(suite.ctx, testUserID, "tag-theirs")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.ErrorIs(suite.tags.DeleteTag(suite.ctx, testUserID, "tag-missing"), apperrors.ErrNotFound)
}

func TestReferenceDataTestSuite(t *testing.T) {
	suite.Run(t, new(ReferenceDataTestSuite))
}
