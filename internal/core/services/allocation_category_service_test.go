package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/school_fund_ledger/internal/apperrors"
	"github.com/SscSPs/school_fund_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/school_fund_ledger/internal/core/ports/services"
	"github.com/SscSPs/school_fund_ledger/internal/core/services"
	"github.com/SscSPs/school_fund_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AllocationCategoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCategoryRepository
	service  portssvc.AllocationCategorySvc
	existing []domain.AllocationCategory
}

func (suite *AllocationCategoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCategoryRepository)
	suite.service = services.NewAllocationCategoryService(suite.mockRepo)
	suite.existing = []domain.AllocationCategory{
		{CategoryID: "c-1", Name: "Salaires", Percentage: decimal.NewFromInt(60), SortOrder: 1},
		{CategoryID: "c-2", Name: "Fonctionnement", Percentage: decimal.NewFromInt(30), SortOrder: 2},
	}
}

func (suite *AllocationCategoryServiceTestSuite) TestCreateCategory_Success() {
	ctx := context.Background()
	req := dto.CreateAllocationCategoryRequest{Name: " Entretien ", Percentage: decimal.NewFromInt(10), SortOrder: 3}
	suite.mockRepo.On("ListCategories", ctx).Return(suite.existing, nil).Once()
	suite.mockRepo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.AllocationCategory) bool {
		return c.Name == "Entretien" && c.CategoryID != "" && c.CreatedBy == director.UserID
	})).Return(nil).Once()

	category, err := suite.service.CreateCategory(ctx, req, *director)

	suite.Require().NoError(err)
	suite.Equal("Entretien", category.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AllocationCategoryServiceTestSuite) TestCreateCategory_Forbidden() {
	req := dto.CreateAllocationCategoryRequest{Name: "Entretien", Percentage: decimal.NewFromInt(5)}

	_, err := suite.service.CreateCategory(context.Background(), req, *accountant)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)
}

func (suite *AllocationCategoryServiceTestSuite) TestCreateCategory_PercentageOutOfRange() {
	for _, pct := range []int64{-1, 101} {
		req := dto.CreateAllocationCategoryRequest{Name: "Entretien", Percentage: decimal.NewFromInt(pct)}
		_, err := suite.service.CreateCategory(context.Background(), req, *director)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *AllocationCategoryServiceTestSuite) TestCreateCategory_TotalAbove100() {
	ctx := context.Background()
	suite.mockRepo.On("ListCategories", ctx).Return(suite.existing, nil).Once()
	req := dto.CreateAllocationCategoryRequest{Name: "Entretien", Percentage: decimal.NewFromInt(11)}

	_, err := suite.service.CreateCategory(ctx, req, *director)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "101")
}

func (suite *AllocationCategoryServiceTestSuite) TestCreateCategory_DuplicateName() {
	ctx := context.Background()
	suite.mockRepo.On("ListCategories", ctx).Return(suite.existing, nil).Once()
	req := dto.CreateAllocationCategoryRequest{Name: "salaires", Percentage: decimal.NewFromInt(1)}

	_, err := suite.service.CreateCategory(ctx, req, *director)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AllocationCategoryServiceTestSuite) TestUpdateCategory_ExcludesItselfFromTotal() {
	ctx := context.Background()
	current := suite.existing[0]
	suite.mockRepo.On("FindCategoryByID", ctx, "c-1").Return(&current, nil).Once()
	suite.mockRepo.On("ListCategories", ctx).Return(suite.existing, nil).Once()
	suite.mockRepo.On("UpdateCategory", ctx, mock.MatchedBy(func(c domain.AllocationCategory) bool {
		return c.CategoryID == "c-1" && c.Percentage.Equal(decimal.NewFromInt(70))
	})).Return(nil).Once()
	pct := decimal.NewFromInt(70)

	category, err := suite.service.UpdateCategory(ctx, "c-1", dto.UpdateAllocationCategoryRequest{Percentage: &pct}, *director)

	suite.Require().NoError(err)
	suite.Equal("Salaires", category.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AllocationCategoryServiceTestSuite) TestDeleteCategory_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCategoryByID", ctx, "c-9").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteCategory(ctx, "c-9", *director)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteCategory", mock.Anything, mock.Anything)
}

func (suite *AllocationCategoryServiceTestSuite) TestDeleteCategory_Success() {
	ctx := context.Background()
	current := suite.existing[1]
	suite.mockRepo.On("FindCategoryByID", ctx, "c-2").Return(&current, nil).Once()
	suite.mockRepo.On("DeleteCategory", ctx, "c-2").Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteCategory(ctx, "c-2", domain.User{UserID: "u-adm", Role: domain.RoleAdmin}))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAllocationCategoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationCategoryServiceTestSuite))
}
