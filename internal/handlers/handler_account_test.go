package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/dto"
	"github.com/SscSPs/money_planner/internal/handlers"
	"github.com/SscSPs/money_planner/internal/middleware"
	"github.com/SscSPs/money_planner/internal/utils"
)

// --- Test Suite ---
type ReferenceHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockAccountService  *MockAccountService
	mockCategoryService *MockCategoryService
	mockTagService      *MockTagService
	userID              string
	token               string
}

func (suite *ReferenceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockAccountService = new(MockAccountService)
	suite.mockCategoryService = new(MockCategoryService)
	suite.mockTagService = new(MockTagService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(testJWTSecret))
	handlers.RegisterAccountRoutes(v1, suite.mockAccountService)
	handlers.RegisterCategoryRoutes(v1, suite.mockCategoryService)
	handlers.RegisterTagRoutes(v1, suite.mockTagService)

	suite.userID = uuid.NewString()
	token, err := utils.GenerateJWT(suite.userID, testJWTSecret, time.Hour, "planner-test")
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *ReferenceHandlerTestSuite) TearDownTest() {
	suite.mockAccountService.AssertExpectations(suite.T())
	suite.mockCategoryService.AssertExpectations(suite.T())
	suite.mockTagService.AssertExpectations(suite.T())
}

func (suite *ReferenceHandlerTestSuite) do(method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReferenceHandlerTestSuite) TestCreateAccount_Success() {
	now := time.Now().UTC()
	account := &domain.Account{
		AccountID:    uuid.NewString(),
		UserID:       suite.userID,
		Name:         "Wallet",
		AccountType:  domain.Cash,
		CurrencyCode: "USD",
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(suite.userID, now),
	}
	suite.mockAccountService.On("CreateAccount", mock.Anything, suite.userID, dto.CreateAccountRequest{
		Name:        "Wallet",
		AccountType: domain.Cash,
	}).Return(account, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", `{"name":"Wallet","accountType":"CASH"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(account.AccountID, resp.AccountID)
	suite.Equal("USD", resp.CurrencyCode)
	suite.True(resp.IsActive)
}

func (suite *ReferenceHandlerTestSuite) TestCreateAccount_InvalidType() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", `{"name":"Wallet","accountType":"ASSET"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReferenceHandlerTestSuite) TestListAccounts_Pagination() {
	suite.mockAccountService.On("ListAccounts", mock.Anything, suite.userID, 5, 10).Return([]domain.Account{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts?limit=5&offset=10", "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"accounts":[]}`, w.Body.String())
}

func (suite *ReferenceHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, suite.userID, "acc-x").
		Return(nil, apperrors.NewNotFoundError("account", "acc-x")).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-x", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ReferenceHandlerTestSuite) TestDeactivateAccount() {
	suite.mockAccountService.On("DeactivateAccount", mock.Anything, suite.userID, "acc-1").Return(nil).Once()
	suite.mockAccountService.On("DeactivateAccount", mock.Anything, suite.userID, "acc-1").
		Return(fmt.Errorf("%w: account is already inactive", apperrors.ErrValidation)).Once()

	w := suite.do(http.MethodDelete, "/api/v1/accounts/acc-1", "")
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/accounts/acc-1", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ReferenceHandlerTestSuite) TestListCategories_TypeFilter() {
	expense := domain.Expense
	categories := []domain.Category{{CategoryID: "cat-1", UserID: suite.userID, Name: "Rent", Type: domain.Expense}}
	suite.mockCategoryService.On("ListCategories", mock.Anything, suite.userID, &expense).Return(categories, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/categories?type=EXPENSE", "")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListCategoriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Categories, 1)
	suite.Equal("Rent", resp.Categories[0].Name)
}

func (suite *ReferenceHandlerTestSuite) TestCreateCategory_Duplicate() {
	suite.mockCategoryService.On("CreateCategory", mock.Anything, suite.userID, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	w := suite.do(http.MethodPost, "/api/v1/categories", `{"name":"Rent","type":"EXPENSE","color":"#ff0000"}`)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ReferenceHandlerTestSuite) TestTags() {
	tag := &domain.Tag{TagID: "tag-1", UserID: suite.userID, Name: "home"}
	suite.mockTagService.On("CreateTag", mock.Anything, suite.userID, dto.CreateTagRequest{Name: "home"}).Return(tag, nil).Once()
	suite.mockTagService.On("DeleteTag", mock.Anything, suite.userID, "tag-1").Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/tags", `{"name":"home"}`)
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/tags/tag-1", "")
	suite.Equal(http.StatusNoContent, w.Code)
}

// --- Run Test Suite ---
func TestReferenceHandlers(t *testing.T) {
	suite.Run(t, new(ReferenceHandlerTestSuite))
}
