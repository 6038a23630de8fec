package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/core/recurrence"
	"github.com/SscSPs/money_planner/internal/core/services"
	"github.com/SscSPs/money_planner/internal/dto"
)

const testUserID = "user-1"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

// rentRoot is "rent, 1500 every month on the 31st" starting 2025-01-31.
func rentRoot() *domain.Transaction {
	start := day(2025, time.January, 31)
	return &domain.Transaction{
		TransactionID: "root-rent",
		UserID:        testUserID,
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(1500),
		Description:   "Rent",
		DueDate:       start,
		Status:        domain.StatusPending,
		StartDate:     &start,
		DayOfMonth:    ptr(31),
		IsFixed:       true,
	}
}

// tvRoot is "TV, 3 installments of 200" starting 2025-05-10.
func tvRoot() *domain.Transaction {
	start := day(2025, time.May, 10)
	end := day(2025, time.July, 10)
	return &domain.Transaction{
		TransactionID: "root-tv",
		UserID:        testUserID,
		Type:          domain.Expense,
		Amount:        decimal.NewFromInt(200),
		Description:   "TV",
		DueDate:       start,
		Status:        domain.StatusPending,
		StartDate:     &start,
		DayOfMonth:    ptr(10),
		Installments:  ptr(3),
		EndDate:       &end,
	}
}

type TransactionServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	txnRepo      *MockTransactionRepository
	accountRepo  *MockAccountRepository
	categoryRepo *MockCategoryRepository
	tagRepo      *MockTagRepository
	service      portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.txnRepo = new(MockTransactionRepository)
	suite.accountRepo = new(MockAccountRepository)
	suite.categoryRepo = new(MockCategoryRepository)
	suite.tagRepo = new(MockTagRepository)

	clock := recurrence.FixedClock(day(2025, time.June, 15))
	ids := 0
	suite.service = services.NewTransactionService(
		suite.txnRepo, suite.accountRepo, suite.categoryRepo, suite.tagRepo,
		services.WithClock(clock),
		services.WithTransactionIDGenerator(func() string { return "new-root" }),
		services.WithPlanner(recurrence.NewPlanner(
			recurrence.WithPlannerClock(clock),
			recurrence.WithIDGenerator(func() string {
				ids++
				return "ov-" + string(rune('0'+ids))
			}),
		)),
	)

	suite.txnRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (suite *TransactionServiceTestSuite) TearDownTest() {
	suite.txnRepo.AssertExpectations(suite.T())
	suite.accountRepo.AssertExpectations(suite.T())
	suite.categoryRepo.AssertExpectations(suite.T())
	suite.tagRepo.AssertExpectations(suite.T())
}

// expectLockedRoot sets up the first half of a mutation: begin, lock, load overrides.
func (suite *TransactionServiceTestSuite) expectLockedRoot(root *domain.Transaction, overrides []domain.Transaction) {
	suite.txnRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.txnRepo.On("FindRootForUpdate", mock.Anything, mock.Anything, testUserID, root.TransactionID).Return(root, nil).Once()
	suite.txnRepo.On("FindOverridesByRootIDInTx", mock.Anything, mock.Anything, root.TransactionID).Return(overrides, nil).Once()
}

// --- Create ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InstallmentSeries() {
	req := dto.CreateTransactionRequest{
		Type:         domain.Expense,
		Amount:       decimal.NewFromInt(250),
		Description:  "  Laptop ",
		DueDate:      "2025-01-31",
		Installments: ptr(12),
		TagIDs:       []string{"tag-1", "tag-1"},
	}
	suite.tagRepo.On("FindTagsByIDs", mock.Anything, []string{"tag-1"}).
		Return(map[string]domain.Tag{"tag-1": {TagID: "tag-1", UserID: testUserID}}, nil).Once()
	suite.txnRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, testUserID, req)

	suite.Require().NoError(err)
	suite.Equal("new-root", txn.TransactionID)
	suite.Equal("Laptop", txn.Description)
	suite.Equal(domain.SeriesInstallment, txn.Kind())
	suite.Equal(31, *txn.DayOfMonth)
	suite.Equal(day(2025, time.January, 31), txn.DueDate)
	suite.Equal(day(2025, time.December, 31), *txn.EndDate)
	suite.Equal(domain.StatusPending, txn.Status)
	suite.Equal([]string{"tag-1"}, txn.TagIDs)
	suite.Equal(testUserID, txn.CreatedBy)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_PaidOneOff() {
	req := dto.CreateTransactionRequest{
		Type:        domain.Income,
		Amount:      decimal.NewFromInt(90),
		Description: "Refund",
		DueDate:     "2025-06-01",
		Status:      ptr(domain.StatusPaid),
	}
	suite.txnRepo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(suite.ctx, testUserID, req)

	suite.Require().NoError(err)
	suite.Equal(domain.SeriesSingle, txn.Kind())
	suite.Require().NotNil(txn.PaidAt)
	suite.Equal(day(2025, time.June, 15), *txn.PaidAt)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Invalid() {
	tests := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{"fixed and installments", dto.CreateTransactionRequest{Type: domain.Expense, Amount: decimal.NewFromInt(1), Description: "x", DueDate: "2025-01-01", IsFixed: true, Installments: ptr(3)}},
		{"zero amount", dto.CreateTransactionRequest{Type: domain.Expense, Amount: decimal.Zero, Description: "x", DueDate: "2025-01-01"}},
		{"bad date", dto.CreateTransactionRequest{Type: domain.Expense, Amount: decimal.NewFromInt(1), Description: "x", DueDate: "01/02/2025"}},
		{"end before start", dto.CreateTransactionRequest{Type: domain.Expense, Amount: decimal.NewFromInt(1), Description: "x", DueDate: "2025-05-01", IsFixed: true, EndDate: ptr("2025-01-01")}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateTransaction(suite.ctx, testUserID, tt.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.txnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ForeignReferences() {
	suite.categoryRepo.On("FindCategoryByID", mock.Anything, "cat-other").
		Return(&domain.Category{CategoryID: "cat-other", UserID: "someone-else", Type: domain.Expense}, nil).Once()
	suite.categoryRepo.On("FindCategoryByID", mock.Anything, "cat-income").
		Return(&domain.Category{CategoryID: "cat-income", UserID: testUserID, Type: domain.Income}, nil).Once()
	suite.accountRepo.On("FindAccountByID", mock.Anything, "acc-closed").
		Return(&domain.Account{AccountID: "acc-closed", UserID: testUserID, IsActive: false}, nil).Once()

	base := dto.CreateTransactionRequest{Type: domain.Expense, Amount: decimal.NewFromInt(10), Description: "x", DueDate: "2025-01-01"}

	req := base
	req.CategoryID = ptr("cat-other")
	_, err := suite.service.CreateTransaction(suite.ctx, testUserID, req)
	suite.ErrorIs(err, apperrors.ErrValidation)

	req = base
	req.CategoryID = ptr("cat-income")
	_, err = suite.service.CreateTransaction(suite.ctx, testUserID, req)
	suite.ErrorIs(err, apperrors.ErrValidation)

	req = base
	req.AccountID = ptr("acc-closed")
	_, err = suite.service.CreateTransaction(suite.ctx, testUserID, req)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Get ---

func (suite *TransactionServiceTestSuite) TestGetTransaction_VirtualIDPrefersOverride() {
	root := rentRoot()
	forDate := day(2025, time.March, 31)
	parent := root.TransactionID
	ov := domain.Transaction{
		TransactionID: "ov-march", UserID: testUserID, Type: domain.Expense,
		Amount: decimal.NewFromInt(1800), Description: "Rent", DueDate: day(2025, time.March, 28),
		Status: domain.StatusPaid, IsOverride: true, ParentTransactionID: &parent, OverrideForDate: &forDate,
	}
	suite.txnRepo.On("FindTransactionByID", mock.Anything, testUserID, "root-rent").Return(root, nil).Once()
	suite.txnRepo.On("FindOverridesByRootIDs", mock.Anything, []string{"root-rent"}).
		Return(map[string][]domain.Transaction{"root-rent": {ov}}, nil).Once()

	occ, err := suite.service.GetTransaction(suite.ctx, testUserID, "root-rent::2025-03")

	suite.Require().NoError(err)
	suite.Equal("ov-march", occ.ID)
	suite.True(occ.IsOverride)
	suite.True(occ.Amount.Equal(decimal.NewFromInt(1800)))
	suite.Equal(day(2025, time.March, 28), occ.DueDate)
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_ClampedVirtualOccurrence() {
	suite.txnRepo.On("FindTransactionByID", mock.Anything, testUserID, "root-rent").Return(rentRoot(), nil).Once()
	suite.txnRepo.On("FindOverridesByRootIDs", mock.Anything, []string{"root-rent"}).
		Return(map[string][]domain.Transaction{}, nil).Once()

	occ, err := suite.service.GetTransaction(suite.ctx, testUserID, "root-rent::2025-02")

	suite.Require().NoError(err)
	suite.Equal("root-rent::2025-02", occ.ID)
	suite.True(occ.IsVirtual)
	suite.Equal(day(2025, time.February, 28), occ.DueDate)
	suite.Equal(domain.StatusOverdue, occ.Status)
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_NotFound() {
	cancelled := rentRoot()
	cancelled.CancelledOccurrences = []string{"2025-04"}
	suite.txnRepo.On("FindTransactionByID", mock.Anything, testUserID, "root-rent").Return(cancelled, nil).Twice()
	suite.txnRepo.On("FindOverridesByRootIDs", mock.Anything, []string{"root-rent"}).
		Return(map[string][]domain.Transaction{}, nil).Twice()
	suite.txnRepo.On("FindTransactionByID", mock.Anything, testUserID, "missing").Return(nil, apperrors.ErrNotFound).Once()

	for _, id := range []string{"root-rent::2025-04", "root-rent::2024-12", "missing"} {
		_, err := suite.service.GetTransaction(suite.ctx, testUserID, id)
		suite.ErrorIs(err, apperrors.ErrNotFound, id)
	}
}

// --- List ---

func (suite *TransactionServiceTestSuite) TestListTransactions_ExpandsSortsAndPages() {
	suite.txnRepo.On("ListRootTransactions", mock.Anything, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.UserID == testUserID && f.From.Equal(day(2025, time.May, 1)) && f.To.Equal(day(2025, time.June, 30))
	})).Return([]domain.Transaction{*rentRoot(), *tvRoot()}, nil).Twice()
	suite.txnRepo.On("FindOverridesByRootIDs", mock.Anything, []string{"root-rent", "root-tv"}).
		Return(map[string][]domain.Transaction{}, nil).Twice()

	params := dto.ListTransactionsParams{StartDate: "2025-05-01", EndDate: "2025-06-30", Limit: 3}
	first, err := suite.service.ListTransactions(suite.ctx, testUserID, params)
	suite.Require().NoError(err)

	ids := func(resp *dto.ListTransactionsResponse) []string {
		var out []string
		for _, o := range resp.Transactions {
			out = append(out, o.ID)
		}
		return out
	}
	suite.Equal([]string{"root-tv::2025-05", "root-rent::2025-05", "root-tv::2025-06"}, ids(first))
	suite.Require().NotNil(first.NextToken)

	params.NextToken = first.NextToken
	second, err := suite.service.ListTransactions(suite.ctx, testUserID, params)
	suite.Require().NoError(err)
	suite.Equal([]string{"root-rent::2025-06"}, ids(second))
	suite.Nil(second.NextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_GroupsInstallments() {
	suite.txnRepo.On("ListRootTransactions", mock.Anything, mock.Anything).
		Return([]domain.Transaction{*rentRoot(), *tvRoot()}, nil).Once()
	suite.txnRepo.On("FindOverridesByRootIDs", mock.Anything, []string{"root-rent", "root-tv"}).
		Return(map[string][]domain.Transaction{}, nil).Once()

	resp, err := suite.service.ListTransactions(suite.ctx, testUserID, dto.ListTransactionsParams{Month: "2025-06", GroupInstallments: true})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("root-rent::2025-06", resp.Transactions[0].ID)
	suite.Require().Len(resp.Installments, 1)
	group := resp.Installments[0]
	suite.Equal("root-tv", group.RootID)
	suite.Equal(3, group.Total)
	suite.True(group.TotalAmount.Equal(decimal.NewFromInt(600)))
	suite.Equal("2025-07-10", group.LastDueDate)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BadInput() {
	suite.txnRepo.On("ListRootTransactions", mock.Anything, mock.Anything).Return([]domain.Transaction{}, nil).Once()
	suite.txnRepo.On("FindOverridesByRootIDs", mock.Anything, []string{}).Return(map[string][]domain.Transaction{}, nil).Once()

	_, err := suite.service.ListTransactions(suite.ctx, testUserID, dto.ListTransactionsParams{StartDate: "2025-06-01", EndDate: "2025-05-01"})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.ListTransactions(suite.ctx, testUserID, dto.ListTransactionsParams{NextToken: ptr("%%%")})
	suite.ErrorIs(err, apperrors.ErrValidation)
	var appErr *apperrors.AppError
	suite.ErrorAs(err, &appErr)
}

// --- Mutations ---

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_SingleCreatesOverride() {
	root := rentRoot()
	suite.expectLockedRoot(root, []domain.Transaction{})
	suite.txnRepo.On("ApplyPlanInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(p recurrence.Plan) bool {
		return !p.RootChanged && len(p.CreateOverrides) == 1 &&
			p.CreateOverrides[0].Amount.Equal(decimal.NewFromInt(1800)) &&
			p.CreateOverrides[0].OverrideForDate.Equal(day(2025, time.March, 31))
	})).Return(nil).Once()

	forDate := day(2025, time.March, 31)
	parent := root.TransactionID
	written := domain.Transaction{
		TransactionID: "ov-1", UserID: testUserID, Type: domain.Expense, Amount: decimal.NewFromInt(1800),
		Description: "Rent", DueDate: forDate, Status: domain.StatusPending,
		IsOverride: true, ParentTransactionID: &parent, OverrideForDate: &forDate,
	}
	suite.txnRepo.On("FindRootForUpdate", mock.Anything, mock.Anything, testUserID, "root-rent").Return(root, nil).Once()
	suite.txnRepo.On("FindOverridesByRootIDInTx", mock.Anything, mock.Anything, "root-rent").Return([]domain.Transaction{written}, nil).Once()
	suite.txnRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	amount := decimal.NewFromInt(1800)
	occ, err := suite.service.UpdateTransaction(suite.ctx, testUserID, "root-rent::2025-03", recurrence.ScopeSingle, dto.UpdateTransactionRequest{Amount: &amount})

	suite.Require().NoError(err)
	suite.Require().NotNil(occ)
	suite.Equal("ov-1", occ.ID)
	suite.True(occ.IsOverride)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_DuplicateOverrideIsConflict() {
	suite.expectLockedRoot(rentRoot(), []domain.Transaction{})
	suite.txnRepo.On("ApplyPlanInTx", mock.Anything, mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	desc := "Rent (new flat)"
	_, err := suite.service.UpdateTransaction(suite.ctx, testUserID, "root-rent::2025-03", recurrence.ScopeSingle, dto.UpdateTransactionRequest{Description: &desc})

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.txnRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.txnRepo.AssertCalled(suite.T(), "Rollback", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_ApplyFailureRollsBack() {
	dbErr := errors.New("connection reset by peer")
	suite.expectLockedRoot(rentRoot(), []domain.Transaction{})
	suite.txnRepo.On("ApplyPlanInTx", mock.Anything, mock.Anything, mock.Anything).Return(dbErr).Once()

	err := suite.service.DeleteTransaction(suite.ctx, testUserID, "root-rent::2025-04", recurrence.ScopeFuture)

	suite.ErrorIs(err, dbErr)
	suite.txnRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.txnRepo.AssertCalled(suite.T(), "Rollback", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_Rejected() {
	_, err := suite.service.UpdateTransaction(suite.ctx, testUserID, "root-rent::2025-03", recurrence.ScopeSingle, dto.UpdateTransactionRequest{})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.expectLockedRoot(rentRoot(), []domain.Transaction{})
	amount := decimal.NewFromInt(5)
	_, err = suite.service.UpdateTransaction(suite.ctx, testUserID, "root-rent::2025-03", recurrence.Scope("everything"), dto.UpdateTransactionRequest{Amount: &amount})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.txnRepo.AssertNotCalled(suite.T(), "ApplyPlanInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_AllByRealID() {
	root := tvRoot()
	suite.txnRepo.On("FindTransactionByID", mock.Anything, testUserID, "root-tv").Return(root, nil).Once()
	suite.expectLockedRoot(root, []domain.Transaction{})
	suite.txnRepo.On("ApplyPlanInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(p recurrence.Plan) bool {
		return p.DeleteRoot && p.Root.TransactionID == "root-tv"
	})).Return(nil).Once()
	suite.txnRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	err := suite.service.DeleteTransaction(suite.ctx, testUserID, "root-tv", recurrence.ScopeAll)

	suite.NoError(err)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_SingleIsIdempotent() {
	root := rentRoot()
	root.CancelledOccurrences = []string{"2025-03"}
	suite.expectLockedRoot(root, []domain.Transaction{})
	// Read back after the (empty) plan.
	suite.txnRepo.On("FindRootForUpdate", mock.Anything, mock.Anything, testUserID, "root-rent").Return(root, nil).Once()
	suite.txnRepo.On("FindOverridesByRootIDInTx", mock.Anything, mock.Anything, "root-rent").Return([]domain.Transaction{}, nil).Once()
	suite.txnRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	err := suite.service.DeleteTransaction(suite.ctx, testUserID, "root-rent::2025-03", recurrence.ScopeSingle)

	suite.NoError(err)
	suite.txnRepo.AssertNotCalled(suite.T(), "ApplyPlanInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_MissingRoot() {
	suite.txnRepo.On("Begin", mock.Anything).Return(nil, nil).Once()
	suite.txnRepo.On("FindRootForUpdate", mock.Anything, mock.Anything, testUserID, "gone").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(suite.ctx, testUserID, "gone::2025-03", recurrence.ScopeSingle)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestSetPaid_OneOffEditsRoot() {
	root := &domain.Transaction{
		TransactionID: "one-off", UserID: testUserID, Type: domain.Expense, Amount: decimal.NewFromInt(40),
		Description: "Dentist", DueDate: day(2025, time.June, 20), Status: domain.StatusPending,
	}
	suite.txnRepo.On("FindTransactionByID", mock.Anything, testUserID, "one-off").Return(root, nil).Once()
	suite.expectLockedRoot(root, []domain.Transaction{})
	var applied recurrence.Plan
	suite.txnRepo.On("ApplyPlanInTx", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { applied = args.Get(2).(recurrence.Plan) }).Return(nil).Once()

	paid := root.Clone()
	paid.Status = domain.StatusPaid
	paid.PaidAt = ptr(day(2025, time.June, 15))
	suite.txnRepo.On("FindRootForUpdate", mock.Anything, mock.Anything, testUserID, "one-off").Return(&paid, nil).Once()
	suite.txnRepo.On("FindOverridesByRootIDInTx", mock.Anything, mock.Anything, "one-off").Return([]domain.Transaction{}, nil).Once()
	suite.txnRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	occ, err := suite.service.SetPaid(suite.ctx, testUserID, "one-off", true)

	suite.Require().NoError(err)
	suite.True(applied.RootChanged)
	suite.Equal(domain.StatusPaid, applied.Root.Status)
	suite.Equal(domain.StatusPaid, occ.Status)
	suite.NotNil(occ.PaidAt)
}

func (suite *TransactionServiceTestSuite) TestRestoreOccurrence() {
	root := rentRoot()
	root.CancelledOccurrences = []string{"2025-03", "2025-04"}
	suite.expectLockedRoot(root, []domain.Transaction{})
	suite.txnRepo.On("ApplyPlanInTx", mock.Anything, mock.Anything, mock.MatchedBy(func(p recurrence.Plan) bool {
		return p.RootChanged && assert.ObjectsAreEqual([]string{"2025-04"}, p.Root.CancelledOccurrences)
	})).Return(nil).Once()
	restored := root.Clone()
	restored.CancelledOccurrences = []string{"2025-04"}
	suite.txnRepo.On("FindRootForUpdate", mock.Anything, mock.Anything, testUserID, "root-rent").Return(&restored, nil).Once()
	suite.txnRepo.On("FindOverridesByRootIDInTx", mock.Anything, mock.Anything, "root-rent").Return([]domain.Transaction{}, nil).Once()
	suite.txnRepo.On("Commit", mock.Anything, mock.Anything).Return(nil).Once()

	occ, err := suite.service.RestoreOccurrence(suite.ctx, testUserID, "root-rent::2025-03")

	suite.Require().NoError(err)
	suite.Equal("root-rent::2025-03", occ.ID)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
