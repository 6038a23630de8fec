package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/money_planner/internal/core/ports/services"
	"github.com/SscSPs/money_planner/internal/core/recurrence"
	"github.com/SscSPs/money_planner/internal/dto"
	"github.com/SscSPs/money_planner/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for transactions and their occurrences.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers routes related to transactions. Every :id accepts a
// real transaction id or a virtual occurrence id ("{rootId}::YYYY-MM").
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	registerValidators()
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.GET("/:id/root", h.getRootTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
		transactions.POST("/:id/pay", h.markPaid)
		transactions.POST("/:id/unpay", h.markUnpaid)
		transactions.POST("/:id/restore", h.restoreOccurrence)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Creates a one-off transaction, an installment series (installments > 1) or a fixed monthly series (isFixed)
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create transaction")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List occurrences
// @Description Expands every matching transaction into its occurrences within the date range, sorted by due date
// @Tags transactions
// @Produce  json
// @Param   startDate query string false "Inclusive start date (YYYY-MM-DD)"
// @Param   endDate query string false "Inclusive end date (YYYY-MM-DD)"
// @Param   month query string false "Calendar month (YYYY-MM); overrides startDate/endDate"
// @Param   type query string false "INCOME or EXPENSE"
// @Param   categoryId query string false "Category filter"
// @Param   accountId query string false "Account filter"
// @Param   isFixed query bool false "Only fixed (true) or only non-fixed (false) transactions"
// @Param   groupInstallments query bool false "Collapse installment series into summary rows"
// @Param   limit query int false "Page size" default(100)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Debug("Transactions listed", slog.Int("count", len(resp.Transactions)))
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get an occurrence
// @Description Resolves a real or virtual id to the occurrence it names
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID or virtual occurrence ID"
// @Success 200 {object} dto.OccurrenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Occurrence not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	occ, err := h.transactionService.GetTransaction(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToOccurrenceResponse(occ))
}

// getRootTransaction godoc
// @Summary Get the root of a series
// @Description Returns the stored root record behind a transaction, override or virtual id
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID or virtual occurrence ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Security BearerAuth
// @Router /transactions/{id}/root [get]
func (h *transactionHandler) getRootTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	root, err := h.transactionService.GetRootTransaction(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(root))
}

// updateTransaction godoc
// @Summary Edit a transaction or occurrence
// @Description Edits one occurrence (scope=single), it and every later one (future) or the whole series (all). On a series, status is only accepted with scope=single
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   id path string true "Transaction ID or virtual occurrence ID"
// @Param   scope query string false "single, future or all" default(single)
// @Param   transaction body dto.UpdateTransactionRequest true "Fields to change"
// @Success 200 {object} dto.OccurrenceResponse
// @Success 204 "The edited occurrence is no longer visible"
// @Failure 400 {object} map[string]string "Invalid input or scope"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}
	scope, ok := bindScope(c, logger)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	occ, err := h.transactionService.UpdateTransaction(c.Request.Context(), userID, c.Param("id"), scope, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update transaction")
		return
	}
	if occ == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToOccurrenceResponse(occ))
}

// deleteTransaction godoc
// @Summary Delete a transaction or occurrence
// @Description Deletes one occurrence (scope=single), it and every later one (future) or the whole series (all)
// @Tags transactions
// @Param   id path string true "Transaction ID or virtual occurrence ID"
// @Param   scope query string false "single, future or all" default(single)
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid scope"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 409 {object} map[string]string "Concurrent modification"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}
	scope, ok := bindScope(c, logger)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, c.Param("id"), scope); err != nil {
		respondWithError(c, logger, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// markPaid godoc
// @Summary Mark an occurrence as paid
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID or virtual occurrence ID"
// @Success 200 {object} dto.OccurrenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Occurrence not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{id}/pay [post]
func (h *transactionHandler) markPaid(c *gin.Context) {
	h.setPaid(c, true)
}

// markUnpaid godoc
// @Summary Mark an occurrence as not paid
// @Tags transactions
// @Produce  json
// @Param   id path string true "Transaction ID or virtual occurrence ID"
// @Success 200 {object} dto.OccurrenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Occurrence not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Security BearerAuth
// @Router /transactions/{id}/unpay [post]
func (h *transactionHandler) markUnpaid(c *gin.Context) {
	h.setPaid(c, false)
}

func (h *transactionHandler) setPaid(c *gin.Context, paid bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	occ, err := h.transactionService.SetPaid(c.Request.Context(), userID, c.Param("id"), paid)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update transaction")
		return
	}
	if occ == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToOccurrenceResponse(occ))
}

// restoreOccurrence godoc
// @Summary Restore a deleted occurrence
// @Description Undoes a single-scope delete of one month of a recurring transaction
// @Tags transactions
// @Produce  json
// @Param   id path string true "Virtual occurrence ID"
// @Success 200 {object} dto.OccurrenceResponse
// @Failure 400 {object} map[string]string "Not a recurring transaction"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to restore occurrence"
// @Security BearerAuth
// @Router /transactions/{id}/restore [post]
func (h *transactionHandler) restoreOccurrence(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUserID(c, logger)
	if !ok {
		return
	}

	occ, err := h.transactionService.RestoreOccurrence(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to restore occurrence")
		return
	}
	if occ == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.ToOccurrenceResponse(occ))
}

// bindScope reads ?scope=, defaulting to single.
func bindScope(c *gin.Context, logger *slog.Logger) (recurrence.Scope, bool) {
	var params dto.ScopeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid scope", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "scope must be single, future or all"})
		return "", false
	}
	scope, err := recurrence.ParseScope(params.Scope)
	if err != nil {
		respondWithError(c, logger, err, "Invalid scope")
		return "", false
	}
	return scope, true
}
