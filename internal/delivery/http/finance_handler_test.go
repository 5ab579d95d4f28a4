package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinoverse/internal/domain"
)

type fakeTransactionRepo struct {
	txs     []*domain.Transaction
	created *domain.Transaction
}

func (f *fakeTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	f.created = tx
	return nil
}

func (f *fakeTransactionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transaction, error) {
	for _, tx := range f.txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeTransactionRepo) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	return f.txs, nil
}

func (f *fakeTransactionRepo) Update(ctx context.Context, tx *domain.Transaction) error { return nil }
func (f *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error           { return pgx.ErrNoRows }

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewRequestValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func transaction(txType, category string, amount int64) *domain.Transaction {
	return &domain.Transaction{
		ID:       uuid.New(),
		Type:     txType,
		Category: category,
		Amount:   decimal.NewFromInt(amount),
		Date:     time.Now(),
	}
}

func TestListTransactionsIncludesSummary(t *testing.T) {
	repo := &fakeTransactionRepo{txs: []*domain.Transaction{
		transaction(domain.TransactionIncome, "salary", 1000),
		transaction(domain.TransactionExpense, "tools", 300),
	}}
	h := NewFinanceHandler(repo)

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/transactions", "")
	require.NoError(t, h.ListTransactions(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Transactions []json.RawMessage `json:"transactions"`
			Summary      struct {
				TotalIncome  string `json:"total_income"`
				TotalExpense string `json:"total_expense"`
				Net          string `json:"net"`
			} `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "success", resp.Status)
	assert.Len(t, resp.Data.Transactions, 2)
	assert.Equal(t, "1000", resp.Data.Summary.TotalIncome)
	assert.Equal(t, "300", resp.Data.Summary.TotalExpense)
	assert.Equal(t, "700", resp.Data.Summary.Net)
}

func TestListTransactionsRejectsBadMonth(t *testing.T) {
	h := NewFinanceHandler(&fakeTransactionRepo{})

	c, rec := newTestContext(t, http.MethodGet, "/api/admin/transactions?month=13", "")
	require.NoError(t, h.ListTransactions(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTransaction(t *testing.T) {
	repo := &fakeTransactionRepo{}
	h := NewFinanceHandler(repo)

	body := `{"type":"expense","category":"tools","amount":"49.99","date":"2026-08-20"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/admin/transactions", body)
	require.NoError(t, h.CreateTransaction(c))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.TransactionExpense, repo.created.Type)
	assert.True(t, repo.created.Amount.Equal(decimal.RequireFromString("49.99")))
}

func TestCreateTransactionRejectsUnknownType(t *testing.T) {
	h := NewFinanceHandler(&fakeTransactionRepo{})

	body := `{"type":"transfer","category":"misc","amount":"10","date":"2026-08-20"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/admin/transactions", body)
	require.NoError(t, h.CreateTransaction(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteMissingTransactionReturns404(t *testing.T) {
	h := NewFinanceHandler(&fakeTransactionRepo{})

	c, rec := newTestContext(t, http.MethodDelete, "/api/admin/transactions/x", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, h.DeleteTransaction(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
