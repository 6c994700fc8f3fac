package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authhandler "github.com/Zughayyar/fin-stack-server/internal/auth/handler"
	authservice "github.com/Zughayyar/fin-stack-server/internal/auth/service"
	"github.com/Zughayyar/fin-stack-server/internal/finance/domain"
	"github.com/Zughayyar/fin-stack-server/internal/finance/dto"
	"github.com/Zughayyar/fin-stack-server/internal/finance/handler"
	"github.com/Zughayyar/fin-stack-server/internal/finance/service"
	"github.com/Zughayyar/fin-stack-server/internal/logging"
	"github.com/Zughayyar/fin-stack-server/internal/mocks"
	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app      *fiber.App
	tokens   *authservice.TokenService
	incomes  *mocks.MockIncomeRepository
	expenses *mocks.MockExpenseRepository
}

// newTestEnv wires the full protected surface with a real token service
// and mocked repositories, so requests exercise the same middleware
// chain as production.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	incomes := mocks.NewMockIncomeRepository(ctrl)
	expenses := mocks.NewMockExpenseRepository(ctrl)
	logger := logging.New("test")
	tokens := authservice.NewTokenService("test-secret", 60)
	authH := authhandler.NewAuthHandler(nil, tokens, logger)

	incomeH := handler.NewIncomeHandler(service.NewIncomeService(incomes, logger))
	expenseH := handler.NewExpenseHandler(service.NewExpenseService(expenses, logger))

	app := fiber.New()
	handler.RegisterRoutes(app, incomeH, expenseH, authH.RequireAuth, authH.RequireOwner("userID"))

	return &testEnv{app: app, tokens: tokens, incomes: incomes, expenses: expenses}
}

func (e *testEnv) request(t *testing.T, method, path, bearer string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, raw
}

func TestProtectedResourceAccess(t *testing.T) {
	env := newTestEnv(t)

	ownerID := uuid.New().String()
	otherID := uuid.New().String()

	ownerToken, _, err := env.tokens.Generate(ownerID, "owner@x.com")
	require.NoError(t, err)
	otherToken, _, err := env.tokens.Generate(otherID, "other@x.com")
	require.NoError(t, err)

	t.Run("no authorization header", func(t *testing.T) {
		code, _ := env.request(t, http.MethodGet, "/api/v1/users/"+ownerID+"/expenses", "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, code)
	})

	t.Run("another user's valid token", func(t *testing.T) {
		code, body := env.request(t, http.MethodGet, "/api/v1/users/"+ownerID+"/expenses", otherToken, nil)
		assert.Equal(t, fiber.StatusForbidden, code)
		// No resource data may leak on a forbidden response.
		assert.NotContains(t, string(body), "amount")
	})

	t.Run("owner token", func(t *testing.T) {
		env.expenses.EXPECT().ListByOwner(gomock.Any(), ownerID).Return([]domain.Expense{}, nil)

		code, body := env.request(t, http.MethodGet, "/api/v1/users/"+ownerID+"/expenses", ownerToken, nil)
		assert.Equal(t, fiber.StatusOK, code)
		assert.JSONEq(t, "[]", string(body))
	})
}

func TestCreateIncome(t *testing.T) {
	env := newTestEnv(t)

	ownerID := uuid.New().String()
	token, _, err := env.tokens.Generate(ownerID, "owner@x.com")
	require.NoError(t, err)

	t.Run("created", func(t *testing.T) {
		env.incomes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		code, body := env.request(t, http.MethodPost, "/api/v1/users/"+ownerID+"/incomes", token,
			dto.CreateIncomeInput{
				Source: "Salary",
				Amount: decimal.NewFromInt(5000),
				Date:   domain.NewDate(2024, time.March, 20),
			})
		assert.Equal(t, fiber.StatusCreated, code)

		var out dto.IncomeOutput
		require.NoError(t, json.Unmarshal(body, &out))
		assert.NotEmpty(t, out.ID)
		assert.Equal(t, ownerID, out.UserID)
		assert.Equal(t, "2024-03-20", out.Date.String())
	})

	t.Run("validation failure", func(t *testing.T) {
		code, _ := env.request(t, http.MethodPost, "/api/v1/users/"+ownerID+"/incomes", token,
			dto.CreateIncomeInput{Source: "", Amount: decimal.NewFromInt(10)})
		assert.Equal(t, fiber.StatusBadRequest, code)
	})
}

func TestGetIncomeNotFound(t *testing.T) {
	env := newTestEnv(t)

	ownerID := uuid.New().String()
	incomeID := uuid.New().String()
	token, _, err := env.tokens.Generate(ownerID, "owner@x.com")
	require.NoError(t, err)

	env.incomes.EXPECT().GetByID(gomock.Any(), ownerID, incomeID).Return(nil, nil)

	code, _ := env.request(t, http.MethodGet, "/api/v1/users/"+ownerID+"/incomes/"+incomeID, token, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestDeleteExpense(t *testing.T) {
	env := newTestEnv(t)

	ownerID := uuid.New().String()
	expenseID := uuid.New().String()
	token, _, err := env.tokens.Generate(ownerID, "owner@x.com")
	require.NoError(t, err)

	env.expenses.EXPECT().Delete(gomock.Any(), ownerID, expenseID).Return(nil)

	code, _ := env.request(t, http.MethodDelete, "/api/v1/users/"+ownerID+"/expenses/"+expenseID, token, nil)
	assert.Equal(t, fiber.StatusNoContent, code)
}
