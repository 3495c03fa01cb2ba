package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var expenseTestCounter atomic.Int64

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:expenses_test_%d?mode=memory&cache=shared", expenseTestCounter.Add(1))
	conn, err := gorm.Open(sqlite.Open(dsn))
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, conn.AutoMigrate(&Expense{}))
	t.Cleanup(func() { sqlDB.Close() })

	router := gin.New()
	expenseHandlers(router, conn)
	expenseFormHandlers(router, conn)
	return router, conn
}

func do(router *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateExpense(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, "POST", "/api/expenses", `{"description":"Lunch","amount":15.50,"category":"Food","date":"2025-01-15"}`)
	assert.Equal(t, 201, w.Code)
	assert.Equal(t, 15.50, gjson.Get(w.Body.String(), "amount").Float())
	assert.Equal(t, "Food", gjson.Get(w.Body.String(), "category").String())
}

func TestCreateExpenseValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, "POST", "/api/expenses", `{"description":"Free lunch","amount":0,"category":"Food","date":"2025-01-15"}`)
	assert.Equal(t, 400, w.Code)

	w = do(router, "POST", "/api/expenses", `{"description":"Mystery","amount":10,"category":"Gambling","date":"2025-01-15"}`)
	assert.Equal(t, 400, w.Code)

	w = do(router, "POST", "/api/expenses", `{"description":"Bad date","amount":10,"category":"Food","date":"01/15/2025"}`)
	assert.Equal(t, 400, w.Code)
}

func TestListExpensesWithDateRange(t *testing.T) {
	router, conn := newTestRouter(t)
	require.NoError(t, seedExpenses(conn))

	w := do(router, "GET", "/api/expenses", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, int64(5), gjson.Get(w.Body.String(), "#").Int())

	w = do(router, "GET", "/api/expenses?start_date=2025-01-17&end_date=2025-01-18", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, int64(2), gjson.Get(w.Body.String(), "#").Int())
}

func TestUpdateExpenseReplacesRecord(t *testing.T) {
	router, conn := newTestRouter(t)
	require.NoError(t, seedExpenses(conn))

	w := do(router, "PUT", "/api/expenses/1", `{"description":"Dinner","amount":22.00,"category":"Food","date":"2025-01-20"}`)
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "Dinner", gjson.Get(w.Body.String(), "description").String())
	assert.Equal(t, 22.00, gjson.Get(w.Body.String(), "amount").Float())

	w = do(router, "PUT", "/api/expenses/999", `{"description":"Ghost","amount":1,"category":"Other","date":"2025-01-20"}`)
	assert.Equal(t, 404, w.Code)
}

func TestDeleteExpense(t *testing.T) {
	router, conn := newTestRouter(t)
	require.NoError(t, seedExpenses(conn))

	w := do(router, "DELETE", "/api/expenses/1", "")
	assert.Equal(t, 204, w.Code)
	w = do(router, "DELETE", "/api/expenses/1", "")
	assert.Equal(t, 404, w.Code)
}

func TestExpensesByCategory(t *testing.T) {
	router, conn := newTestRouter(t)
	require.NoError(t, seedExpenses(conn))

	w := do(router, "GET", "/api/expenses/category/Food", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, int64(2), gjson.Get(w.Body.String(), "#").Int())

	w = do(router, "GET", "/api/expenses/category/Shopping", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, int64(0), gjson.Get(w.Body.String(), "#").Int())
}

func TestExpenseTotals(t *testing.T) {
	router, conn := newTestRouter(t)
	require.NoError(t, seedExpenses(conn))

	w := do(router, "GET", "/api/expenses/total", "")
	assert.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.InDelta(t, 280.80, gjson.Get(body, "total_amount").Float(), 0.001)

	foodTotal := 0.0
	for _, entry := range gjson.Get(body, "category_breakdown").Array() {
		if entry.Get("category").String() == "Food" {
			foodTotal = entry.Get("total").Float()
		}
	}
	assert.InDelta(t, 90.80, foodTotal, 0.001)
}

func TestExpenseTotalsEmpty(t *testing.T) {
	router, _ := newTestRouter(t)

	w := do(router, "GET", "/api/expenses/total", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, 0.0, gjson.Get(w.Body.String(), "total_amount").Float())
}

func TestAddExpenseFormRedirects(t *testing.T) {
	router, conn := newTestRouter(t)

	w := httptest.NewRecorder()
	form := strings.NewReader("description=Coffee&amount=4.50&category=Food&date=2025-02-01")
	req, _ := http.NewRequest("POST", "/expenses/add", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var count int64
	require.NoError(t, conn.Model(&Expense{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
