package webapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanwallalit20/home-task-payment-providers/config"
	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
	"github.com/nanwallalit20/home-task-payment-providers/internal/payment"
	"github.com/nanwallalit20/home-task-payment-providers/internal/store"
	"github.com/nanwallalit20/home-task-payment-providers/internal/webserver"
)

const testUID = int64(10)

func setupPaymentHandlers(t *testing.T, quantity int, rate float64) (*store.MemoryStore, int64) {
	t.Helper()
	mem := store.NewMemoryStore()
	productID := int64(777)
	mem.AddProduct(&domain.Product{
		ID:       productID,
		UserID:   testUID,
		Name:     "demo",
		Quantity: quantity,
	})

	registry := payment.NewRegistry()
	registry.Register(payment.NewSimulatedProvider(
		"Credit Card Provider", "CC", []string{"credit_card"}, rate, 0,
		"Credit card payment processing failed"))

	appConfig = config.DefaultAppConfig
	paymentService = payment.NewService(mem, registry, payment.FixedPricer(99.99))
	return mem, productID
}

func jsonRequest(t *testing.T, handler echo.HandlerFunc, uid int64, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/payments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &jwt.Token{Claims: &webserver.JwtClaims{UID: uid}})

	require.NoError(t, handler(c))

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &parsed))
	return rec, parsed
}

func TestInitiatePaymentHandlerSuccess(t *testing.T) {
	mem, productID := setupPaymentHandlers(t, 5, 1)

	rec, body := jsonRequest(t, initiatePayment, testUID,
		fmt.Sprintf(`{"product_id":"%d","payment_method":"credit_card"}`, productID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Payment completed successfully", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Credit Card Provider", data["provider"])
	assert.True(t, strings.HasPrefix(data["transaction_id"].(string), "CC_TXN_"))
	assert.Equal(t, 4, mem.Product(productID).Quantity)
}

func TestInitiatePaymentHandlerForbidden(t *testing.T) {
	mem, productID := setupPaymentHandlers(t, 5, 1)

	rec, body := jsonRequest(t, initiatePayment, testUID+1,
		fmt.Sprintf(`{"product_id":"%d","payment_method":"credit_card"}`, productID))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "FORBIDDEN", body["code"])
	assert.Equal(t, 5, mem.Product(productID).Quantity)
}

func TestInitiatePaymentHandlerMethodNotSupported(t *testing.T) {
	mem, productID := setupPaymentHandlers(t, 10, 1)

	rec, body := jsonRequest(t, initiatePayment, testUID,
		fmt.Sprintf(`{"product_id":"%d","payment_method":"unknown_method"}`, productID))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "METHOD_NOT_SUPPORTED", body["code"])
	assert.Equal(t, "Payment method not supported", body["message"])
	assert.Equal(t, 10, mem.Product(productID).Quantity)
}

func TestInitiatePaymentHandlerValidation(t *testing.T) {
	setupPaymentHandlers(t, 10, 1)

	rec, body := jsonRequest(t, initiatePayment, testUID, `{}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "product_id")
	assert.Contains(t, errs, "payment_method")
}

func TestListPaymentMethodsHandler(t *testing.T) {
	setupPaymentHandlers(t, 1, 1)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/payment-methods", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &jwt.Token{Claims: &webserver.JwtClaims{UID: testUID}})

	require.NoError(t, listPaymentMethods(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	methods := body["data"].(map[string]interface{})["payment_methods"].([]interface{})
	assert.ElementsMatch(t, []interface{}{"credit_card"}, methods)
}
