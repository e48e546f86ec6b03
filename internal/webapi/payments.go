package webapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nanwallalit20/home-task-payment-providers/internal/payment"
	"github.com/nanwallalit20/home-task-payment-providers/internal/webserver"
)

type paymentPayload struct {
	ProductID     int64  `json:"product_id,string"`
	PaymentMethod string `json:"payment_method"`
}

func registerPaymentRoutes() {
	webserver.ApiGET("/payment-methods", listPaymentMethods)
	webserver.ApiPOST("/payments", initiatePayment)
}

func listPaymentMethods(c echo.Context) error {
	return ok(c, map[string]interface{}{
		"payment_methods": paymentService.Methods(),
	})
}

// initiatePayment drives one orchestrated payment attempt. Methods that
// parse but have no willing provider surface as a 400 business failure
// here, not as a validation reject.
func initiatePayment(c echo.Context) error {
	var payload paymentPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse payment parameters", nil)
	}

	errs := map[string]string{}
	if payload.ProductID == 0 {
		errs["product_id"] = "The product ID is required."
	}
	if payload.PaymentMethod == "" {
		errs["payment_method"] = "The payment method is required."
	}
	if len(errs) > 0 {
		return validationError(c, errs)
	}

	result, err := paymentService.Initiate(c.Request().Context(), payload.ProductID, currentUID(c), payload.PaymentMethod)
	if err != nil {
		var pe *payment.ProviderError
		switch {
		case errors.Is(err, payment.ErrProductNotFound):
			return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
		case errors.Is(err, payment.ErrForbidden):
			return fail(c, http.StatusForbidden, "FORBIDDEN", "Unauthorized access to product", nil)
		case errors.Is(err, payment.ErrNotAvailable):
			return fail(c, http.StatusBadRequest, "NOT_AVAILABLE", "Product is not available", nil)
		case errors.Is(err, payment.ErrInsufficientQuantity):
			return fail(c, http.StatusBadRequest, "INSUFFICIENT_QUANTITY", "Insufficient quantity available", nil)
		case errors.Is(err, payment.ErrMethodNotSupported):
			return fail(c, http.StatusBadRequest, "METHOD_NOT_SUPPORTED", "Payment method not supported",
				fmt.Sprintf("No provider found for payment method: %s", payload.PaymentMethod))
		case errors.As(err, &pe):
			return fail(c, http.StatusBadRequest, "PROVIDER_FAILURE", "Payment failed", pe.Message)
		default:
			return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to process payment", err.Error())
		}
	}

	return okMsg(c, http.StatusOK, map[string]interface{}{
		"payment":        result.Payment,
		"transaction_id": result.TransactionID,
		"provider":       result.Provider,
	}, "Payment completed successfully")
}
