package webapi

import (
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/nanwallalit20/home-task-payment-providers/internal/webserver"
)

// ok wraps data in the standard success envelope.
func ok(c echo.Context, data interface{}) error {
	return okMsg(c, http.StatusOK, data, "Success")
}

func okMsg(c echo.Context, status int, data interface{}, message string) error {
	return c.JSON(status, map[string]interface{}{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// fail writes the error envelope with a stable machine-readable code.
// detail, when present, becomes errors.error in the body.
func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	body := map[string]interface{}{
		"success": false,
		"code":    code,
		"message": message,
	}
	if detail != nil {
		body["errors"] = map[string]interface{}{"error": detail}
	}
	return c.JSON(status, body)
}

// validationError reports field-level validation failures.
func validationError(c echo.Context, errs map[string]string) error {
	return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
		"success": false,
		"code":    "VALIDATION_FAILED",
		"message": "Validation failed",
		"errors":  errs,
	})
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// GetDB returns the request-scoped database handle.
func GetDB(c echo.Context) *gorm.DB {
	return c.Get(webserver.DBContextKey).(*gorm.DB)
}

// currentUID returns the authenticated user id from the JWT claims, or
// 0 when the request carries no valid token.
func currentUID(c echo.Context) int64 {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0
	}
	claims, ok := token.Claims.(*webserver.JwtClaims)
	if !ok {
		return 0
	}
	return claims.UID
}
