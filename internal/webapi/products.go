package webapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
	"github.com/nanwallalit20/home-task-payment-providers/internal/webserver"
	"github.com/nanwallalit20/home-task-payment-providers/pkg/common"
)

type productPayload struct {
	Name     string `json:"name"`
	Quantity *int   `json:"quantity"`
}

func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func (p *productPayload) validate() map[string]string {
	errs := map[string]string{}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		errs["name"] = "The name field is required."
	}
	if p.Quantity == nil {
		errs["quantity"] = "The quantity field is required."
	} else if *p.Quantity < 0 {
		errs["quantity"] = "The quantity must be at least 0."
	}
	return errs
}

// ownedProduct loads a product and enforces ownership by the caller.
func ownedProduct(c echo.Context) (*domain.Product, error) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return nil, fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	var p domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&p).Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	} else if err != nil {
		return nil, fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query product", err.Error())
	}
	if p.UserID != currentUID(c) {
		return nil, fail(c, http.StatusForbidden, "FORBIDDEN", "Unauthorized access to product", nil)
	}
	return &p, nil
}

func listProducts(c echo.Context) error {
	var products []domain.Product
	if err := GetDB(c).Where("user_id = ?", currentUID(c)).Order("id DESC").Find(&products).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}
	return ok(c, map[string]interface{}{"products": products})
}

func getProduct(c echo.Context) error {
	p, err := ownedProduct(c)
	if p == nil {
		return err
	}
	return ok(c, map[string]interface{}{"product": p})
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product parameters", nil)
	}
	if errs := payload.validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	p := domain.Product{
		ID:        common.UUIDint64(),
		UserID:    currentUID(c),
		Name:      payload.Name,
		Quantity:  *payload.Quantity,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := GetDB(c).Create(&p).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product", err.Error())
	}
	return okMsg(c, http.StatusCreated, map[string]interface{}{"product": p}, "Product created successfully")
}

func updateProduct(c echo.Context) error {
	p, err := ownedProduct(c)
	if p == nil {
		return err
	}
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product parameters", nil)
	}
	if errs := payload.validate(); len(errs) > 0 {
		return validationError(c, errs)
	}

	p.Name = payload.Name
	p.Quantity = *payload.Quantity
	p.UpdatedAt = time.Now()
	if err := GetDB(c).Save(p).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product", err.Error())
	}
	return okMsg(c, http.StatusOK, map[string]interface{}{"product": p}, "Product updated successfully")
}

func deleteProduct(c echo.Context) error {
	p, err := ownedProduct(c)
	if p == nil {
		return err
	}
	if err := GetDB(c).Delete(&domain.Product{}, p.ID).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete product", err.Error())
	}
	return okMsg(c, http.StatusOK, map[string]interface{}{}, "Product deleted successfully")
}
