package webapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
	"github.com/nanwallalit20/home-task-payment-providers/internal/webserver"
	"github.com/nanwallalit20/home-task-payment-providers/pkg/common"
)

type registerPayload struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerAuthRoutes() {
	webserver.PubPOST("/users", registerUser)
	webserver.PubPOST("/login", login)
	webserver.ApiPOST("/logout", logout)
	webserver.ApiPOST("/refresh", refresh)
	webserver.ApiGET("/me", me)
}

func registerUser(c echo.Context) error {
	var payload registerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse registration parameters", nil)
	}

	errs := map[string]string{}
	payload.Name = strings.TrimSpace(payload.Name)
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))
	if payload.Name == "" {
		errs["name"] = "The name field is required."
	}
	if payload.Email == "" || !strings.Contains(payload.Email, "@") {
		errs["email"] = "A valid email is required."
	}
	if len(payload.Password) < 8 {
		errs["password"] = "The password must be at least 8 characters."
	} else if payload.PasswordConfirmation != "" && payload.Password != payload.PasswordConfirmation {
		errs["password"] = "The password confirmation does not match."
	}
	if len(errs) > 0 {
		return validationError(c, errs)
	}

	var dup domain.User
	if err := GetDB(c).Where("email = ?", payload.Email).First(&dup).Error; err == nil {
		return validationError(c, map[string]string{"email": "The email has already been taken."})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register user", nil)
	}

	user := domain.User{
		ID:        common.UUIDint64(),
		Name:      payload.Name,
		Email:     payload.Email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := GetDB(c).Create(&user).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to register user", err.Error())
	}

	token, err := webserver.CreateToken(appConfig, &user)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token", nil)
	}
	return okMsg(c, http.StatusCreated, map[string]interface{}{
		"user":  user,
		"token": token,
	}, "User registered successfully")
}

func login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse login parameters", nil)
	}
	payload.Email = strings.ToLower(strings.TrimSpace(payload.Email))

	var user domain.User
	err := GetDB(c).Where("email = ?", payload.Email).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query user", err.Error())
	}
	if errors.Is(err, gorm.ErrRecordNotFound) ||
		bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
		return validationError(c, map[string]string{"email": "The provided credentials are incorrect."})
	}

	token, err := webserver.CreateToken(appConfig, &user)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token", nil)
	}
	return okMsg(c, http.StatusOK, map[string]interface{}{
		"user":  user,
		"token": token,
	}, "Login successful")
}

// logout is advisory with stateless tokens; the client discards its
// copy.
func logout(c echo.Context) error {
	return okMsg(c, http.StatusOK, map[string]interface{}{}, "Successfully logged out")
}

func refresh(c echo.Context) error {
	uid := currentUID(c)
	var user domain.User
	if err := GetDB(c).Where("id = ?", uid).First(&user).Error; err != nil {
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
	}
	token, err := webserver.CreateToken(appConfig, &user)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token", nil)
	}
	return ok(c, map[string]interface{}{"token": token})
}

func me(c echo.Context) error {
	uid := currentUID(c)
	var user domain.User
	if err := GetDB(c).Where("id = ?", uid).First(&user).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "User not found", nil)
	}
	return ok(c, map[string]interface{}{"user": user})
}
