package webserver

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nanwallalit20/home-task-payment-providers/config"
	"github.com/nanwallalit20/home-task-payment-providers/internal/domain"
)

// JwtClaims carries the authenticated user through the request.
type JwtClaims struct {
	UID   int64  `json:"uid,string"`
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// CreateToken issues a signed bearer token for the user.
func CreateToken(cfg *config.AppConfig, user *domain.User) (string, error) {
	expire := time.Duration(cfg.Web.JwtExpire) * time.Hour
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	claims := &JwtClaims{
		UID:   user.ID,
		Name:  user.Name,
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.System.Appid,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Web.Secret))
}
