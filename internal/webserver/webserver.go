package webserver

import (
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo-contrib/echoprometheus"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nanwallalit20/home-task-payment-providers/config"
)

// DBContextKey is where the per-request *gorm.DB handle lives in the
// echo context.
const DBContextKey = "webserver.db"

var server *WebServer

type WebServer struct {
	root      *echo.Echo
	pub       *echo.Group
	api       *echo.Group
	appConfig *config.AppConfig
	db        *gorm.DB
}

// Init builds the global web server: json-iterator serializer,
// recovery, prometheus middleware, a public group and a JWT-protected
// API group, both rooted at /api.
func Init(cfg *config.AppConfig, db *gorm.DB) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.Debug = cfg.System.Debug
	e.JSONSerializer = &jsoniterSerializer{}

	e.Use(middleware.Recover())
	e.Use(echoprometheus.NewMiddleware(cfg.System.Appid))
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(DBContextKey, db)
			return next(c)
		}
	})

	e.GET("/metrics", echoprometheus.NewHandler())

	pub := e.Group("/api")
	api := e.Group("/api")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.Web.Secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(JwtClaims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]interface{}{
				"success": false,
				"code":    "UNAUTHORIZED",
				"message": "Unauthorized",
			})
		},
	}))

	server = &WebServer{root: e, pub: pub, api: api, appConfig: cfg, db: db}
	return server
}

// Instance returns the global web server.
func Instance() *WebServer {
	return server
}

// Echo exposes the underlying router, used in handler tests.
func (s *WebServer) Echo() *echo.Echo {
	return s.root
}

// Listen blocks serving HTTP until the server is shut down.
func (s *WebServer) Listen() error {
	addr := fmt.Sprintf("%s:%d", s.appConfig.Web.Host, s.appConfig.Web.Port)
	zap.L().Info("web server listening", zap.String("addr", addr))
	return s.root.Start(addr)
}

// Close stops accepting connections.
func (s *WebServer) Close() error {
	return s.root.Close()
}

// PubPOST registers an unauthenticated API route.
func PubPOST(path string, h echo.HandlerFunc) {
	server.pub.POST(path, h)
}

// ApiGET registers a JWT-protected GET route.
func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}

type jsoniterSerializer struct{}

func (jsoniterSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := jsoniter.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsoniterSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := jsoniter.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Unable to parse request body").SetInternal(err)
	}
	return nil
}
