package server

import (
	"github.com/NMalikk/StayOpsApp/config"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type echoServer struct {
	app *echo.Echo
	cfg *config.Config
}

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func NewEchoServer(cfg *config.Config) Server {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	// Serve Swagger documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return &echoServer{
		app: e,
		cfg: cfg,
	}
}

func (s *echoServer) Start() error {
	return s.app.Start(":" + s.cfg.Server.Port)
}

func (s *echoServer) GetEcho() *echo.Echo {
	return s.app
}
