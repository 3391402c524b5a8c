// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vigia/internal/delivery/http/middleware"
	"vigia/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SensorHandler     *handler.SensorHandler
	UserHandler       *handler.UserHandler
	MonitoringHandler *handler.MonitoringHandler
	DeviceHandler     *handler.DeviceHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sensorHandler     *handler.SensorHandler
	userHandler       *handler.UserHandler
	monitoringHandler *handler.MonitoringHandler
	deviceHandler     *handler.DeviceHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sensorHandler:     params.SensorHandler,
		userHandler:       params.UserHandler,
		monitoringHandler: params.MonitoringHandler,
		deviceHandler:     params.DeviceHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Telemetry routes the bracelet firmware posts to. The firmware holds
	// no credentials, so these stay open.
	sensorGroup := e.Group("/api/sensor")
	{
		sensorGroup.POST("/data", r.sensorHandler.Ingest)
		sensorGroup.GET("/alertas/:token", r.sensorHandler.GetAlertas)
	}

	// Binding routes that require authentication
	monitoreoGroup := e.Group("/api/monitoreo")
	monitoreoGroup.Use(r.authMiddleware.Authenticate)
	{
		monitoreoGroup.POST("/registrar", r.monitoringHandler.RegisterBinding)
		monitoreoGroup.GET("/mis-pulseras", r.monitoringHandler.GetBindings)
		monitoreoGroup.DELETE("/:id", r.monitoringHandler.DeleteBinding)
		monitoreoGroup.GET("/qr/:token", r.monitoringHandler.GetPairingQR)
	}

	// Account routes that require authentication
	usuariosGroup := e.Group("/api/usuarios")
	usuariosGroup.Use(r.authMiddleware.Authenticate)
	{
		usuariosGroup.GET("/:id", r.userHandler.GetProfile)
		usuariosGroup.PUT("/:id", r.userHandler.UpdateProfile)
	}

	// Push device routes that require authentication
	dispositivosGroup := e.Group("/api/dispositivos")
	dispositivosGroup.Use(r.authMiddleware.Authenticate)
	{
		dispositivosGroup.POST("", r.deviceHandler.RegisterDevice)
		dispositivosGroup.GET("", r.deviceHandler.GetDevices)
		dispositivosGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
