package rest

import (
	"net/http"

	"github.com/Gunvolt24/wb_microservices/internal/domain"
	"github.com/Gunvolt24/wb_microservices/internal/ports"
	"github.com/Gunvolt24/wb_microservices/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// UserHandler — HTTP-хендлеры сервиса пользователей.
type UserHandler struct {
	service ports.UserService
	log     ports.Logger
}

func NewUserHandler(service ports.UserService, log ports.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

// NewUserRouter — маршруты сервиса пользователей. Пути совместимы с исходным API.
func NewUserRouter(h *UserHandler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))
	r.Use(ErrorMapper(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	g := r.Group("/users")
	g.GET("", h.listUsers)
	g.POST("", h.createUser)
	g.GET("/:userId", h.getUserByID)
	g.DELETE("/:userId", h.deleteUser)

	return r
}

func (h *UserHandler) getUserByID(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), httpx.IDParam(c, "userId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) createUser(c *gin.Context) {
	var req domain.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domain.InvalidParameters("invalid request body"))
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) deleteUser(c *gin.Context) {
	if err := h.service.DeleteUser(c.Request.Context(), httpx.IDParam(c, "userId")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *UserHandler) listUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}
