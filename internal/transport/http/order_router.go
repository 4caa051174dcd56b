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

// OrderHandler — HTTP-хендлеры сервиса заказов.
type OrderHandler struct {
	service ports.OrderService
	log     ports.Logger
}

func NewOrderHandler(service ports.OrderService, log ports.Logger) *OrderHandler {
	return &OrderHandler{service: service, log: log}
}

// NewOrderRouter — маршруты сервиса заказов. Пути совместимы с исходным API.
func NewOrderRouter(h *OrderHandler, otelServiceName string) *gin.Engine {
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

	g := r.Group("/orders")
	g.GET("/order/:orderId", h.getOrderByID)
	g.GET("/all/:userId", h.listOrdersByUser)
	g.DELETE("/:orderId", h.deleteOrder)
	g.POST("/:userId", h.createOrder)

	return r
}

func (h *OrderHandler) getOrderByID(c *gin.Context) {
	order, err := h.service.GetOrder(c.Request.Context(), httpx.IDParam(c, "orderId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) listOrdersByUser(c *gin.Context) {
	orders, err := h.service.OrdersByUser(c.Request.Context(), httpx.IDParam(c, "userId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) deleteOrder(c *gin.Context) {
	if err := h.service.DeleteOrder(c.Request.Context(), httpx.IDParam(c, "orderId")); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *OrderHandler) createOrder(c *gin.Context) {
	var req domain.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(domain.InvalidParameters("invalid request body"))
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), httpx.IDParam(c, "userId"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, order)
}
