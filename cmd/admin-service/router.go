package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/analytics"
	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/catalog"
	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/httpx"
	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/order"
	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/session"
)

// httpError is the standard error body.
// swagger:model
type httpError struct {
	// Error message
	// example: not found
	Error string `json:"error"`
}

func newRouter(products *catalog.Store, orders *order.Store, reports *analytics.Service, sessions *session.Manager, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(log))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	r.GET("/products", listProductsHandler(products))
	r.GET("/products/search", searchProductsHandler(products))
	r.GET("/products/:id", getProductHandler(products))
	r.POST("/products", createProductHandler(products))
	r.PUT("/products/:id", updateProductHandler(products))
	r.DELETE("/products/:id", deleteProductHandler(products))

	r.GET("/categories", listCategoriesHandler(products))

	r.GET("/orders", listOrdersHandler(orders))
	r.GET("/orders/:id", getOrderHandler(orders))
	r.PUT("/orders/:id/status", setOrderStatusHandler(orders))
	r.POST("/orders/:id/advance", advanceOrderHandler(orders))

	r.GET("/analytics", analyticsHandler(reports))

	r.POST("/auth/login", loginHandler(sessions))
	r.POST("/auth/logout", logoutHandler(sessions))
	r.GET("/auth/me", meHandler(sessions))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
