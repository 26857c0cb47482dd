package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/analytics"
)

type reporter interface {
	Report(ctx context.Context) (*analytics.Report, error)
}

// analyticsHandler godoc
// @Summary  Dashboard report: revenue, order, product and customer counts
// @Tags     analytics
// @Produce  json
// @Success  200 {object} analytics.Report
// @Router   /analytics [get]
func analyticsHandler(svc reporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		rep, err := svc.Report(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, rep)
	}
}
