package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/order"
)

// setStatusRequest names the target status outright; legality of the move
// is the caller's call, the store only rejects unknown values.
// swagger:model
type setStatusRequest struct {
	Status order.Status `json:"status" binding:"required" example:"accepted"`
}

// listOrdersHandler godoc
// @Summary  Orders, most recent first
// @Tags     orders
// @Produce  json
// @Success  200 {array} order.Order
// @Router   /orders [get]
func listOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.Orders(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// getOrderHandler godoc
// @Summary  Order by id
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} order.Order
// @Failure  404 {object} httpError
// @Router   /orders/{id} [get]
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := repo.Order(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, httpError{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// setOrderStatusHandler godoc
// @Summary  Overwrite an order's status
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    id path string true "order id"
// @Param    status body setStatusRequest true "target status"
// @Success  200 {object} order.Order
// @Failure  400 {object} httpError
// @Failure  404 {object} httpError
// @Router   /orders/{id}/status [put]
func setOrderStatusHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
			return
		}
		o, err := repo.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
		switch {
		case errors.Is(err, order.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		case errors.Is(err, order.ErrNotFound):
			c.JSON(http.StatusNotFound, httpError{Error: "not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		default:
			c.JSON(http.StatusOK, o)
		}
	}
}

// advanceOrderHandler godoc
// @Summary  Move an order to the next status in the progression
// @Tags     orders
// @Produce  json
// @Param    id path string true "order id"
// @Success  200 {object} order.Order
// @Failure  404 {object} httpError
// @Failure  409 {object} httpError
// @Router   /orders/{id}/advance [post]
func advanceOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cur, err := repo.Order(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, httpError{Error: "not found"})
			return
		}
		next, ok := order.Next(cur.Status)
		if !ok {
			c.JSON(http.StatusConflict, httpError{Error: "order is in a terminal status"})
			return
		}
		o, err := repo.SetStatus(c.Request.Context(), cur.ID, next)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
