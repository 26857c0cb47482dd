package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/catalog"
)

// createProductRequest is the creation payload.
// swagger:model
type createProductRequest struct {
	Name     string          `json:"name" binding:"required" example:"Tomatoes"`
	Category string          `json:"category" binding:"required" example:"Vegetables"`
	Price    decimal.Decimal `json:"price" example:"40"`
	Stock    int             `json:"stock" example:"50"`
	Unit     string          `json:"unit" binding:"required" example:"kg"`
	Image    string          `json:"image"`
}

// updateProductRequest is a partial update; omitted fields stay unchanged.
// swagger:model
type updateProductRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Price    *decimal.Decimal `json:"price"`
	Stock    *int             `json:"stock"`
	Unit     *string          `json:"unit"`
	Image    *string          `json:"image"`
}

// listProductsHandler godoc
// @Summary  Full inventory snapshot
// @Tags     products
// @Produce  json
// @Success  200 {array} catalog.Product
// @Router   /products [get]
func listProductsHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.Products(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

// searchProductsHandler godoc
// @Summary  Search products by name or category
// @Tags     products
// @Produce  json
// @Param    q query string true "search term, at least 2 characters"
// @Success  200 {array} catalog.Product
// @Failure  400 {object} httpError
// @Router   /products/search [get]
func searchProductsHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))
		if len(q) < 2 {
			c.JSON(http.StatusBadRequest, httpError{Error: "q must be at least 2 characters"})
			return
		}
		items, err := repo.Search(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"q": q, "items": items})
	}
}

// getProductHandler godoc
// @Summary  Product by id
// @Tags     products
// @Produce  json
// @Param    id path string true "product id"
// @Success  200 {object} catalog.Product
// @Failure  404 {object} httpError
// @Router   /products/{id} [get]
func getProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.Product(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, httpError{Error: "not found"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary  Create a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    product body createProductRequest true "product fields"
// @Success  201 {object} catalog.Product
// @Failure  400 {object} httpError
// @Router   /products [post]
func createProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
			return
		}
		p, err := repo.CreateProduct(c.Request.Context(), catalog.CreateProduct{
			Name:     req.Name,
			Category: req.Category,
			Price:    req.Price,
			Stock:    req.Stock,
			Unit:     req.Unit,
			Image:    req.Image,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// updateProductHandler godoc
// @Summary  Partially update a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    id path string true "product id"
// @Param    product body updateProductRequest true "fields to change"
// @Success  200 {object} catalog.Product
// @Failure  400 {object} httpError
// @Failure  404 {object} httpError
// @Router   /products/{id} [put]
func updateProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
			return
		}
		p, err := repo.UpdateProduct(c.Request.Context(), c.Param("id"), catalog.ProductPatch{
			Name:     req.Name,
			Category: req.Category,
			Price:    req.Price,
			Stock:    req.Stock,
			Unit:     req.Unit,
			Image:    req.Image,
		})
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			c.JSON(http.StatusNotFound, httpError{Error: "not found"})
		case errors.Is(err, catalog.ErrInvalid):
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		default:
			c.JSON(http.StatusOK, p)
		}
	}
}

// deleteProductHandler godoc
// @Summary  Delete a product
// @Tags     products
// @Param    id path string true "product id"
// @Success  204
// @Failure  404 {object} httpError
// @Router   /products/{id} [delete]
func deleteProductHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.DeleteProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}
		if !ok {
			c.JSON(http.StatusNotFound, httpError{Error: "not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// listCategoriesHandler godoc
// @Summary  Category labels
// @Tags     products
// @Produce  json
// @Success  200 {array} catalog.Category
// @Router   /categories [get]
func listCategoriesHandler(repo catalog.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := repo.Categories(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}
