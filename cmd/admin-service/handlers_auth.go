package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amritpal5039/Tazzabazzar-adminpanel/internal/session"
)

// loginRequest carries the demo credential pair.
// swagger:model
type loginRequest struct {
	Phone    string `json:"phone" binding:"required" example:"9876543210"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// loginHandler godoc
// @Summary  Sign in with the admin credentials
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    credentials body loginRequest true "phone and password"
// @Success  200 {object} session.User
// @Failure  400 {object} httpError
// @Failure  401 {object} httpError
// @Router   /auth/login [post]
func loginHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
			return
		}
		u, err := sessions.SignIn(c.Request.Context(), req.Phone, req.Password)
		if errors.Is(err, session.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, httpError{Error: "invalid credentials"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// logoutHandler godoc
// @Summary  Sign out
// @Tags     auth
// @Success  204
// @Router   /auth/logout [post]
func logoutHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := sessions.Logout(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// meHandler godoc
// @Summary  Currently signed-in user
// @Tags     auth
// @Produce  json
// @Success  200 {object} session.User
// @Failure  404 {object} httpError
// @Router   /auth/me [get]
func meHandler(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u, ok := sessions.Current(); ok {
			c.JSON(http.StatusOK, u)
			return
		}
		c.JSON(http.StatusNotFound, httpError{Error: "not signed in"})
	}
}
