package handlers

import (
	"net/http"
	"strconv"

	"temp_dashboard/internal/middleware"
	"temp_dashboard/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Status: "Success", Message: message, Data: data})
}

func fail(c *gin.Context, code int, message string) {
	c.JSON(code, Response{Status: "Error", Message: message})
}

func currentUser(c *gin.Context) (*services.TokenData, bool) {
	tokenData, ok := middleware.CurrentUser(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return tokenData, true
}

func idParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func pagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 1000 {
		limit = 100
	}
	return skip, limit
}
