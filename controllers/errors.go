package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/review-app/utils"
	"gorm.io/gorm"
)

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}

var (
	ErrInvalidID       = &CustomError{"Invalid id"}
	ErrMissingRelation = &CustomError{"customer_id and item_id must reference existing records"}
)

// parseID reads a positive numeric path parameter, answering 400 otherwise.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, ErrInvalidID)
		return 0, false
	}
	return uint(id), true
}

// respondDBError maps GORM errors to HTTP status codes.
func respondDBError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		utils.RespondError(c, http.StatusUnprocessableEntity, ErrMissingRelation)
	default:
		utils.ErrorLogger.Printf("Database error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
