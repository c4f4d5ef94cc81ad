package server

import (
	stderrors "errors"
	"net/http"
	"strconv"

	errs "github.com/civiceye/civiceye/errors"
	"github.com/civiceye/civiceye/server/response"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondError maps service errors onto the response envelope. Domain errors
// carry their own status; anything else is a 500 with the detail logged, not
// leaked.
func (s *Server) respondError(c *gin.Context, err error) {
	var domainErr *errs.Error
	if stderrors.As(err, &domainErr) {
		response.JSON(c, domainErr.Message, domainErr.Status, nil, domainErr)
		return
	}
	s.Logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	response.JSON(c, "internal server error", http.StatusInternalServerError, nil,
		errs.ErrInternalServerError)
}

func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var validationErrors validator.ValidationErrors
		if stderrors.As(err, &validationErrors) {
			response.ValidationError(c, validationErrors)
		} else {
			response.JSON(c, "malformed request body", http.StatusBadRequest, nil,
				errs.ErrBadRequest)
		}
		return false
	}
	return true
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.JSON(c, "id must be a positive integer", http.StatusBadRequest, nil,
			errs.ErrBadRequest)
		return 0, false
	}
	return uint(id), true
}
