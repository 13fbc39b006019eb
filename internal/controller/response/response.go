// Package response writes the JSON envelopes shared by every handler.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/lshigami/examportal/internal/apperr"
	"github.com/lshigami/examportal/internal/dto"
)

func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Data: data})
}

func List(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Count: &count, Data: data})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, dto.APIResponse{Success: true, Message: message, Data: data})
}

func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.APIResponse{Success: true, Message: message})
}

// Error maps err to its HTTP status. Unexpected failures are logged here so
// handlers only log what they know.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := apperr.HTTPStatus(kind)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Str("kind", string(kind)).Msg("Request failed")
	}
	c.JSON(status, dto.ErrorResponse{Message: apperr.MessageOf(err)})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: message})
}
