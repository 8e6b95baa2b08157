package resp

import (
	"net/http"

	"foodapp-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"code": "BAD-REQUEST", "message": msg})
}

// Fail writes a typed application error with its stable code; anything else
// becomes a 500 so no failure is ever silently swallowed.
func Fail(c *gin.Context, err error) {
	if ae, ok := apperr.As(err); ok {
		c.JSON(ae.Status, gin.H{"code": ae.Code, "message": ae.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"code": "GEN-001", "message": err.Error()})
}
