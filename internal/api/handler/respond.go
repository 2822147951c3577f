package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChauhanSai/hackrice25/internal/domain"
)

// respondError writes the JSON error payload for err, mapping the domain
// error taxonomy onto HTTP statuses. Upstream messages pass through
// verbatim.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case domain.IsValidation(err):
		status = http.StatusBadRequest
	case domain.IsAuth(err):
		status = http.StatusForbidden
	case domain.IsNotFound(err):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
