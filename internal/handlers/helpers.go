package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/movilfix/repairshop-api/internal/httperr"
	"github.com/movilfix/repairshop-api/internal/middleware"
	"github.com/movilfix/repairshop-api/internal/models"
)

func actorID(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// writeDomainError maps repository/domain errors onto the HTTP taxonomy:
// missing entity → 404, business rule → 400, anything else → 500.
func writeDomainError(c *gin.Context, err error, entity string) {
	if errors.Is(err, models.ErrNotFound) {
		httperr.NotFound(c, entity+"_not_found", entityMessage(entity)+" not found")
		return
	}

	if code := httperr.BusinessCode(err); code != "" {
		switch code {
		case httperr.CodeInsufficientStock:
			httperr.BadRequest(c, code, "Insufficient stock")
		case httperr.CodeInvalidTransition:
			httperr.BadRequest(c, code, "Status transition not allowed")
		case httperr.CodeInvalidStatus:
			httperr.BadRequest(c, code, "Unknown repair status")
		case httperr.CodeInvalidRepairData:
			httperr.BadRequest(c, code, "Invalid repair data")
		default:
			httperr.BadRequest(c, code, "Request rejected")
		}
		return
	}

	httperr.Internal(c, "internal_error", "Unexpected error")
}

func entityMessage(entity string) string {
	switch entity {
	case "customer":
		return "Customer"
	case "part":
		return "Part"
	case "repair":
		return "Repair"
	default:
		return "Resource"
	}
}
