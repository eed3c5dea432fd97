package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/movilfix/repairshop-api/internal/httperr"
	"github.com/movilfix/repairshop-api/internal/httpresp"
	"github.com/movilfix/repairshop-api/internal/models"
)

type AuditLogLister interface {
	ListRecent(ctx context.Context, limit int64) ([]models.AuditLog, error)
}

type AuditLogsHandler struct {
	repo AuditLogLister
}

func NewAuditLogsHandler(repo AuditLogLister) *AuditLogsHandler {
	return &AuditLogsHandler{repo: repo}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	entries, err := h.repo.ListRecent(c.Request.Context(), 100)
	if err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Unexpected error")
		return
	}
	httpresp.List(c, entries)
}
