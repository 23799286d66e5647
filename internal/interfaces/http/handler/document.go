package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brnsuite/backend/internal/application/procurement"
	"github.com/brnsuite/backend/internal/interfaces/http/dto"
)

// DocumentHandler serves the printable document snapshots
type DocumentHandler struct {
	BaseHandler
	service *procurement.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(service *procurement.DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// RegisterRoutes registers document routes
func (h *DocumentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/processes/:id/document-data", h.GetDocumentData)
}

// GetDocumentData returns the fully formatted snapshot a document template
// needs, including dates, pt-BR number spelling and the capped proposal list
func (h *DocumentHandler) GetDocumentData(c *gin.Context) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid process ID")
		return
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid process ID")
		return
	}

	data, err := h.service.GetDocumentData(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, data)
}
