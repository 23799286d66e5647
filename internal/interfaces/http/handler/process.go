package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brnsuite/backend/internal/application/procurement"
	"github.com/brnsuite/backend/internal/interfaces/http/dto"
)

// ProcessHandler handles accountability process endpoints
type ProcessHandler struct {
	BaseHandler
	service *procurement.ProcessService
}

// NewProcessHandler creates a new ProcessHandler
func NewProcessHandler(service *procurement.ProcessService) *ProcessHandler {
	return &ProcessHandler{service: service}
}

// RegisterRoutes registers process routes
func (h *ProcessHandler) RegisterRoutes(rg *gin.RouterGroup) {
	processes := rg.Group("/processes")
	{
		processes.POST("", h.Create)
		processes.GET("", h.List)
		processes.GET("/:id", h.GetByID)
		processes.PUT("/:id", h.Update)
		processes.DELETE("/:id", h.Delete)

		processes.POST("/:id/items", h.AddLineItem)
		processes.PATCH("/:id/items/:index", h.EditLineItem)
		processes.DELETE("/:id/items/:index", h.RemoveLineItem)

		processes.POST("/:id/competitors/price", h.SetCompetitorPrice)
		processes.POST("/:id/competitors/supplier", h.SetCompetitorSupplier)

		processes.POST("/:id/finalize", h.Finalize)
		processes.POST("/:id/reopen", h.Reopen)

		processes.GET("/:id/consolidation", h.GetConsolidation)

		processes.POST("/:id/import/delimited", h.ImportDelimited)
		processes.POST("/:id/import/invoice-xml", h.ImportInvoiceXML)
	}

	rg.GET("/transactions/:transactionId/process", h.GetByTransaction)
}

func (h *ProcessHandler) bindID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid process ID")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid process ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProcessHandler) bindIDAndIndex(c *gin.Context) (uuid.UUID, int, bool) {
	var req dto.IndexRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.BadRequest(c, "Invalid process ID or item index")
		return uuid.Nil, 0, false
	}
	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.BadRequest(c, "Invalid process ID")
		return uuid.Nil, 0, false
	}
	return id, req.Index, true
}

// Create opens an accountability process for a transaction
func (h *ProcessHandler) Create(c *gin.Context) {
	var req procurement.CreateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List returns all processes, optionally filtered by status
func (h *ProcessHandler) List(c *gin.Context) {
	var filter procurement.ProcessListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, len(items))
}

// GetByID returns one process with its full reconciliation state
func (h *ProcessHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByTransaction returns the process bound to a transaction
func (h *ProcessHandler) GetByTransaction(c *gin.Context) {
	transactionID, err := uuid.Parse(c.Param("transactionId"))
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}

	resp, err := h.service.GetByTransaction(c.Request.Context(), transactionID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update replaces a process's editable state from a full snapshot
func (h *ProcessHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req procurement.UpdateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a process
func (h *ProcessHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// AddLineItem appends a line item to a process
func (h *ProcessHandler) AddLineItem(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req procurement.AddLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.AddLineItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// EditLineItem patches the line item at index
func (h *ProcessHandler) EditLineItem(c *gin.Context) {
	id, index, ok := h.bindIDAndIndex(c)
	if !ok {
		return
	}

	var req procurement.EditLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.EditLineItem(c.Request.Context(), id, index, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemoveLineItem removes the line item at index
func (h *ProcessHandler) RemoveLineItem(c *gin.Context) {
	id, index, ok := h.bindIDAndIndex(c)
	if !ok {
		return
	}

	resp, err := h.service.RemoveLineItem(c.Request.Context(), id, index)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetCompetitorPrice sets one competitor's quote for one line item
func (h *ProcessHandler) SetCompetitorPrice(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req procurement.SetCompetitorPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.SetCompetitorPrice(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetCompetitorSupplier binds a supplier identity to a competitor slot
func (h *ProcessHandler) SetCompetitorSupplier(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req procurement.SetCompetitorSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.SetCompetitorSupplier(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Finalize validates every invariant and marks the process completed
func (h *ProcessHandler) Finalize(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	resp, err := h.service.Finalize(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Reopen puts a completed process back in progress
func (h *ProcessHandler) Reopen(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	resp, err := h.service.Reopen(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetConsolidation returns the price comparison table for a process
func (h *ProcessHandler) GetConsolidation(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetConsolidation(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ImportDelimited parses delimited text and merges the items into a process
func (h *ProcessHandler) ImportDelimited(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req procurement.ImportTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.ImportDelimited(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// ImportInvoiceXML parses a fiscal XML document and merges the items into a
// process
func (h *ProcessHandler) ImportInvoiceXML(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req procurement.ImportXMLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.ImportInvoiceXML(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
