package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lyepez-glitch/VitalCore/internal/realtime"
	"github.com/lyepez-glitch/VitalCore/internal/service"
	resp "github.com/lyepez-glitch/VitalCore/internal/transport/http/response"
)

type VitalsHandler struct {
	svc      *service.VitalsService
	notifier realtime.Notifier // nil when no realtime transport is configured
	log      *zap.Logger
}

func NewVitalsHandler(svc *service.VitalsService, notifier realtime.Notifier, log *zap.Logger) *VitalsHandler {
	return &VitalsHandler{svc: svc, notifier: notifier, log: log}
}

// GetCellLifespans serves GET /cells: the lifespan column only.
func (h *VitalsHandler) GetCellLifespans(c *gin.Context) {
	lifespans, err := h.svc.CellLifespans(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lifespan": lifespans})
}

// ListCells serves GET /cellss, the legacy route that returns full records.
// It overlaps GET /cells and is kept for frontend compatibility.
func (h *VitalsHandler) ListCells(c *gin.Context) {
	cells, err := h.svc.ListCells(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cells": cells})
}

func (h *VitalsHandler) ListGenes(c *gin.Context) {
	genes, err := h.svc.ListGenes(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"genes": genes})
}

// BulkUpdateLifespans serves PUT /cells. Position i of the body array
// targets the cell with id i+1. Anything but an integer array is a 400 before
// any write happens.
func (h *VitalsHandler) BulkUpdateLifespans(c *gin.Context) {
	var body struct {
		Lifespan json.RawMessage `json:"lifespan"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.Err(c, http.StatusBadRequest, "invalid JSON body")
		return
	}
	// json.Unmarshal accepts "null" into a slice, leaving it nil. Only a
	// real array may pass.
	raw := bytes.TrimSpace(body.Lifespan)
	var values []int
	if len(raw) == 0 || raw[0] != '[' || json.Unmarshal(raw, &values) != nil {
		resp.Err(c, http.StatusBadRequest, "lifespan must be an array of integers")
		return
	}

	applied, err := h.svc.UpdateLifespans(c.Request.Context(), values)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	if h.notifier != nil {
		h.notifier.Notify("lifespanUpdated", gin.H{"lifespan": values})
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("updated lifespan for %d cells", applied)})
}
