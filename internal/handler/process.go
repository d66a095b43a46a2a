package handler

import (
	"net/http"

	"eleostock/internal/dto"
	"eleostock/internal/service"

	"github.com/gin-gonic/gin"
)

type ProcessHandler struct {
	svc    service.ProcessService
	export service.ExportService
}

func NewProcessHandler(svc service.ProcessService, export service.ExportService) *ProcessHandler {
	return &ProcessHandler{svc: svc, export: export}
}

func (h *ProcessHandler) Creer(c *gin.Context) {
	var req dto.CreerProcessRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Creer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProcessHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProcessHandler) Lister(c *gin.Context) {
	resp, err := h.svc.Lister(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProcessHandler) ListerSimple(c *gin.Context) {
	resp, err := h.svc.ListerSimple(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProcessHandler) MettreAJour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MettreAJourProcessRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.MettreAJour(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProcessHandler) Supprimer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Supprimer(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProcessHandler) Exporter(c *gin.Context) {
	f, err := h.export.ExporterProcess(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	writeExcel(c, f, "process.xlsx")
}
