package handler

import (
	"net/http"

	"eleostock/internal/dto"
	"eleostock/internal/service"

	"github.com/gin-gonic/gin"
)

type CommandesHandler struct {
	svc    service.CommandeService
	export service.ExportService
}

func NewCommandesHandler(svc service.CommandeService, export service.ExportService) *CommandesHandler {
	return &CommandesHandler{svc: svc, export: export}
}

func (h *CommandesHandler) Creer(c *gin.Context) {
	var req dto.CreerCommandeRequest
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

func (h *CommandesHandler) GetByID(c *gin.Context) {
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

// Lister serves both the plain list and every filtered search through the
// same query-parameter matrix the summary and export endpoints use.
func (h *CommandesHandler) Lister(c *gin.Context) {
	var q dto.RechercheCommandeQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	resp, err := h.svc.Rechercher(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CommandesHandler) Resumer(c *gin.Context) {
	var q dto.RechercheCommandeQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	resp, err := h.svc.Resumer(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CommandesHandler) MettreAJour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MettreAJourCommandeRequest
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

func (h *CommandesHandler) Supprimer(c *gin.Context) {
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

func (h *CommandesHandler) Exporter(c *gin.Context) {
	var q dto.RechercheCommandeQuery
	if !bindQueryAndValidate(c, &q) {
		return
	}
	f, err := h.export.ExporterCommandes(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}
	writeExcel(c, f, "commandes.xlsx")
}
