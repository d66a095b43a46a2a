package handler

import (
	"net/http"

	"eleostock/internal/dto"
	"eleostock/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientsHandler struct {
	svc    service.ClientService
	export service.ExportService
}

func NewClientsHandler(svc service.ClientService, export service.ExportService) *ClientsHandler {
	return &ClientsHandler{svc: svc, export: export}
}

func (h *ClientsHandler) Creer(c *gin.Context) {
	var req dto.CreerClientRequest
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

func (h *ClientsHandler) GetByID(c *gin.Context) {
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

func (h *ClientsHandler) Lister(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		resp []dto.ClientResponse
		err  error
	)
	switch {
	case c.Query("nomComplet") != "":
		resp, err = h.svc.RechercherParNom(ctx, c.Query("nomComplet"))
	case c.Query("modeTransport") != "":
		resp, err = h.svc.RechercherParModeTransport(ctx, c.Query("modeTransport"))
	case c.Query("incoTerme") != "":
		resp, err = h.svc.RechercherParIncoTerme(ctx, c.Query("incoTerme"))
	default:
		resp, err = h.svc.Lister(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientsHandler) ListerSimple(c *gin.Context) {
	resp, err := h.svc.ListerSimple(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClientsHandler) NomsDistincts(c *gin.Context) {
	noms, err := h.svc.NomsDistincts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, noms)
}

func (h *ClientsHandler) MettreAJour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MettreAJourClientRequest
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

func (h *ClientsHandler) Supprimer(c *gin.Context) {
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

func (h *ClientsHandler) Exporter(c *gin.Context) {
	f, err := h.export.ExporterClients(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	writeExcel(c, f, "clients.xlsx")
}
