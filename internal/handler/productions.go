package handler

import (
	"net/http"
	"strconv"

	"eleostock/internal/apierror"
	"eleostock/internal/dto"
	"eleostock/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductionsHandler struct {
	svc    service.ProductionService
	export service.ExportService
}

func NewProductionsHandler(svc service.ProductionService, export service.ExportService) *ProductionsHandler {
	return &ProductionsHandler{svc: svc, export: export}
}

func (h *ProductionsHandler) Creer(c *gin.Context) {
	var req dto.CreerProductionRequest
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

func (h *ProductionsHandler) GetByID(c *gin.Context) {
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

func (h *ProductionsHandler) Lister(c *gin.Context) {
	ctx := c.Request.Context()
	articleRef := c.Query("articleRef")
	date := c.Query("date")
	anneeStr, moisStr := c.Query("annee"), c.Query("mois")

	var (
		resp []dto.ProductionResponse
		err  error
	)
	switch {
	case anneeStr != "" && moisStr != "":
		annee, errA := strconv.Atoi(anneeStr)
		mois, errM := strconv.Atoi(moisStr)
		if errA != nil || errM != nil {
			c.JSON(http.StatusBadRequest, apierror.New("annee et mois doivent être numériques"))
			return
		}
		if articleRef != "" {
			resp, err = h.svc.RechercherParArticleRefEtMois(ctx, articleRef, annee, mois)
		} else {
			resp, err = h.svc.RechercherParMois(ctx, annee, mois)
		}
	case articleRef != "" && date != "":
		resp, err = h.svc.RechercherParArticleRefEtDate(ctx, articleRef, date)
	case articleRef != "":
		resp, err = h.svc.RechercherParArticleRef(ctx, articleRef)
	case date != "":
		resp, err = h.svc.RechercherParDate(ctx, date)
	default:
		resp, err = h.svc.Lister(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductionsHandler) MettreAJour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MettreAJourProductionRequest
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

func (h *ProductionsHandler) Supprimer(c *gin.Context) {
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

func (h *ProductionsHandler) Exporter(c *gin.Context) {
	f, err := h.export.ExporterProductions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	writeExcel(c, f, "productions.xlsx")
}
