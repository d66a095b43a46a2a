package handler

import (
	"fmt"
	"net/http"
	"strings"

	"eleostock/internal/dto"
	"eleostock/internal/infra"
	"eleostock/internal/model"
	"eleostock/internal/repository"
	"eleostock/internal/service"

	"github.com/gin-gonic/gin"
)

type LivraisonsHandler struct {
	svc    service.LivraisonService
	repo   repository.LivraisonRepository
	export service.ExportService
}

func NewLivraisonsHandler(svc service.LivraisonService, repo repository.LivraisonRepository, export service.ExportService) *LivraisonsHandler {
	return &LivraisonsHandler{svc: svc, repo: repo, export: export}
}

func (h *LivraisonsHandler) Creer(c *gin.Context) {
	var req dto.CreerLivraisonRequest
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

func (h *LivraisonsHandler) GetByID(c *gin.Context) {
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

func (h *LivraisonsHandler) Lister(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		resp []dto.LivraisonResponse
		err  error
	)
	switch {
	case c.Query("articleRef") != "":
		resp, err = h.svc.RechercherParArticleRef(ctx, c.Query("articleRef"))
	case c.Query("clientNom") != "":
		resp, err = h.svc.RechercherParClientNom(ctx, c.Query("clientNom"))
	case c.Query("numeroCommande") != "":
		resp, err = h.svc.RechercherParNumeroCommande(ctx, c.Query("numeroCommande"))
	default:
		resp, err = h.svc.Lister(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LivraisonsHandler) MettreAJour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MettreAJourLivraisonRequest
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

func (h *LivraisonsHandler) Supprimer(c *gin.Context) {
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

// BonDeLivraison streams the delivery-note PDF for a livraison.
func (h *LivraisonsHandler) BonDeLivraison(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	livraison, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, fmt.Errorf("%w: livraison %s", service.ErrNotFound, id))
		return
	}
	h.servirBL(c, livraison)
}

func (h *LivraisonsHandler) servirBL(c *gin.Context, l *model.Livraison) {
	filename := fmt.Sprintf("bl_%s.pdf", strings.ReplaceAll(l.NumeroBL, "/", "-"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/pdf")
	if err := infra.GenerateBonLivraisonPDF(l, c.Writer); err != nil {
		_ = c.Error(err)
	}
}

func (h *LivraisonsHandler) Exporter(c *gin.Context) {
	f, err := h.export.ExporterLivraisons(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	writeExcel(c, f, "livraisons.xlsx")
}
