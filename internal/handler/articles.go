package handler

import (
	"net/http"

	"eleostock/internal/apierror"
	"eleostock/internal/dto"
	"eleostock/internal/infra"
	"eleostock/internal/service"

	"github.com/gin-gonic/gin"
)

type ArticlesHandler struct {
	svc    service.ArticleService
	export service.ExportService
	images *infra.ImageStore
}

func NewArticlesHandler(svc service.ArticleService, export service.ExportService, images *infra.ImageStore) *ArticlesHandler {
	return &ArticlesHandler{svc: svc, export: export, images: images}
}

func (h *ArticlesHandler) Creer(c *gin.Context) {
	var req dto.CreerArticleRequest
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

func (h *ArticlesHandler) GetByID(c *gin.Context) {
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

func (h *ArticlesHandler) GetByRef(c *gin.Context) {
	resp, err := h.svc.GetByRef(c.Request.Context(), c.Param("ref"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Lister handles the plain list and the field-scoped searches, picked by
// query parameter.
func (h *ArticlesHandler) Lister(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		resp []dto.ArticleResponse
		err  error
	)
	switch {
	case c.Query("nom") != "":
		resp, err = h.svc.RechercherParNom(ctx, c.Query("nom"))
	case c.Query("famille") != "":
		resp, err = h.svc.RechercherParFamille(ctx, c.Query("famille"))
	case c.Query("typeProcess") != "":
		resp, err = h.svc.RechercherParTypeProcess(ctx, c.Query("typeProcess"))
	case c.Query("typeProduit") != "":
		resp, err = h.svc.RechercherParTypeProduit(ctx, c.Query("typeProduit"))
	default:
		resp, err = h.svc.Lister(ctx)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ValeursDistinctes serves /articles/distinct/:champ where champ is one of
// refs, noms, familles, typeProcess, typeProduits.
func (h *ArticlesHandler) ValeursDistinctes(c *gin.Context) {
	values, err := h.svc.ValeursDistinctes(c.Request.Context(), c.Param("champ"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, values)
}

func (h *ArticlesHandler) MettreAJour(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MettreAJourArticleRequest
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

func (h *ArticlesHandler) Supprimer(c *gin.Context) {
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

func (h *ArticlesHandler) Exporter(c *gin.Context) {
	f, err := h.export.ExporterArticles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	writeExcel(c, f, "articles.xlsx")
}

// ── Images ───────────────────────────────────────────────────────────────────

func (h *ArticlesHandler) UploadImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("fichier image manquant"))
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("fichier image illisible"))
		return
	}
	defer src.Close()

	ref, err := h.images.Save(src, file.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	if err := h.svc.DefinirImage(c.Request.Context(), id, &ref); err != nil {
		_ = h.images.Delete(ref)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"imageRef": ref})
}

func (h *ArticlesHandler) GetImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	article, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if article.ImageRef == nil {
		c.JSON(http.StatusNotFound, apierror.New("l'article n'a pas d'image"))
		return
	}
	path, err := h.images.Path(*article.ImageRef)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("image introuvable"))
		return
	}
	c.File(path)
}

func (h *ArticlesHandler) DeleteImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	article, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if article.ImageRef != nil {
		if err := h.images.Delete(*article.ImageRef); err != nil {
			respondError(c, err)
			return
		}
	}
	if err := h.svc.DefinirImage(c.Request.Context(), id, nil); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
