package service_test

import (
	"context"
	"testing"

	"eleostock/internal/dto"
	"eleostock/internal/model"
	"eleostock/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// livraisonFixture wires the delivery flow end to end on in-memory stubs:
// productions credit stock, livraisons debit it and drive order fulfillment.
type livraisonFixture struct {
	articles    *stubArticleRepo
	clients     *stubClientRepo
	commandes   *stubCommandeRepo
	livraisons  *stubLivraisonRepo
	productions *stubProductionRepo

	livraisonSvc  service.LivraisonService
	productionSvc service.ProductionService
}

func newLivraisonFixture() *livraisonFixture {
	f := &livraisonFixture{
		articles:    newStubArticleRepo(),
		clients:     newStubClientRepo(),
		commandes:   newStubCommandeRepo(),
		livraisons:  newStubLivraisonRepo(),
		productions: newStubProductionRepo(),
	}
	f.livraisonSvc = service.NewLivraisonService(f.livraisons, f.articles, f.clients, f.commandes)
	f.productionSvc = service.NewProductionService(f.productions, f.articles)
	return f
}

func (f *livraisonFixture) seedArticle(t *testing.T, ref string, stock int) *model.Article {
	t.Helper()
	a := &model.Article{Ref: ref, Article: "Article " + ref, Stock: stock, IsActive: true}
	require.NoError(t, f.articles.Create(context.Background(), a))
	return a
}

func (f *livraisonFixture) seedCommande(t *testing.T, article *model.Article, clientNom, numero string, quantite int) *model.Commande {
	t.Helper()
	client := &model.Client{NomComplet: clientNom, IsActive: true}
	require.NoError(t, f.clients.Create(context.Background(), client))
	c := &model.Commande{
		ArticleID:            article.ID,
		ArticleRef:           article.Ref,
		ArticleNom:           article.Article,
		ClientID:             client.ID,
		ClientNom:            clientNom,
		NumeroCommandeClient: numero,
		TypeCommande:         model.CommandeFerme,
		Quantite:             quantite,
		IsActive:             true,
	}
	require.NoError(t, f.commandes.Create(context.Background(), c))
	return c
}

func TestLivraisonFluxComplet(t *testing.T) {
	f := newLivraisonFixture()
	ctx := context.Background()
	article := f.seedArticle(t, "ART-01", 0)
	commande := f.seedCommande(t, article, "Acme SA", "CMD-100", 60)

	// La production crédite le stock.
	_, err := f.productionSvc.Creer(ctx, dto.CreerProductionRequest{
		ArticleRef:     "ART-01",
		Quantite:       100,
		DateProduction: "2025-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 100, article.Stock)

	// La livraison débite le stock et solde la commande.
	resp, err := f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       60,
		DateLivraison:        "2025-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "1/2025", resp.NumeroBL)
	assert.Equal(t, 60, resp.QuantiteLivree)
	assert.Equal(t, 40, article.Stock)
	assert.False(t, commande.IsActive, "une commande entièrement livrée doit être soldée")
}

func TestLivraisonStockInsuffisant(t *testing.T) {
	f := newLivraisonFixture()
	ctx := context.Background()
	article := f.seedArticle(t, "ART-01", 10)
	f.seedCommande(t, article, "Acme SA", "CMD-100", 60)

	_, err := f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       20,
		DateLivraison:        "2025-03-10",
	})
	require.ErrorIs(t, err, service.ErrStockInsuffisant)
	assert.Equal(t, 10, article.Stock, "le stock ne doit pas bouger quand la livraison échoue")
}

func TestLivraisonSurLivraison(t *testing.T) {
	f := newLivraisonFixture()
	ctx := context.Background()
	article := f.seedArticle(t, "ART-01", 200)
	f.seedCommande(t, article, "Acme SA", "CMD-100", 50)

	_, err := f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       40,
		DateLivraison:        "2025-03-10",
	})
	require.NoError(t, err)

	_, err = f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       20,
		DateLivraison:        "2025-03-11",
	})
	require.ErrorIs(t, err, service.ErrSurLivraison)
	assert.Equal(t, 160, article.Stock, "seule la première livraison a débité le stock")
}

func TestLivraisonDoublonMemeJour(t *testing.T) {
	f := newLivraisonFixture()
	ctx := context.Background()
	article := f.seedArticle(t, "ART-01", 100)
	f.seedCommande(t, article, "Acme SA", "CMD-100", 50)

	_, err := f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       10,
		DateLivraison:        "2025-03-10",
	})
	require.NoError(t, err)

	_, err = f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       10,
		DateLivraison:        "2025-03-10",
	})
	require.ErrorIs(t, err, service.ErrDoublon)
}

func TestNumeroBLSequenceParAnnee(t *testing.T) {
	f := newLivraisonFixture()
	ctx := context.Background()
	article := f.seedArticle(t, "ART-01", 1000)
	f.seedCommande(t, article, "Acme SA", "CMD-100", 500)

	// Un historique existant amorce le compteur de l'année.
	ancienne := &model.Livraison{ID: uuid.New(), NumeroBL: "3/2025", IsActive: false}
	f.livraisons.livraisons[ancienne.ID] = ancienne

	r1, err := f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       10,
		DateLivraison:        "2025-04-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "4/2025", r1.NumeroBL)

	r2, err := f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       10,
		DateLivraison:        "2025-04-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "5/2025", r2.NumeroBL)

	// Nouvelle année, nouveau compteur.
	r3, err := f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       10,
		DateLivraison:        "2026-01-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "1/2026", r3.NumeroBL)
}

func TestSupprimerLivraisonRestaureStockEtCommande(t *testing.T) {
	f := newLivraisonFixture()
	ctx := context.Background()
	article := f.seedArticle(t, "ART-01", 100)
	commande := f.seedCommande(t, article, "Acme SA", "CMD-100", 60)

	resp, err := f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       60,
		DateLivraison:        "2025-03-10",
	})
	require.NoError(t, err)
	require.False(t, commande.IsActive)
	require.Equal(t, 40, article.Stock)

	id := mustParseID(t, resp.ID)
	require.NoError(t, f.livraisonSvc.Supprimer(ctx, id))

	assert.Equal(t, 100, article.Stock)
	assert.True(t, commande.IsActive, "une commande repasse active quand la livraison qui la soldait disparaît")
}

func TestMettreAJourLivraisonCommandeSoldee(t *testing.T) {
	f := newLivraisonFixture()
	ctx := context.Background()
	article := f.seedArticle(t, "ART-01", 100)
	commande := f.seedCommande(t, article, "Acme SA", "CMD-100", 60)

	resp, err := f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       60,
		DateLivraison:        "2025-03-10",
	})
	require.NoError(t, err)
	require.False(t, commande.IsActive)

	// La commande est inactive mais reste une cible valide pour sa propre
	// livraison. Réduire la quantité la réactive.
	id := mustParseID(t, resp.ID)
	updated, err := f.livraisonSvc.MettreAJour(ctx, id, dto.MettreAJourLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       30,
		DateLivraison:        "2025-03-12",
	})
	require.NoError(t, err)

	assert.Equal(t, resp.NumeroBL, updated.NumeroBL, "le numéro de BL ne change jamais")
	assert.Equal(t, 30, updated.QuantiteLivree)
	assert.Equal(t, 70, article.Stock)
	assert.True(t, commande.IsActive)
}

func TestMettreAJourLivraisonDepassement(t *testing.T) {
	f := newLivraisonFixture()
	ctx := context.Background()
	article := f.seedArticle(t, "ART-01", 100)
	f.seedCommande(t, article, "Acme SA", "CMD-100", 50)

	r1, err := f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       30,
		DateLivraison:        "2025-03-10",
	})
	require.NoError(t, err)
	_, err = f.livraisonSvc.Creer(ctx, dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       10,
		DateLivraison:        "2025-03-11",
	})
	require.NoError(t, err)

	// 10 livrées par l'autre BL + 45 demandées > 50 commandées.
	id := mustParseID(t, r1.ID)
	_, err = f.livraisonSvc.MettreAJour(ctx, id, dto.MettreAJourLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		QuantiteLivree:       45,
		DateLivraison:        "2025-03-10",
	})
	require.ErrorIs(t, err, service.ErrSurLivraison)
}

func TestLivraisonCommandeIntrouvable(t *testing.T) {
	f := newLivraisonFixture()
	f.seedArticle(t, "ART-01", 100)

	_, err := f.livraisonSvc.Creer(context.Background(), dto.CreerLivraisonRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-404",
		QuantiteLivree:       10,
		DateLivraison:        "2025-03-10",
	})
	require.ErrorIs(t, err, service.ErrNotFound)
}
