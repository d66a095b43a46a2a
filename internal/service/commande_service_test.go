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

type commandeFixture struct {
	articles   *stubArticleRepo
	clients    *stubClientRepo
	commandes  *stubCommandeRepo
	livraisons *stubLivraisonRepo
	svc        service.CommandeService
}

func newCommandeFixture() *commandeFixture {
	f := &commandeFixture{
		articles:   newStubArticleRepo(),
		clients:    newStubClientRepo(),
		commandes:  newStubCommandeRepo(),
		livraisons: newStubLivraisonRepo(),
	}
	f.svc = service.NewCommandeService(f.commandes, f.articles, f.clients, f.livraisons)
	return f
}

func (f *commandeFixture) seed(t *testing.T) (*model.Article, *model.Client) {
	t.Helper()
	ctx := context.Background()
	article := &model.Article{Ref: "ART-01", Article: "Bride usinée", IsActive: true}
	require.NoError(t, f.articles.Create(ctx, article))
	client := &model.Client{NomComplet: "Acme SA", IsActive: true}
	require.NoError(t, f.clients.Create(ctx, client))
	return article, client
}

func TestCreerCommande(t *testing.T) {
	f := newCommandeFixture()
	f.seed(t)

	resp, err := f.svc.Creer(context.Background(), dto.CreerCommandeRequest{
		ArticleRef:           "ART-01",
		ClientNom:            "Acme SA",
		NumeroCommandeClient: "CMD-100",
		TypeCommande:         model.CommandeFerme,
		Quantite:             100,
		DateSouhaitee:        "2025-06-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "ART-01", resp.ArticleRef)
	assert.Equal(t, "Bride usinée", resp.ArticleNom, "le nom de l'article est figé à la création")
	assert.Equal(t, "Acme SA", resp.ClientNom)
	assert.Equal(t, 100, resp.Quantite)
	assert.Equal(t, 0, resp.QuantiteLivree)
	assert.Equal(t, 100, resp.QuantiteNonLivree)
	assert.True(t, resp.IsActive)
}

func TestCreerCommandeReferencesInconnues(t *testing.T) {
	f := newCommandeFixture()
	f.seed(t)
	ctx := context.Background()

	_, err := f.svc.Creer(ctx, dto.CreerCommandeRequest{
		ArticleRef: "ART-404", ClientNom: "Acme SA",
		NumeroCommandeClient: "CMD-100", TypeCommande: model.CommandeFerme,
		Quantite: 10, DateSouhaitee: "2025-06-01",
	})
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = f.svc.Creer(ctx, dto.CreerCommandeRequest{
		ArticleRef: "ART-01", ClientNom: "Inconnu SARL",
		NumeroCommandeClient: "CMD-100", TypeCommande: model.CommandeFerme,
		Quantite: 10, DateSouhaitee: "2025-06-01",
	})
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestCommandeQuantitesDerivees(t *testing.T) {
	f := newCommandeFixture()
	f.seed(t)
	ctx := context.Background()

	resp, err := f.svc.Creer(ctx, dto.CreerCommandeRequest{
		ArticleRef: "ART-01", ClientNom: "Acme SA",
		NumeroCommandeClient: "CMD-100", TypeCommande: model.CommandeFerme,
		Quantite: 100, DateSouhaitee: "2025-06-01",
	})
	require.NoError(t, err)

	id := mustParseID(t, resp.ID)
	f.livraisons.livraisons[uuid.New()] = &model.Livraison{
		ID: uuid.New(), CommandeID: id, QuantiteLivree: 30, IsActive: true,
	}

	got, err := f.svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 30, got.QuantiteLivree)
	assert.Equal(t, 70, got.QuantiteNonLivree)
}

func TestResumerCommandes(t *testing.T) {
	f := newCommandeFixture()
	f.seed(t)
	ctx := context.Background()

	for _, q := range []int{100, 50} {
		_, err := f.svc.Creer(ctx, dto.CreerCommandeRequest{
			ArticleRef: "ART-01", ClientNom: "Acme SA",
			NumeroCommandeClient: "CMD-100", TypeCommande: model.CommandeFerme,
			Quantite: q, DateSouhaitee: "2025-06-01",
		})
		require.NoError(t, err)
	}

	summary, err := f.svc.Resumer(ctx, dto.RechercheCommandeQuery{ArticleRef: "ART-01"})
	require.NoError(t, err)
	assert.Equal(t, 150, summary.TotalQuantite)
	assert.Equal(t, 2, summary.NombreCommandes)
}

func TestRechercherCommandesPeriodeInvalide(t *testing.T) {
	f := newCommandeFixture()
	f.seed(t)

	_, err := f.svc.Rechercher(context.Background(), dto.RechercheCommandeQuery{
		ArticleRef:     "ART-01",
		DebutSouhaitee: "2025-06-30",
		FinSouhaitee:   "2025-06-01",
	})
	require.ErrorIs(t, err, service.ErrValidation)
}

func TestMettreAJourCommandeRecalculeSolde(t *testing.T) {
	f := newCommandeFixture()
	f.seed(t)
	ctx := context.Background()

	resp, err := f.svc.Creer(ctx, dto.CreerCommandeRequest{
		ArticleRef: "ART-01", ClientNom: "Acme SA",
		NumeroCommandeClient: "CMD-100", TypeCommande: model.CommandeFerme,
		Quantite: 50, DateSouhaitee: "2025-06-01",
	})
	require.NoError(t, err)

	id := mustParseID(t, resp.ID)
	f.livraisons.livraisons[uuid.New()] = &model.Livraison{
		ID: uuid.New(), CommandeID: id, QuantiteLivree: 50, IsActive: true,
	}

	// Passer la quantité à 80 repasse la commande au-dessus du livré.
	updated, err := f.svc.MettreAJour(ctx, id, dto.MettreAJourCommandeRequest{
		ArticleRef: "ART-01", ClientNom: "Acme SA",
		NumeroCommandeClient: "CMD-100", TypeCommande: model.CommandePlanifiee,
		Quantite: 80, DateSouhaitee: "2025-07-01",
	})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)
	assert.Equal(t, 50, updated.QuantiteLivree)
	assert.Equal(t, 30, updated.QuantiteNonLivree)

	// La ramener à 40 la solde.
	updated, err = f.svc.MettreAJour(ctx, id, dto.MettreAJourCommandeRequest{
		ArticleRef: "ART-01", ClientNom: "Acme SA",
		NumeroCommandeClient: "CMD-100", TypeCommande: model.CommandeFerme,
		Quantite: 40, DateSouhaitee: "2025-07-01",
	})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, 0, updated.QuantiteNonLivree, "jamais négatif")
}

func TestSupprimerCommandeAvecLivraisons(t *testing.T) {
	f := newCommandeFixture()
	f.seed(t)
	ctx := context.Background()

	resp, err := f.svc.Creer(ctx, dto.CreerCommandeRequest{
		ArticleRef: "ART-01", ClientNom: "Acme SA",
		NumeroCommandeClient: "CMD-100", TypeCommande: model.CommandeFerme,
		Quantite: 50, DateSouhaitee: "2025-06-01",
	})
	require.NoError(t, err)
	id := mustParseID(t, resp.ID)

	f.livraisons.livraisons[uuid.New()] = &model.Livraison{
		ID: uuid.New(), CommandeID: id, QuantiteLivree: 10, IsActive: true,
	}
	require.ErrorIs(t, f.svc.Supprimer(ctx, id), service.ErrConflit)

	// Sans livraison active, la suppression passe.
	for k := range f.livraisons.livraisons {
		delete(f.livraisons.livraisons, k)
	}
	require.NoError(t, f.svc.Supprimer(ctx, id))
	_, err = f.svc.GetByID(ctx, id)
	require.ErrorIs(t, err, service.ErrNotFound)
}
