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

type clientFixture struct {
	clients   *stubClientRepo
	commandes *stubCommandeRepo
	svc       service.ClientService
}

func newClientFixture() *clientFixture {
	f := &clientFixture{
		clients:   newStubClientRepo(),
		commandes: newStubCommandeRepo(),
	}
	f.svc = service.NewClientService(f.clients, f.commandes)
	return f
}

func TestCreerClient(t *testing.T) {
	f := newClientFixture()

	resp, err := f.svc.Creer(context.Background(), dto.CreerClientRequest{
		Ref:           "CL-01",
		NomComplet:    "Acme SA",
		Devise:        "EUR",
		ModeTransport: "Maritime",
		IncoTerme:     "DAP",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Ref)
	assert.Equal(t, "CL-01", *resp.Ref)
	assert.Equal(t, "Acme SA", resp.NomComplet)
	assert.True(t, resp.IsActive)
}

func TestCreerClientNomDuplique(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	_, err := f.svc.Creer(ctx, dto.CreerClientRequest{NomComplet: "Acme SA"})
	require.NoError(t, err)

	_, err = f.svc.Creer(ctx, dto.CreerClientRequest{NomComplet: "Acme SA"})
	require.ErrorIs(t, err, service.ErrDuplicate)
}

func TestCreerClientsSansRef(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	// Deux clients sans référence coexistent: le vide devient NULL, pas une
	// valeur unique.
	a, err := f.svc.Creer(ctx, dto.CreerClientRequest{NomComplet: "Acme SA"})
	require.NoError(t, err)
	assert.Nil(t, a.Ref)

	b, err := f.svc.Creer(ctx, dto.CreerClientRequest{NomComplet: "Bravo SARL"})
	require.NoError(t, err)
	assert.Nil(t, b.Ref)
}

func TestMettreAJourClientMemeNom(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	resp, err := f.svc.Creer(ctx, dto.CreerClientRequest{Ref: "CL-01", NomComplet: "Acme SA"})
	require.NoError(t, err)

	// Garder son propre nom et sa propre référence n'est pas une collision.
	id := mustParseID(t, resp.ID)
	updated, err := f.svc.MettreAJour(ctx, id, dto.MettreAJourClientRequest{
		Ref:        "CL-01",
		NomComplet: "Acme SA",
		Devise:     "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "USD", updated.Devise)

	// Prendre le nom d'un autre client, si.
	_, err = f.svc.Creer(ctx, dto.CreerClientRequest{NomComplet: "Bravo SARL"})
	require.NoError(t, err)
	_, err = f.svc.MettreAJour(ctx, id, dto.MettreAJourClientRequest{NomComplet: "Bravo SARL"})
	require.ErrorIs(t, err, service.ErrDuplicate)
}

func TestSupprimerClientAvecCommandes(t *testing.T) {
	f := newClientFixture()
	ctx := context.Background()

	resp, err := f.svc.Creer(ctx, dto.CreerClientRequest{NomComplet: "Acme SA"})
	require.NoError(t, err)
	id := mustParseID(t, resp.ID)

	f.commandes.commandes[uuid.New()] = &model.Commande{
		ID: uuid.New(), ClientID: id, IsActive: true,
	}
	require.ErrorIs(t, f.svc.Supprimer(ctx, id), service.ErrConflit)

	for k := range f.commandes.commandes {
		delete(f.commandes.commandes, k)
	}
	require.NoError(t, f.svc.Supprimer(ctx, id))
}

func TestProcessCreerEtRenommer(t *testing.T) {
	processes := newStubProcessRepo()
	svc := service.NewProcessService(processes)
	ctx := context.Background()

	resp, err := svc.Creer(ctx, dto.CreerProcessRequest{Nom: "Usinage"})
	require.NoError(t, err)
	assert.Nil(t, resp.Ref)

	_, err = svc.Creer(ctx, dto.CreerProcessRequest{Nom: "Usinage"})
	require.ErrorIs(t, err, service.ErrDuplicate)

	id := mustParseID(t, resp.ID)
	updated, err := svc.MettreAJour(ctx, id, dto.MettreAJourProcessRequest{Ref: "PR-01", Nom: "Usinage CN"})
	require.NoError(t, err)
	require.NotNil(t, updated.Ref)
	assert.Equal(t, "PR-01", *updated.Ref)
	assert.Equal(t, "Usinage CN", updated.Nom)
}
