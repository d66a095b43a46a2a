package service_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"eleostock/internal/model"
	"eleostock/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mustParseID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}

// In-memory repository stubs. They honor the same contracts as the GORM
// implementations (gorm.ErrRecordNotFound on missing rows, floor-checked
// stock decrements) and return a nil *gorm.DB so runTx executes the
// transaction body directly.

// ── stubArticleRepo ───────────────────────────────────────────────────────────

type stubArticleRepo struct {
	articles map[uuid.UUID]*model.Article
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{articles: make(map[uuid.UUID]*model.Article)}
}

func (r *stubArticleRepo) Create(_ context.Context, a *model.Article) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	r.articles[a.ID] = a
	return nil
}

func (r *stubArticleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Article, error) {
	a, ok := r.articles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubArticleRepo) FindByRef(_ context.Context, ref string) (*model.Article, error) {
	for _, a := range r.articles {
		if a.Ref == ref {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubArticleRepo) ExistsByRef(_ context.Context, ref string) (bool, error) {
	for _, a := range r.articles {
		if a.Ref == ref {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubArticleRepo) ListActive(_ context.Context) ([]model.Article, error) {
	return r.filter(func(a *model.Article) bool { return true }), nil
}

func (r *stubArticleRepo) SearchByNom(_ context.Context, nom string) ([]model.Article, error) {
	return r.filter(func(a *model.Article) bool {
		return strings.Contains(strings.ToLower(a.Article), strings.ToLower(nom))
	}), nil
}

func (r *stubArticleRepo) FindByFamille(_ context.Context, famille string) ([]model.Article, error) {
	return r.filter(func(a *model.Article) bool { return a.Famille == famille }), nil
}

func (r *stubArticleRepo) FindByTypeProcess(_ context.Context, typeProcess string) ([]model.Article, error) {
	return r.filter(func(a *model.Article) bool { return a.TypeProcess == typeProcess }), nil
}

func (r *stubArticleRepo) FindByTypeProduit(_ context.Context, typeProduit string) ([]model.Article, error) {
	return r.filter(func(a *model.Article) bool { return a.TypeProduit == typeProduit }), nil
}

func (r *stubArticleRepo) Distinct(_ context.Context, column string) ([]string, error) {
	seen := map[string]bool{}
	var values []string
	for _, a := range r.articles {
		if !a.IsActive {
			continue
		}
		var v string
		switch column {
		case "ref":
			v = a.Ref
		case "article":
			v = a.Article
		case "famille":
			v = a.Famille
		case "type_process":
			v = a.TypeProcess
		case "type_produit":
			v = a.TypeProduit
		}
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values, nil
}

func (r *stubArticleRepo) Update(_ context.Context, a *model.Article) error {
	r.articles[a.ID] = a
	return nil
}

func (r *stubArticleRepo) ReplaceClients(_ context.Context, a *model.Article, clients []model.Client) error {
	a.Clients = clients
	return nil
}

func (r *stubArticleRepo) ReplaceProcesses(_ context.Context, a *model.Article, processes []model.ArticleProcess) error {
	for i := range processes {
		processes[i].ArticleID = a.ID
	}
	a.Processes = processes
	return nil
}

func (r *stubArticleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.articles, id)
	return nil
}

func (r *stubArticleRepo) AjusterStock(_ *gorm.DB, id uuid.UUID, delta int) error {
	a, ok := r.articles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.Stock += delta
	return nil
}

func (r *stubArticleRepo) DecrementerStock(_ *gorm.DB, id uuid.UUID, qte int) (bool, error) {
	a, ok := r.articles[id]
	if !ok {
		return false, nil
	}
	if a.Stock < qte {
		return false, nil
	}
	a.Stock -= qte
	return true, nil
}

func (r *stubArticleRepo) DB() *gorm.DB { return nil }

func (r *stubArticleRepo) filter(keep func(*model.Article) bool) []model.Article {
	var out []model.Article
	for _, a := range r.articles {
		if a.IsActive && keep(a) {
			out = append(out, *a)
		}
	}
	return out
}

var _ repository.ArticleRepository = (*stubArticleRepo)(nil)

// ── stubClientRepo ────────────────────────────────────────────────────────────

type stubClientRepo struct {
	clients map[uuid.UUID]*model.Client
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[uuid.UUID]*model.Client)}
}

func (r *stubClientRepo) Create(_ context.Context, c *model.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClientRepo) FindByNomComplet(_ context.Context, nomComplet string) (*model.Client, error) {
	for _, c := range r.clients {
		if c.NomComplet == nomComplet {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClientRepo) ExistsByRef(_ context.Context, ref string) (bool, error) {
	for _, c := range r.clients {
		if c.Ref != nil && *c.Ref == ref {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubClientRepo) ExistsByNomComplet(_ context.Context, nomComplet string) (bool, error) {
	for _, c := range r.clients {
		if c.NomComplet == nomComplet {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubClientRepo) ListActive(_ context.Context) ([]model.Client, error) {
	return r.filter(func(*model.Client) bool { return true }), nil
}

func (r *stubClientRepo) SearchByNomComplet(_ context.Context, nomComplet string) ([]model.Client, error) {
	return r.filter(func(c *model.Client) bool {
		return strings.Contains(strings.ToLower(c.NomComplet), strings.ToLower(nomComplet))
	}), nil
}

func (r *stubClientRepo) FindByModeTransport(_ context.Context, modeTransport string) ([]model.Client, error) {
	return r.filter(func(c *model.Client) bool { return c.ModeTransport == modeTransport }), nil
}

func (r *stubClientRepo) FindByIncoTerme(_ context.Context, incoTerme string) ([]model.Client, error) {
	return r.filter(func(c *model.Client) bool { return c.IncoTerme == incoTerme }), nil
}

func (r *stubClientRepo) DistinctNomComplets(_ context.Context) ([]string, error) {
	var noms []string
	for _, c := range r.clients {
		if c.IsActive {
			noms = append(noms, c.NomComplet)
		}
	}
	return noms, nil
}

func (r *stubClientRepo) FindByNoms(_ context.Context, noms []string) ([]model.Client, error) {
	wanted := map[string]bool{}
	for _, n := range noms {
		wanted[n] = true
	}
	return r.filter(func(c *model.Client) bool { return wanted[c.NomComplet] }), nil
}

func (r *stubClientRepo) Update(_ context.Context, c *model.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *stubClientRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clients, id)
	return nil
}

func (r *stubClientRepo) filter(keep func(*model.Client) bool) []model.Client {
	var out []model.Client
	for _, c := range r.clients {
		if c.IsActive && keep(c) {
			out = append(out, *c)
		}
	}
	return out
}

var _ repository.ClientRepository = (*stubClientRepo)(nil)

// ── stubProcessRepo ───────────────────────────────────────────────────────────

type stubProcessRepo struct {
	processes map[uuid.UUID]*model.Process
}

func newStubProcessRepo() *stubProcessRepo {
	return &stubProcessRepo{processes: make(map[uuid.UUID]*model.Process)}
}

func (r *stubProcessRepo) Create(_ context.Context, p *model.Process) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.processes[p.ID] = p
	return nil
}

func (r *stubProcessRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Process, error) {
	p, ok := r.processes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProcessRepo) FindByNom(_ context.Context, nom string) (*model.Process, error) {
	for _, p := range r.processes {
		if p.Nom == nom {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProcessRepo) ExistsByRef(_ context.Context, ref string) (bool, error) {
	for _, p := range r.processes {
		if p.Ref != nil && *p.Ref == ref {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProcessRepo) ExistsByNom(_ context.Context, nom string) (bool, error) {
	for _, p := range r.processes {
		if p.Nom == nom {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProcessRepo) ListActive(_ context.Context) ([]model.Process, error) {
	var out []model.Process
	for _, p := range r.processes {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProcessRepo) Update(_ context.Context, p *model.Process) error {
	r.processes[p.ID] = p
	return nil
}

func (r *stubProcessRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.processes, id)
	return nil
}

var _ repository.ProcessRepository = (*stubProcessRepo)(nil)

// ── stubCommandeRepo ──────────────────────────────────────────────────────────

type stubCommandeRepo struct {
	commandes map[uuid.UUID]*model.Commande
}

func newStubCommandeRepo() *stubCommandeRepo {
	return &stubCommandeRepo{commandes: make(map[uuid.UUID]*model.Commande)}
}

func (r *stubCommandeRepo) Create(_ context.Context, c *model.Commande) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.commandes[c.ID] = c
	return nil
}

func (r *stubCommandeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Commande, error) {
	c, ok := r.commandes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCommandeRepo) FindActiveByRefCommande(_ context.Context, articleRef, numeroCommandeClient, clientNom string) (*model.Commande, error) {
	for _, c := range r.commandes {
		if c.IsActive && c.ArticleRef == articleRef &&
			c.NumeroCommandeClient == numeroCommandeClient && c.ClientNom == clientNom {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCommandeRepo) ListActive(_ context.Context) ([]model.Commande, error) {
	return r.filter(func(*model.Commande) bool { return true }), nil
}

func (r *stubCommandeRepo) FindByArticleRef(_ context.Context, articleRef string) ([]model.Commande, error) {
	return r.filter(func(c *model.Commande) bool { return c.ArticleRef == articleRef }), nil
}

func (r *stubCommandeRepo) FindByClientNom(_ context.Context, clientNom string) ([]model.Commande, error) {
	return r.filter(func(c *model.Commande) bool { return c.ClientNom == clientNom }), nil
}

func (r *stubCommandeRepo) FindByDateSouhaitee(_ context.Context, date time.Time) ([]model.Commande, error) {
	return r.filter(func(c *model.Commande) bool { return c.DateSouhaitee.Equal(date) }), nil
}

func (r *stubCommandeRepo) FindByDateAjout(_ context.Context, date time.Time) ([]model.Commande, error) {
	return r.filter(func(c *model.Commande) bool { return sameDay(c.CreatedAt, date) }), nil
}

func (r *stubCommandeRepo) FindByArticleRefAndDateSouhaitee(_ context.Context, articleRef string, date time.Time) ([]model.Commande, error) {
	return r.filter(func(c *model.Commande) bool {
		return c.ArticleRef == articleRef && c.DateSouhaitee.Equal(date)
	}), nil
}

func (r *stubCommandeRepo) FindByArticleRefAndDateAjout(_ context.Context, articleRef string, date time.Time) ([]model.Commande, error) {
	return r.filter(func(c *model.Commande) bool {
		return c.ArticleRef == articleRef && sameDay(c.CreatedAt, date)
	}), nil
}

func (r *stubCommandeRepo) FindByArticleRefAndPeriodeSouhaitee(_ context.Context, articleRef string, debut, fin time.Time) ([]model.Commande, error) {
	return r.filter(func(c *model.Commande) bool {
		return c.ArticleRef == articleRef && !c.DateSouhaitee.Before(debut) && !c.DateSouhaitee.After(fin)
	}), nil
}

func (r *stubCommandeRepo) FindByArticleRefAndPeriodeAjout(_ context.Context, articleRef string, debut, fin time.Time) ([]model.Commande, error) {
	return r.filter(func(c *model.Commande) bool {
		return c.ArticleRef == articleRef && !c.CreatedAt.Before(debut) && c.CreatedAt.Before(fin.AddDate(0, 0, 1))
	}), nil
}

func (r *stubCommandeRepo) Update(_ context.Context, c *model.Commande) error {
	r.commandes[c.ID] = c
	return nil
}

func (r *stubCommandeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.commandes, id)
	return nil
}

func (r *stubCommandeRepo) CountActiveByArticleID(_ context.Context, articleID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range r.commandes {
		if c.IsActive && c.ArticleID == articleID {
			n++
		}
	}
	return n, nil
}

func (r *stubCommandeRepo) CountActiveByClientID(_ context.Context, clientID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range r.commandes {
		if c.IsActive && c.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

func (r *stubCommandeRepo) SetActiveTx(_ *gorm.DB, id uuid.UUID, active bool) error {
	c, ok := r.commandes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.IsActive = active
	return nil
}

func (r *stubCommandeRepo) DB() *gorm.DB { return nil }

func (r *stubCommandeRepo) filter(keep func(*model.Commande) bool) []model.Commande {
	var out []model.Commande
	for _, c := range r.commandes {
		if c.IsActive && keep(c) {
			out = append(out, *c)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

var _ repository.CommandeRepository = (*stubCommandeRepo)(nil)

// ── stubLivraisonRepo ─────────────────────────────────────────────────────────

type stubLivraisonRepo struct {
	livraisons map[uuid.UUID]*model.Livraison
	compteurs  map[int]int
}

func newStubLivraisonRepo() *stubLivraisonRepo {
	return &stubLivraisonRepo{
		livraisons: make(map[uuid.UUID]*model.Livraison),
		compteurs:  make(map[int]int),
	}
}

func (r *stubLivraisonRepo) CreateTx(_ *gorm.DB, l *model.Livraison) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	l.CreatedAt = time.Now()
	r.livraisons[l.ID] = l
	return nil
}

func (r *stubLivraisonRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Livraison, error) {
	l, ok := r.livraisons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return l, nil
}

func (r *stubLivraisonRepo) ListActive(_ context.Context) ([]model.Livraison, error) {
	return r.filter(func(*model.Livraison) bool { return true }), nil
}

func (r *stubLivraisonRepo) FindByArticleRef(_ context.Context, articleRef string) ([]model.Livraison, error) {
	return r.filter(func(l *model.Livraison) bool { return l.ArticleRef == articleRef }), nil
}

func (r *stubLivraisonRepo) FindByClientNom(_ context.Context, clientNom string) ([]model.Livraison, error) {
	return r.filter(func(l *model.Livraison) bool { return l.ClientNom == clientNom }), nil
}

func (r *stubLivraisonRepo) FindByNumeroCommande(_ context.Context, numeroCommande string) ([]model.Livraison, error) {
	return r.filter(func(l *model.Livraison) bool { return l.NumeroCommandeClient == numeroCommande }), nil
}

func (r *stubLivraisonRepo) SumQuantiteLivreeTx(_ *gorm.DB, commandeID uuid.UUID, excludeID *uuid.UUID) (int, error) {
	total := 0
	for _, l := range r.livraisons {
		if !l.IsActive || l.CommandeID != commandeID {
			continue
		}
		if excludeID != nil && l.ID == *excludeID {
			continue
		}
		total += l.QuantiteLivree
	}
	return total, nil
}

func (r *stubLivraisonRepo) ExistsActiveForCommandeDate(_ context.Context, numeroCommandeClient string, date time.Time, excludeID *uuid.UUID) (bool, error) {
	for _, l := range r.livraisons {
		if !l.IsActive || l.NumeroCommandeClient != numeroCommandeClient || !l.DateLivraison.Equal(date) {
			continue
		}
		if excludeID != nil && l.ID == *excludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *stubLivraisonRepo) UpdateTx(_ *gorm.DB, l *model.Livraison) error {
	r.livraisons[l.ID] = l
	return nil
}

func (r *stubLivraisonRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.livraisons, id)
	return nil
}

func (r *stubLivraisonRepo) CountActiveByArticleID(_ context.Context, articleID uuid.UUID) (int64, error) {
	var n int64
	for _, l := range r.livraisons {
		if l.IsActive && l.ArticleID == articleID {
			n++
		}
	}
	return n, nil
}

func (r *stubLivraisonRepo) CountActiveByCommandeID(_ context.Context, commandeID uuid.UUID) (int64, error) {
	var n int64
	for _, l := range r.livraisons {
		if l.IsActive && l.CommandeID == commandeID {
			n++
		}
	}
	return n, nil
}

// ProchainNumeroBL mirrors the real counter: a missing year is seeded from the
// highest existing "<n>/<annee>" number before the first increment.
func (r *stubLivraisonRepo) ProchainNumeroBL(_ *gorm.DB, annee int) (string, error) {
	if _, ok := r.compteurs[annee]; !ok {
		max := 0
		suffix := "/" + strconv.Itoa(annee)
		for _, l := range r.livraisons {
			if !strings.HasSuffix(l.NumeroBL, suffix) {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSuffix(l.NumeroBL, suffix))
			if err == nil && n > max {
				max = n
			}
		}
		r.compteurs[annee] = max
	}
	r.compteurs[annee]++
	return fmt.Sprintf("%d/%d", r.compteurs[annee], annee), nil
}

func (r *stubLivraisonRepo) DB() *gorm.DB { return nil }

func (r *stubLivraisonRepo) filter(keep func(*model.Livraison) bool) []model.Livraison {
	var out []model.Livraison
	for _, l := range r.livraisons {
		if l.IsActive && keep(l) {
			out = append(out, *l)
		}
	}
	return out
}

var _ repository.LivraisonRepository = (*stubLivraisonRepo)(nil)

// ── stubProductionRepo ────────────────────────────────────────────────────────

type stubProductionRepo struct {
	productions map[uuid.UUID]*model.Production
}

func newStubProductionRepo() *stubProductionRepo {
	return &stubProductionRepo{productions: make(map[uuid.UUID]*model.Production)}
}

func (r *stubProductionRepo) CreateTx(_ *gorm.DB, p *model.Production) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.productions[p.ID] = p
	return nil
}

func (r *stubProductionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Production, error) {
	p, ok := r.productions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductionRepo) ListActive(_ context.Context) ([]model.Production, error) {
	return r.filter(func(*model.Production) bool { return true }), nil
}

func (r *stubProductionRepo) FindByArticleRef(_ context.Context, articleRef string) ([]model.Production, error) {
	return r.filter(func(p *model.Production) bool { return p.ArticleRef == articleRef }), nil
}

func (r *stubProductionRepo) FindByDate(_ context.Context, date time.Time) ([]model.Production, error) {
	return r.filter(func(p *model.Production) bool { return p.DateProduction.Equal(date) }), nil
}

func (r *stubProductionRepo) FindByArticleRefAndDate(_ context.Context, articleRef string, date time.Time) ([]model.Production, error) {
	return r.filter(func(p *model.Production) bool {
		return p.ArticleRef == articleRef && p.DateProduction.Equal(date)
	}), nil
}

func (r *stubProductionRepo) FindByMois(_ context.Context, annee int, mois time.Month) ([]model.Production, error) {
	return r.filter(func(p *model.Production) bool {
		return p.DateProduction.Year() == annee && p.DateProduction.Month() == mois
	}), nil
}

func (r *stubProductionRepo) FindByArticleRefAndMois(_ context.Context, articleRef string, annee int, mois time.Month) ([]model.Production, error) {
	return r.filter(func(p *model.Production) bool {
		return p.ArticleRef == articleRef && p.DateProduction.Year() == annee && p.DateProduction.Month() == mois
	}), nil
}

func (r *stubProductionRepo) ExistsActiveForArticleDate(_ context.Context, articleRef string, date time.Time, excludeID *uuid.UUID) (bool, error) {
	for _, p := range r.productions {
		if !p.IsActive || p.ArticleRef != articleRef || !p.DateProduction.Equal(date) {
			continue
		}
		if excludeID != nil && p.ID == *excludeID {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *stubProductionRepo) UpdateTx(_ *gorm.DB, p *model.Production) error {
	r.productions[p.ID] = p
	return nil
}

func (r *stubProductionRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.productions, id)
	return nil
}

func (r *stubProductionRepo) CountActiveByArticleID(_ context.Context, articleID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range r.productions {
		if p.IsActive && p.ArticleID == articleID {
			n++
		}
	}
	return n, nil
}

func (r *stubProductionRepo) DB() *gorm.DB { return nil }

func (r *stubProductionRepo) filter(keep func(*model.Production) bool) []model.Production {
	var out []model.Production
	for _, p := range r.productions {
		if p.IsActive && keep(p) {
			out = append(out, *p)
		}
	}
	return out
}

var _ repository.ProductionRepository = (*stubProductionRepo)(nil)

// ── stubUserRepo ──────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)
