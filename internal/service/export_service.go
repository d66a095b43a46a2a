package service

import (
	"context"

	"eleostock/internal/dto"
	"eleostock/internal/repository"

	"github.com/xuri/excelize/v2"
)

// ExportService renders entity lists as Excel workbooks, one sheet per
// export, mirroring what the search endpoints return.
type ExportService interface {
	ExporterArticles(ctx context.Context) (*excelize.File, error)
	ExporterClients(ctx context.Context) (*excelize.File, error)
	ExporterProcess(ctx context.Context) (*excelize.File, error)
	ExporterCommandes(ctx context.Context, q dto.RechercheCommandeQuery) (*excelize.File, error)
	ExporterLivraisons(ctx context.Context) (*excelize.File, error)
	ExporterProductions(ctx context.Context) (*excelize.File, error)
}

type exportService struct {
	articleRepo    repository.ArticleRepository
	clientRepo     repository.ClientRepository
	processRepo    repository.ProcessRepository
	commandes      CommandeService
	commandeRepo   repository.CommandeRepository
	livraisonRepo  repository.LivraisonRepository
	productionRepo repository.ProductionRepository
}

func NewExportService(
	articleRepo repository.ArticleRepository,
	clientRepo repository.ClientRepository,
	processRepo repository.ProcessRepository,
	commandes CommandeService,
	commandeRepo repository.CommandeRepository,
	livraisonRepo repository.LivraisonRepository,
	productionRepo repository.ProductionRepository,
) ExportService {
	return &exportService{
		articleRepo:    articleRepo,
		clientRepo:     clientRepo,
		processRepo:    processRepo,
		commandes:      commandes,
		commandeRepo:   commandeRepo,
		livraisonRepo:  livraisonRepo,
		productionRepo: productionRepo,
	}
}

// newSheet opens a workbook with a single named sheet and writes the header
// row. Returns the file and a row writer.
func newSheet(name string, header []string) (*excelize.File, func(values []interface{}) error, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, nil, err
	}
	cell, _ := excelize.CoordinatesToCellName(1, 1)
	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := f.SetSheetRow(name, cell, &row); err != nil {
		return nil, nil, err
	}
	next := 2
	write := func(values []interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, next)
		if err != nil {
			return err
		}
		next++
		return f.SetSheetRow(name, cell, &values)
	}
	return f, write, nil
}

func (s *exportService) ExporterArticles(ctx context.Context) (*excelize.File, error) {
	articles, err := s.articleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	f, write, err := newSheet("Articles", []string{
		"Référence", "Article", "Famille", "Sous-famille", "Type process",
		"Type produit", "Prix unitaire", "MPQ", "Stock",
	})
	if err != nil {
		return nil, err
	}
	for _, a := range articles {
		prix, _ := a.PrixUnitaire.Float64()
		if err := write([]interface{}{
			a.Ref, a.Article, a.Famille, a.SousFamille, a.TypeProcess,
			a.TypeProduit, prix, a.MPQ, a.Stock,
		}); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (s *exportService) ExporterClients(ctx context.Context) (*excelize.File, error) {
	clients, err := s.clientRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	f, write, err := newSheet("Clients", []string{
		"Référence", "Nom complet", "Adresse livraison", "Adresse facturation",
		"Devise", "Mode transport", "Incoterme",
	})
	if err != nil {
		return nil, err
	}
	for _, c := range clients {
		ref := ""
		if c.Ref != nil {
			ref = *c.Ref
		}
		if err := write([]interface{}{
			ref, c.NomComplet, c.AdresseLivraison, c.AdresseFacturation,
			c.Devise, c.ModeTransport, c.IncoTerme,
		}); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (s *exportService) ExporterProcess(ctx context.Context) (*excelize.File, error) {
	processes, err := s.processRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	f, write, err := newSheet("Process", []string{"Référence", "Nom"})
	if err != nil {
		return nil, err
	}
	for _, p := range processes {
		ref := ""
		if p.Ref != nil {
			ref = *p.Ref
		}
		if err := write([]interface{}{ref, p.Nom}); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ExporterCommandes exports the same selection the search endpoint returns,
// including the derived delivered quantities.
func (s *exportService) ExporterCommandes(ctx context.Context, q dto.RechercheCommandeQuery) (*excelize.File, error) {
	commandes, err := s.commandes.Rechercher(ctx, q)
	if err != nil {
		return nil, err
	}
	f, write, err := newSheet("Commandes", []string{
		"Référence article", "Article", "Client", "N° commande client", "Type",
		"Quantité", "Quantité livrée", "Quantité non livrée", "Date souhaitée", "Date d'ajout",
	})
	if err != nil {
		return nil, err
	}
	for _, c := range commandes {
		if err := write([]interface{}{
			c.ArticleRef, c.ArticleNom, c.ClientNom, c.NumeroCommandeClient, c.TypeCommande,
			c.Quantite, c.QuantiteLivree, c.QuantiteNonLivree, c.DateSouhaitee, c.DateAjout,
		}); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (s *exportService) ExporterLivraisons(ctx context.Context) (*excelize.File, error) {
	livraisons, err := s.livraisonRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	f, write, err := newSheet("Livraisons", []string{
		"N° BL", "Référence article", "Article", "Client", "N° commande client",
		"Quantité livrée", "Date livraison",
	})
	if err != nil {
		return nil, err
	}
	for _, l := range livraisons {
		if err := write([]interface{}{
			l.NumeroBL, l.ArticleRef, l.ArticleNom, l.ClientNom, l.NumeroCommandeClient,
			l.QuantiteLivree, l.DateLivraison.Format(dateFormat),
		}); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (s *exportService) ExporterProductions(ctx context.Context) (*excelize.File, error) {
	productions, err := s.productionRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	f, write, err := newSheet("Productions", []string{
		"Référence article", "Quantité", "Date production",
	})
	if err != nil {
		return nil, err
	}
	for _, p := range productions {
		if err := write([]interface{}{
			p.ArticleRef, p.Quantite, p.DateProduction.Format(dateFormat),
		}); err != nil {
			return nil, err
		}
	}
	return f, nil
}
