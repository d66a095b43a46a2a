package infra

// pdf.go — bon de livraison rendering using go-pdf/fpdf. A4 portrait with the
// delivery-note number, dates, client block, the delivered line and signature
// boxes. Streamed straight to the response writer, nothing touches disk.

import (
	"fmt"
	"io"

	"eleostock/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateBonLivraisonPDF renders the delivery note for a livraison into w.
func GenerateBonLivraisonPDF(l *model.Livraison, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 10, "BON DE LIVRAISON", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 8, fmt.Sprintf("N° %s", l.NumeroBL), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Meta block ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("Date de livraison : %s", l.DateLivraison.Format("02/01/2006")), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, fmt.Sprintf("Émis le : %s", l.CreatedAt.Format("02/01/2006")), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, "Client", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, l.ClientNom, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Commande client : %s", l.NumeroCommandeClient), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// ── Line table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.25 // reference
	col2 := contentW * 0.55 // designation
	col3 := contentW * 0.20 // quantity

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 8, "Référence", "1", 0, "C", false, 0, "")
	pdf.CellFormat(col2, 8, "Désignation", "1", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 8, "Quantité", "1", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(col1, 8, l.ArticleRef, "1", 0, "C", false, 0, "")
	pdf.CellFormat(col2, 8, l.ArticleNom, "1", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 8, fmt.Sprintf("%d", l.QuantiteLivree), "1", 1, "C", false, 0, "")
	pdf.Ln(16)

	// ── Signatures ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW/2, 6, "Signature expéditeur", "", 0, "C", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Signature destinataire", "", 1, "C", false, 0, "")
	y := pdf.GetY() + 20
	pdf.Line(25, y, 25+contentW/2-20, y)
	pdf.Line(15+contentW/2+10, y, pageW-25, y)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: render bon de livraison: %w", err)
	}
	return nil
}
