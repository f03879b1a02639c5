package quoting

import (
	"context"
	"fmt"

	"github.com/jhoicas/projecost-api/internal/domain"
	"github.com/jhoicas/projecost-api/internal/domain/policy"
	"github.com/jhoicas/projecost-api/internal/domain/repository"
)

// PDFUseCase genera el PDF de una cotización para descarga.
type PDFUseCase struct {
	quoteRepo repository.QuoteRepository
	generator QuotePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(quoteRepo repository.QuoteRepository, generator QuotePDFGenerator) *PDFUseCase {
	return &PDFUseCase{quoteRepo: quoteRepo, generator: generator}
}

// DownloadQuotePDF recupera la cotización, aplica la misma regla de
// visibilidad que la vista individual y genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la cotización no existe.
//   - domain.ErrForbidden        si el caller no puede verla.
func (uc *PDFUseCase) DownloadQuotePDF(ctx context.Context, caller *policy.Caller, quoteID string) (pdfBytes []byte, filename string, err error) {
	quote, err := uc.quoteRepo.GetByID(quoteID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cotización: %w", err)
	}
	if quote == nil {
		return nil, "", domain.ErrNotFound
	}
	if !policy.CanViewQuote(caller, quote) {
		return nil, "", domain.ErrForbidden
	}

	pdfBytes, err = uc.generator.GenerateQuotePDF(ctx, quote)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("cotizacion_%s.pdf", quote.ID)
	return pdfBytes, filename, nil
}
