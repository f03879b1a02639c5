package quoting

import (
	"context"

	"github.com/jhoicas/projecost-api/internal/domain/entity"
)

// QuotePDFGenerator genera la representación imprimible de una cotización.
// Lo implementa infrastructure/pdf; la interfaz vive aquí para invertir la
// dependencia.
type QuotePDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, quote *entity.Quote) ([]byte, error)
}
