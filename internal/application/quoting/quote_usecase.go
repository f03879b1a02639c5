package quoting

import (
	"time"

	"github.com/jhoicas/projecost-api/internal/application/dto"
	"github.com/jhoicas/projecost-api/internal/domain"
	"github.com/jhoicas/projecost-api/internal/domain/entity"
	"github.com/jhoicas/projecost-api/internal/domain/policy"
	domquote "github.com/jhoicas/projecost-api/internal/domain/quote"
	"github.com/jhoicas/projecost-api/internal/domain/repository"
)

// QuoteUseCase consultas y ciclo de vida de cotizaciones ya creadas.
type QuoteUseCase struct {
	repo repository.QuoteRepository
	now  func() time.Time
}

// NewQuoteUseCase construye el caso de uso. now permite fijar el reloj en tests.
func NewQuoteUseCase(repo repository.QuoteRepository, now func() time.Time) *QuoteUseCase {
	if now == nil {
		now = time.Now
	}
	return &QuoteUseCase{repo: repo, now: now}
}

// List lista cotizaciones según el alcance del caller: admin todas,
// proveedor las que provee, resto las propias. Anónimo no lista.
func (uc *QuoteUseCase) List(caller *policy.Caller) (*dto.QuoteListResponse, error) {
	scope, ok := policy.ListQuotesScope(caller)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	var (
		list []*entity.Quote
		err  error
	)
	switch {
	case scope.All:
		list, err = uc.repo.List()
	case scope.ProviderID != "":
		list, err = uc.repo.ListByProvider(scope.ProviderID)
	default:
		list, err = uc.repo.ListByClient(scope.ClientID)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuoteResponse(q))
	}
	return &dto.QuoteListResponse{Quotes: items, Count: len(items)}, nil
}

// GetByID obtiene una cotización si la política lo permite.
func (uc *QuoteUseCase) GetByID(caller *policy.Caller, id string) (*dto.QuoteResponse, error) {
	quote, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanViewQuote(caller, quote) {
		return nil, domain.ErrForbidden
	}
	return toQuoteResponse(quote), nil
}

// UpdateStatus aplica una transición de estado. Solo admin o el proveedor;
// el grafo de transiciones se valida antes de persistir, así una transición
// inválida no toca el registro.
func (uc *QuoteUseCase) UpdateStatus(caller *policy.Caller, id, status string) (*dto.QuoteResponse, error) {
	quote, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrNotFound
	}
	if !policy.CanManageQuote(caller, quote) {
		return nil, domain.ErrForbidden
	}
	if err := domquote.Transition(quote.Status, status); err != nil {
		return nil, err
	}
	now := uc.now()
	if err := uc.repo.UpdateStatus(id, status, now); err != nil {
		return nil, err
	}
	quote.Status = status
	quote.UpdatedAt = now
	return toQuoteResponse(quote), nil
}

// Delete elimina una cotización. Misma regla que cambio de estado.
func (uc *QuoteUseCase) Delete(caller *policy.Caller, id string) error {
	quote, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if quote == nil {
		return domain.ErrNotFound
	}
	if !policy.CanManageQuote(caller, quote) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

func toQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	return &dto.QuoteResponse{
		ID:                q.ID,
		ClientID:          q.ClientID,
		ProviderID:        q.ProviderID,
		ServiceID:         q.ServiceID,
		ClientName:        q.ClientName,
		ClientEmail:       q.ClientEmail,
		ClientCountry:     q.ClientCountry,
		ServiceName:       q.ServiceName,
		ServiceCategory:   q.ServiceCategory,
		SelectedTier:      q.SelectedTier,
		Complexity:        q.Complexity,
		BasePrice:         q.BasePrice,
		AdjustedPrice:     q.AdjustedPrice,
		CountryMultiplier: q.CountryMultiplier,
		DeliveryTimeDays:  q.DeliveryTimeDays,
		Description:       q.Description,
		Status:            q.Status,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
		ExpiresAt:         q.ExpiresAt,
	}
}
