package restapi

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
	"github.com/jhoicas/gastos-admin/pkg/datefmt"
)

// ── Sobres de respuesta del backend ───────────────────────────────────────────

// listEnvelope { data: [...], total: N, totalAmount?: N }. Algunos listados usan results.
type listEnvelope[T any] struct {
	Data        []T           `json:"data"`
	Total       *int          `json:"total"`
	Results     *int          `json:"results"`
	TotalAmount entity.Amount `json:"totalAmount"`
}

func (e listEnvelope[T]) total() int {
	switch {
	case e.Total != nil:
		return *e.Total
	case e.Results != nil:
		return *e.Results
	default:
		return len(e.Data)
	}
}

type itemEnvelope[T any] struct {
	Data T `json:"data"`
}

// notFound para respuestas 200 con data nulo o sin _id.
func notFound(resource, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, resource, id)
}

func toPage[W, E any](env listEnvelope[W], conv func(W) E) *repository.Page[E] {
	items := make([]E, 0, len(env.Data))
	for _, w := range env.Data {
		items = append(items, conv(w))
	}
	return &repository.Page[E]{Items: items, Total: env.total(), TotalAmount: env.TotalAmount.Decimal()}
}

// timestamp fecha ISO tolerante; un valor que no se puede leer queda en cero.
type timestamp struct{ time.Time }

func (t *timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		t.Time = time.Time{}
		return nil
	}
	parsed, ok := datefmt.Parse(s)
	if !ok {
		t.Time = time.Time{}
		return nil
	}
	t.Time = parsed
	return nil
}

// ── Entidades ────────────────────────────────────────────────────────────────

type expenseWire struct {
	ID          string        `json:"_id"`
	Item        string        `json:"item"`
	Amount      entity.Amount `json:"amount"`
	Description string        `json:"description"`
	Date        string        `json:"date"`
	Customer    entity.Ref    `json:"customer"`
	CreatedAt   timestamp     `json:"createdAt"`
	UpdatedAt   timestamp     `json:"updatedAt"`
}

func (w expenseWire) toEntity() entity.Expense {
	return entity.Expense{
		ID:          w.ID,
		Item:        w.Item,
		Amount:      w.Amount,
		Description: w.Description,
		Date:        w.Date,
		Customer:    w.Customer,
		CreatedAt:   w.CreatedAt.Time,
		UpdatedAt:   w.UpdatedAt.Time,
	}
}

type expensePayload struct {
	Item        string        `json:"item"`
	Amount      entity.Amount `json:"amount"`
	Description string        `json:"description"`
	Date        string        `json:"date,omitempty"`
	Customer    string        `json:"customer"`
}

func newExpensePayload(e *entity.Expense) expensePayload {
	return expensePayload{
		Item:        e.Item,
		Amount:      e.Amount,
		Description: e.Description,
		Date:        e.Date,
		Customer:    e.Customer.ID,
	}
}

type totalWire struct {
	Total entity.Amount `json:"total"`
	Count int           `json:"count"`
}

type customerWire struct {
	ID           string     `json:"_id"`
	Name         string     `json:"name"`
	Organization entity.Ref `json:"organization"`
	CreatedAt    timestamp  `json:"createdAt"`
	UpdatedAt    timestamp  `json:"updatedAt"`
}

func (w customerWire) toEntity() entity.Customer {
	return entity.Customer{
		ID:           w.ID,
		Name:         w.Name,
		Organization: w.Organization,
		CreatedAt:    w.CreatedAt.Time,
		UpdatedAt:    w.UpdatedAt.Time,
	}
}

type customerPayload struct {
	Name         string `json:"name"`
	Organization string `json:"organization,omitempty"`
}

type organizationWire struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	CreatedAt timestamp `json:"createdAt"`
	UpdatedAt timestamp `json:"updatedAt"`
}

func (w organizationWire) toEntity() entity.Organization {
	return entity.Organization{ID: w.ID, Name: w.Name, CreatedAt: w.CreatedAt.Time, UpdatedAt: w.UpdatedAt.Time}
}

type organizationPayload struct {
	Name string `json:"name"`
}

type userWire struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userWire `json:"user"`
}
