package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/jhoicas/gastos-admin/internal/application/export"
	"github.com/jhoicas/gastos-admin/internal/application/usecase"
	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
	"github.com/jhoicas/gastos-admin/internal/infrastructure/blobstore"
	apphttp "github.com/jhoicas/gastos-admin/internal/interfaces/http"
	"github.com/jhoicas/gastos-admin/pkg/datefmt"
	"github.com/jhoicas/gastos-admin/pkg/jwt"
	"github.com/jhoicas/gastos-admin/pkg/money"
	"github.com/jhoicas/gastos-admin/web"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend en memoria
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "gastos-admin-test"
	testAPIToken = "api-token"
	testPageSize = 10
)

// serverError error con mensaje para el usuario, como los que devuelve el backend.
type serverError struct {
	msg  string
	kind error
}

func (e serverError) Error() string       { return "api: " + e.msg }
func (e serverError) UserMessage() string { return e.msg }
func (e serverError) Unwrap() error       { return e.kind }

type memExpenses struct {
	mu        sync.Mutex
	items     []entity.Expense
	queries   []repository.ListQuery
	created   []*entity.Expense
	deleted   []string
	tokens    []string
	createErr error
	total     entity.ExpenseTotal
}

func (m *memExpenses) page(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.Expense], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, q)
	m.tokens = append(m.tokens, repository.AccessToken(ctx))
	from := (q.Page - 1) * q.Limit
	to := from + q.Limit
	if from > len(m.items) {
		from = len(m.items)
	}
	if to > len(m.items) {
		to = len(m.items)
	}
	sum := decimal.Zero
	for _, e := range m.items {
		sum = sum.Add(e.Amount.Decimal())
	}
	return &repository.Page[entity.Expense]{
		Items:       append([]entity.Expense(nil), m.items[from:to]...),
		Total:       len(m.items),
		TotalAmount: sum,
	}, nil
}

func (m *memExpenses) List(ctx context.Context, q repository.ListQuery) (*repository.Page[entity.Expense], error) {
	return m.page(ctx, q)
}

func (m *memExpenses) ListByCustomer(ctx context.Context, _ string, q repository.ListQuery) (*repository.Page[entity.Expense], error) {
	return m.page(ctx, q)
}

func (m *memExpenses) GetByID(_ context.Context, id string) (*entity.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.items {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memExpenses) Create(_ context.Context, e *entity.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, e)
	return nil
}

func (m *memExpenses) Update(context.Context, *entity.Expense) error { return nil }

func (m *memExpenses) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, id)
	kept := m.items[:0]
	for _, e := range m.items {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	m.items = kept
	return nil
}

func (m *memExpenses) Total(context.Context, string) (*entity.ExpenseTotal, error) {
	t := m.total
	return &t, nil
}

func (m *memExpenses) listCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queries)
}

type memCustomers struct {
	mu      sync.Mutex
	items   []entity.Customer
	gets    int
	created []*entity.Customer
	deleted []string
}

func (m *memCustomers) List(_ context.Context, q repository.ListQuery) (*repository.Page[entity.Customer], error) {
	return &repository.Page[entity.Customer]{Items: m.items, Total: len(m.items)}, nil
}

func (m *memCustomers) ListByOrganization(ctx context.Context, _ string, q repository.ListQuery) (*repository.Page[entity.Customer], error) {
	return m.List(ctx, q)
}

func (m *memCustomers) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	for _, c := range m.items {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, c)
	return nil
}

func (m *memCustomers) Update(context.Context, *entity.Customer) error { return nil }

func (m *memCustomers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, id)
	return nil
}

type memOrganizations struct {
	items   []entity.Organization
	deleted []string
}

func (m *memOrganizations) List(context.Context, repository.ListQuery) (*repository.Page[entity.Organization], error) {
	return &repository.Page[entity.Organization]{Items: m.items, Total: len(m.items)}, nil
}

func (m *memOrganizations) GetByID(_ context.Context, id string) (*entity.Organization, error) {
	for _, o := range m.items {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memOrganizations) Create(context.Context, *entity.Organization) error { return nil }
func (m *memOrganizations) Update(context.Context, *entity.Organization) error { return nil }

func (m *memOrganizations) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

type memAuth struct {
	logouts int
}

func (a *memAuth) Login(_ context.Context, email, password string) (string, *entity.User, error) {
	if password != "secreto" {
		return "", nil, serverError{msg: "Credenciales inválidas", kind: domain.ErrUnauthorized}
	}
	return testAPIToken, &entity.User{ID: "u1", Name: "Asha", Email: email}, nil
}

func (a *memAuth) Logout(context.Context) error {
	a.logouts++
	return nil
}

type stubGenerator struct{}

func (stubGenerator) GenerateExpenseReport(context.Context, *export.Report) ([]byte, error) {
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type console struct {
	app       *fiber.App
	expenses  *memExpenses
	customers *memCustomers
	orgs      *memOrganizations
	auth      *memAuth
	docs      *blobstore.Store
}

// buildTestApp arma la consola completa sobre el backend en memoria. opts ajusta las
// dependencias del router antes de registrarlo.
func buildTestApp(t *testing.T, items []entity.Expense, opts ...func(*apphttp.RouterDeps)) *console {
	t.Helper()
	c := &console{
		expenses: &memExpenses{items: items},
		customers: &memCustomers{items: []entity.Customer{
			{ID: "c1", Name: "Ravi", Organization: entity.Ref{ID: "o1", Name: "Acme"}},
		}},
		orgs: &memOrganizations{items: []entity.Organization{{ID: "o1", Name: "Acme"}}},
		auth: &memAuth{},
		docs: blobstore.New(time.Minute, time.Minute),
	}
	t.Cleanup(c.docs.Close)
	datefmt.SetLocation(time.UTC)
	t.Cleanup(func() { datefmt.SetLocation(nil) })

	m := money.NewFormatter("Rs.", language.Und)
	views, err := apphttp.NewViews(web.TemplatesFS, m)
	require.NoError(t, err, "las plantillas deben parsear")

	deps := export.Deps{
		Expenses:   c.expenses,
		Customers:  c.customers,
		Generator:  stubGenerator{},
		Money:      m,
		FetchLimit: 1000,
	}
	c.app = fiber.New(fiber.Config{
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})
	routerDeps := apphttp.RouterDeps{
		ExpenseUC:      usecase.NewExpenseUseCase(c.expenses, testPageSize),
		CustomerUC:     usecase.NewCustomerUseCase(c.customers, testPageSize),
		OrganizationUC: usecase.NewOrganizationUseCase(c.orgs, testPageSize),
		AuthUC:         usecase.NewAuthUseCase(c.auth, usecase.SessionConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer}),
		RangeExport:    export.NewRangeExportUseCase(deps),
		DateExport:     export.NewDateRangeExportUseCase(deps),
		Documents:      c.docs,
		Views:          views,
		WriteRateLimit: 1000,
	}
	for _, opt := range opts {
		opt(&routerDeps)
	}
	apphttp.Router(c.app, routerDeps)
	return c
}

// sessionCookie cookie de sesión válida para el usuario de prueba.
func sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	tok, err := jwt.Generate(testSecret, jwt.Session{UserID: "u1", Name: "Asha", APIToken: testAPIToken}, testIssuer, 60)
	require.NoError(t, err, "debe generarse la sesión")
	return &http.Cookie{Name: apphttp.SessionCookie, Value: tok}
}

// doRequest lanza la petición como htmx con sesión y devuelve la respuesta y el cuerpo.
func (c *console) doRequest(t *testing.T, method, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	if form == nil {
		return c.doBody(t, method, path, "", "")
	}
	return c.doBody(t, method, path, "application/x-www-form-urlencoded", form.Encode())
}

// doBody como doRequest pero con el cuerpo y el Content-Type tal cual.
func (c *console) doBody(t *testing.T, method, path, contentType, raw string) (*http.Response, string) {
	t.Helper()
	var body io.Reader
	if raw != "" {
		body = strings.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("HX-Request", "true")
	req.AddCookie(sessionCookie(t))
	return send(t, c.app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, string) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(b)
}

// triggers decodifica la cabecera HX-Trigger.
func triggers(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw := resp.Header.Get("HX-Trigger")
	if raw == "" {
		return map[string]any{}
	}
	out := map[string]any{}
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

// sample n gastos con items únicos ("item-1" … "item-n").
func sample(n int) []entity.Expense {
	out := make([]entity.Expense, n)
	for i := range out {
		id := "e" + strconv.Itoa(i+1)
		out[i] = entity.Expense{
			ID:       id,
			Item:     "item-" + strconv.Itoa(i+1),
			Amount:   entity.NewAmount(decimal.NewFromInt(int64(i + 1))),
			Date:     "2024-03-01T10:00:00Z",
			Customer: entity.Ref{ID: "c1", Name: "Ravi"},
		}
	}
	return out
}
