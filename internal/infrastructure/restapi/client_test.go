package restapi_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jhoicas/gastos-admin/internal/application/usecase"
	"github.com/jhoicas/gastos-admin/internal/domain"
	"github.com/jhoicas/gastos-admin/internal/domain/entity"
	"github.com/jhoicas/gastos-admin/internal/domain/repository"
	"github.com/jhoicas/gastos-admin/internal/infrastructure/restapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	query  map[string]string
	auth   string
	body   map[string]any
}

func newBackend(t *testing.T, status int, response string) (*restapi.Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path, query: map[string]string{}, auth: r.Header.Get("Authorization")}
		for k := range r.URL.Query() {
			rec.query[k] = r.URL.Query().Get(k)
		}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		calls = append(calls, rec)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return restapi.NewClient(srv.URL+"/api/", 2*time.Second, nil), &calls
}

func TestExpenseList_ConstruyeQueryYToken(t *testing.T) {
	c, calls := newBackend(t, 200, `{"data":[
		{"_id":"e1","item":"Taxi","amount":"12.5","date":"2024-03-01T10:00:00Z","customer":{"_id":"c1","name":"Ravi"},"createdAt":"2024-03-01T10:00:00.000Z"},
		{"_id":"e2","item":"Café","amount":null,"customer":"c2","createdAt":"basura"}
	],"total":23,"totalAmount":"99.90"}`)
	repo := restapi.NewExpenseRepository(c)
	ctx := repository.WithAccessToken(context.Background(), "tok")

	page, err := repo.List(ctx, repository.ListQuery{Page: 2, Limit: 10, Filters: map[string]string{"item": "taxi", "customer": ""}})
	require.NoError(t, err)

	require.Len(t, *calls, 1)
	call := (*calls)[0]
	assert.Equal(t, http.MethodGet, call.method)
	assert.Equal(t, "/api/expenses", call.path)
	assert.Equal(t, map[string]string{"page": "2", "limit": "10", "item": "taxi"}, call.query)
	assert.Equal(t, "Bearer tok", call.auth)

	assert.Equal(t, 23, page.Total)
	assert.Equal(t, "99.9", page.TotalAmount.String())
	require.Len(t, page.Items, 2)
	assert.Equal(t, "12.5", page.Items[0].Amount.String())
	assert.Equal(t, entity.Ref{ID: "c1", Name: "Ravi"}, page.Items[0].Customer)
	assert.False(t, page.Items[1].Amount.Valid)
	assert.Equal(t, "c2", page.Items[1].Customer.ID)
	assert.True(t, page.Items[1].CreatedAt.IsZero())
}

func TestExpenseList_SinTotalUsaLongitud(t *testing.T) {
	c, _ := newBackend(t, 200, `{"data":[{"_id":"e1"},{"_id":"e2"}]}`)
	page, err := restapi.NewExpenseRepository(c).ListByCustomer(context.Background(), "c1", repository.ListQuery{Page: 1, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestExpenseCreate_Payload(t *testing.T) {
	c, calls := newBackend(t, 201, `{"data":{"_id":"e9"}}`)
	e := &entity.Expense{Item: "Taxi", Amount: entity.ParseAmount("12.50"), Date: "2024-03-01T18:45:10Z", Customer: entity.Ref{ID: "c1"}}

	require.NoError(t, restapi.NewExpenseRepository(c).Create(context.Background(), e))

	call := (*calls)[0]
	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "Taxi", call.body["item"])
	assert.Equal(t, 12.5, call.body["amount"])
	assert.Equal(t, "c1", call.body["customer"])
	assert.Empty(t, call.auth, "sin sesión no se envía Authorization")
}

func TestExpenseDelete_Ruta(t *testing.T) {
	c, calls := newBackend(t, 200, ``)
	require.NoError(t, restapi.NewExpenseRepository(c).Delete(context.Background(), "e/1"))
	assert.Equal(t, http.MethodDelete, (*calls)[0].method)
	assert.Equal(t, "/api/expenses/e/1", (*calls)[0].path)
}

func TestExpenseTotal_PorOrganizacion(t *testing.T) {
	c, calls := newBackend(t, 200, `{"data":{"total":1530.25,"count":7}}`)
	tot, err := restapi.NewExpenseRepository(c).Total(context.Background(), "o1")
	require.NoError(t, err)

	assert.Equal(t, "o1", (*calls)[0].query["organizationId"])
	assert.Equal(t, "1530.25", tot.Total.String())
	assert.Equal(t, 7, tot.Count)
}

func TestAPIError_MensajeDelServidor(t *testing.T) {
	c, _ := newBackend(t, 400, `{"message":"El cliente no existe"}`)
	err := restapi.NewCustomerRepository(c).Create(context.Background(), &entity.Customer{Name: "X"})
	require.Error(t, err)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	var apiErr *restapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "El cliente no existe", usecase.UserMessage(err, "fallback"))
}

func TestAPIError_Status(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{401, domain.ErrUnauthorized},
		{404, domain.ErrNotFound},
		{409, domain.ErrConflict},
		{500, domain.ErrUpstream},
	}
	for _, tt := range tests {
		c, _ := newBackend(t, tt.status, `no es json`)
		_, err := restapi.NewOrganizationRepository(c).GetByID(context.Background(), "o1")
		assert.ErrorIs(t, err, tt.want, "status %d", tt.status)
		var apiErr *restapi.APIError
		if assert.ErrorAs(t, err, &apiErr) {
			assert.Equal(t, tt.status, apiErr.Status)
		}
	}
}

func TestClient_BackendCaido(t *testing.T) {
	c := restapi.NewClient("http://127.0.0.1:1", time.Second, nil)
	_, err := restapi.NewOrganizationRepository(c).List(context.Background(), repository.ListQuery{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestCustomerListByOrganization(t *testing.T) {
	c, calls := newBackend(t, 200, `{"data":[{"_id":"c1","name":"Ravi","organization":"o1"}],"total":1,"organization":"Acme"}`)
	page, err := restapi.NewCustomerRepository(c).ListByOrganization(context.Background(), "o1", repository.ListQuery{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "/api/customers/organization/o1", (*calls)[0].path)
	assert.Equal(t, "o1", page.Items[0].Organization.ID)
}

func TestAuthGateway_Login(t *testing.T) {
	c, calls := newBackend(t, 200, `{"token":"abc","user":{"_id":"u1","name":"Asha","email":"asha@example.com"}}`)
	token, user, err := restapi.NewAuthGateway(c).Login(context.Background(), "asha@example.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, "abc", token)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, "/api/auth/login", (*calls)[0].path)
	assert.Equal(t, "pw", (*calls)[0].body["password"])
}

func TestAuthGateway_LoginSinToken(t *testing.T) {
	c, _ := newBackend(t, 200, `{"user":{}}`)
	_, _, err := restapi.NewAuthGateway(c).Login(context.Background(), "a", "b")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestGetByID_DataVacioEsNoEncontrado(t *testing.T) {
	get := map[string]func(*restapi.Client) error{
		"gasto": func(c *restapi.Client) error {
			_, err := restapi.NewExpenseRepository(c).GetByID(context.Background(), "e1")
			return err
		},
		"cliente": func(c *restapi.Client) error {
			_, err := restapi.NewCustomerRepository(c).GetByID(context.Background(), "c1")
			return err
		},
		"organización": func(c *restapi.Client) error {
			_, err := restapi.NewOrganizationRepository(c).GetByID(context.Background(), "o1")
			return err
		},
	}
	for name, fn := range get {
		for _, response := range []string{`{"data":null}`, `{"data":{}}`, `{}`} {
			t.Run(name+" "+response, func(t *testing.T) {
				c, _ := newBackend(t, 200, response)
				assert.ErrorIs(t, fn(c), domain.ErrNotFound)
			})
		}
	}
}

func TestGetByID_Encontrado(t *testing.T) {
	c, calls := newBackend(t, 200, `{"data":{"_id":"o1","name":"Acme"}}`)
	o, err := restapi.NewOrganizationRepository(c).GetByID(context.Background(), "o1")
	require.NoError(t, err)

	assert.Equal(t, "/api/organizations/o1", (*calls)[0].path)
	assert.Equal(t, "Acme", o.Name)
}
