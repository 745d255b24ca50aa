package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/application/usecase"
)

// CustomerHandler listado, detalle y modales de clientes.
type CustomerHandler struct {
	base
	uc            *usecase.CustomerUseCase
	expenses      *usecase.ExpenseUseCase
	organizations *usecase.OrganizationUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, expenses *usecase.ExpenseUseCase, organizations *usecase.OrganizationUseCase, b base) *CustomerHandler {
	return &CustomerHandler{base: b, uc: uc, expenses: expenses, organizations: organizations}
}

// Page GET /customers.
func (h *CustomerHandler) Page(c *fiber.Ctx) error {
	filter := nameFilter(c)
	res, err := h.uc.List(c.UserContext(), filter, pageParam(c))
	data := h.page(c, "Clientes", "customers")
	data["Filter"] = filter
	data["Query"] = filter.Query()
	data["Result"] = res
	return h.renderPage(c, "customers", data, err, "No se pudieron cargar los clientes")
}

// Table GET /customers/table.
func (h *CustomerHandler) Table(c *fiber.Ctx) error {
	filter := nameFilter(c)
	res, err := h.uc.List(c.UserContext(), filter, pageParam(c))
	data := fiber.Map{"Query": filter.Query(), "Result": res, "URL": "/customers/table"}
	return h.renderPartial(c, "customers_table", data, err, "No se pudieron cargar los clientes")
}

// Detail GET /customers/:id: cabecera, gastos del cliente y total.
func (h *CustomerHandler) Detail(c *fiber.Ctx) error {
	id := c.Params("id")
	data := h.page(c, "Cliente", "customers")
	customer, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		data["Customer"] = dto.CustomerDetail{ID: id}
		data["Result"] = dto.EmptyPage[dto.ExpenseRow](h.expenses.PageSize())
		return h.renderPage(c, "customer_detail", data, err, "No se pudo cargar el cliente")
	}
	data["Title"] = customer.Name
	data["Customer"] = customer
	res, err := h.expenses.ListByCustomer(c.UserContext(), id, pageParam(c))
	data["Result"] = res
	return h.renderPage(c, "customer_detail", data, err, "No se pudieron cargar los gastos del cliente")
}

// Expenses GET /customers/:id/expenses: recarga parcial de los gastos del cliente.
func (h *CustomerHandler) Expenses(c *fiber.Ctx) error {
	id := c.Params("id")
	res, err := h.expenses.ListByCustomer(c.UserContext(), id, pageParam(c))
	data := fiber.Map{"CustomerID": id, "Result": res}
	return h.renderPartial(c, "customer_expenses_table", data, err, "No se pudieron cargar los gastos del cliente")
}

// New GET /customers/new.
func (h *CustomerHandler) New(c *fiber.Ctx) error {
	return h.views.Render(c, "customer_modal", h.modal(c, "Agregar cliente", "/customers", dto.CustomerForm{}, false))
}

// Create POST /customers.
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var form dto.CustomerForm
	if err := c.BodyParser(&form); err != nil {
		return h.badForm(c, "customer_modal", h.modal(c, "Agregar cliente", "/customers", form, false), err)
	}
	if err := h.uc.Create(c.UserContext(), form); err != nil {
		return h.modalFailed(c, "customer_modal", h.modal(c, "Agregar cliente", "/customers", form, false), err, "No se pudo guardar el cliente")
	}
	return NewHTMXResponse().CloseModal().RefreshList().Success("Cliente agregado").Send(c)
}

// NewForOrganization GET /organizations/:id/customers/new: la organización queda fija.
func (h *CustomerHandler) NewForOrganization(c *fiber.Ctx) error {
	id := c.Params("id")
	form := dto.CustomerForm{OrganizationID: id}
	return h.views.Render(c, "customer_modal", h.modal(c, "Agregar cliente", "/organizations/"+id+"/customers", form, true))
}

// CreateForOrganization POST /organizations/:id/customers. La vista de organización
// muestra el total agregado, así que también se pide su recarga.
func (h *CustomerHandler) CreateForOrganization(c *fiber.Ctx) error {
	id := c.Params("id")
	var form dto.CustomerForm
	if err := c.BodyParser(&form); err != nil {
		form.OrganizationID = id
		return h.badForm(c, "customer_modal", h.modal(c, "Agregar cliente", "/organizations/"+id+"/customers", form, true), err)
	}
	form.OrganizationID = id
	if err := h.uc.Create(c.UserContext(), form); err != nil {
		return h.modalFailed(c, "customer_modal", h.modal(c, "Agregar cliente", "/organizations/"+id+"/customers", form, true), err, "No se pudo guardar el cliente")
	}
	return NewHTMXResponse().CloseModal().RefreshList().RefreshTotal().Success("Cliente agregado").Send(c)
}

// Edit GET /customers/:id/edit.
func (h *CustomerHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	customer, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		resp, expired := h.failed(c, err, "No se pudo cargar el cliente")
		if expired {
			return redirectToLogin(c)
		}
		return resp.Send(c)
	}
	form := dto.CustomerForm{Name: customer.Name, OrganizationID: customer.OrganizationID}
	return h.views.Render(c, "customer_modal", h.modal(c, "Editar cliente", "/customers/"+id, form, false))
}

// Update PUT|POST /customers/:id.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var form dto.CustomerForm
	if err := c.BodyParser(&form); err != nil {
		return h.badForm(c, "customer_modal", h.modal(c, "Editar cliente", "/customers/"+id, form, false), err)
	}
	if err := h.uc.Update(c.UserContext(), id, form); err != nil {
		return h.modalFailed(c, "customer_modal", h.modal(c, "Editar cliente", "/customers/"+id, form, false), err, "No se pudo actualizar el cliente")
	}
	return NewHTMXResponse().CloseModal().RefreshList().RefreshTotal().Success("Cliente actualizado").Send(c)
}

// ConfirmDelete GET /customers/:id/delete.
func (h *CustomerHandler) ConfirmDelete(c *fiber.Ctx) error {
	return h.views.Render(c, "confirm_modal", fiber.Map{
		"Title":   "Eliminar cliente",
		"Message": "¿Seguro que desea eliminar este cliente?",
		"Action":  "/customers/" + c.Params("id") + "/delete",
	})
}

// Delete DELETE|POST /customers/:id/delete.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if !confirmed(c) {
		return NewHTMXResponse().CloseModal().Send(c)
	}
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		resp, expired := h.failed(c, err, "No se pudo eliminar el cliente")
		if expired {
			return redirectToLogin(c)
		}
		return resp.CloseModal().Send(c)
	}
	return NewHTMXResponse().CloseModal().RefreshList().RefreshTotal().Success("Cliente eliminado").Send(c)
}

// modal datos del modal de cliente. Con fixedOrganization no se muestra el selector.
func (h *CustomerHandler) modal(c *fiber.Ctx, title, action string, form dto.CustomerForm, fixedOrganization bool) fiber.Map {
	data := fiber.Map{
		"Title":             title,
		"Action":            action,
		"Form":              form,
		"FixedOrganization": fixedOrganization,
	}
	if fixedOrganization {
		return data
	}
	options, err := h.organizations.Options(c.UserContext())
	if err != nil {
		h.log.Warn().Err(err).Msg("no se pudo cargar el selector de organizaciones")
		data["Error"] = usecase.UserMessage(err, "No se pudo cargar la lista de organizaciones")
	}
	data["Organizations"] = options
	return data
}

func nameFilter(c *fiber.Ctx) dto.NameFilter {
	var f dto.NameFilter
	if err := c.QueryParser(&f); err != nil {
		return dto.NameFilter{}
	}
	return f
}
