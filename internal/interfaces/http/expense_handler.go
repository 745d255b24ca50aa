package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/application/usecase"
)

// ExpenseHandler pantalla de gastos y modales de alta, edición y eliminación.
type ExpenseHandler struct {
	base
	uc        *usecase.ExpenseUseCase
	customers *usecase.CustomerUseCase
}

// NewExpenseHandler construye el handler.
func NewExpenseHandler(uc *usecase.ExpenseUseCase, customers *usecase.CustomerUseCase, b base) *ExpenseHandler {
	return &ExpenseHandler{base: b, uc: uc, customers: customers}
}

// Page GET /expenses: filtros, tabla y paginación.
func (h *ExpenseHandler) Page(c *fiber.Ctx) error {
	filter := h.filter(c)
	res, err := h.uc.List(c.UserContext(), filter, pageParam(c))
	data := h.page(c, "Gastos", "expenses")
	data["Filter"] = filter
	data["Query"] = filter.Query()
	data["Result"] = res
	return h.renderPage(c, "expenses", data, err, "No se pudieron cargar los gastos")
}

// Table GET /expenses/table: recarga parcial de la tabla.
func (h *ExpenseHandler) Table(c *fiber.Ctx) error {
	filter := h.filter(c)
	res, err := h.uc.List(c.UserContext(), filter, pageParam(c))
	data := fiber.Map{"Query": filter.Query(), "Result": res}
	return h.renderPartial(c, "expenses_table", data, err, "No se pudieron cargar los gastos")
}

// New GET /expenses/new: modal vacío con el selector de clientes.
func (h *ExpenseHandler) New(c *fiber.Ctx) error {
	form := dto.ExpenseForm{Date: today()}
	return h.views.Render(c, "expense_modal", h.modal(c, "Agregar gasto", "/expenses", form, ""))
}

// Create POST /expenses.
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var form dto.ExpenseForm
	if err := c.BodyParser(&form); err != nil {
		return h.badForm(c, "expense_modal", h.modal(c, "Agregar gasto", "/expenses", form, ""), err)
	}
	if err := h.uc.Create(c.UserContext(), form); err != nil {
		return h.modalFailed(c, "expense_modal", h.modal(c, "Agregar gasto", "/expenses", form, ""), err, "No se pudo guardar el gasto")
	}
	return NewHTMXResponse().CloseModal().RefreshList().Success("Gasto agregado").Send(c)
}

// NewForCustomer GET /customers/:id/expenses/new: el cliente queda fijo.
func (h *ExpenseHandler) NewForCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	form := dto.ExpenseForm{Date: today(), CustomerID: id}
	return h.views.Render(c, "expense_modal", h.modal(c, "Agregar gasto", "/customers/"+id+"/expenses", form, id))
}

// CreateForCustomer POST /customers/:id/expenses.
func (h *ExpenseHandler) CreateForCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	var form dto.ExpenseForm
	if err := c.BodyParser(&form); err != nil {
		form.CustomerID = id
		return h.badForm(c, "expense_modal", h.modal(c, "Agregar gasto", "/customers/"+id+"/expenses", form, id), err)
	}
	form.CustomerID = id
	if err := h.uc.Create(c.UserContext(), form); err != nil {
		return h.modalFailed(c, "expense_modal", h.modal(c, "Agregar gasto", "/customers/"+id+"/expenses", form, id), err, "No se pudo guardar el gasto")
	}
	return NewHTMXResponse().CloseModal().RefreshList().Success("Gasto agregado").Send(c)
}

// Edit GET /expenses/:id/edit: modal con los valores actuales.
func (h *ExpenseHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	row, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		resp, expired := h.failed(c, err, "No se pudo cargar el gasto")
		if expired {
			return redirectToLogin(c)
		}
		return resp.Send(c)
	}
	form := dto.ExpenseForm{
		Item:        row.Item,
		Amount:      row.Amount,
		Description: row.Description,
		Date:        row.DateInput,
		CustomerID:  row.CustomerID,
	}
	return h.views.Render(c, "expense_modal", h.modal(c, "Editar gasto", "/expenses/"+id, form, ""))
}

// Update PUT|POST /expenses/:id.
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var form dto.ExpenseForm
	if err := c.BodyParser(&form); err != nil {
		return h.badForm(c, "expense_modal", h.modal(c, "Editar gasto", "/expenses/"+id, form, ""), err)
	}
	if err := h.uc.Update(c.UserContext(), id, form); err != nil {
		return h.modalFailed(c, "expense_modal", h.modal(c, "Editar gasto", "/expenses/"+id, form, ""), err, "No se pudo actualizar el gasto")
	}
	return NewHTMXResponse().CloseModal().RefreshList().Success("Gasto actualizado").Send(c)
}

// ConfirmDelete GET /expenses/:id/delete.
func (h *ExpenseHandler) ConfirmDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	return h.views.Render(c, "confirm_modal", fiber.Map{
		"Title":   "Eliminar gasto",
		"Message": "¿Seguro que desea eliminar este gasto?",
		"Action":  "/expenses/" + id + "/delete",
	})
}

// Delete DELETE|POST /expenses/:id/delete. Sin confirm=yes no se llama al backend.
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	if !confirmed(c) {
		return NewHTMXResponse().CloseModal().Send(c)
	}
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		resp, expired := h.failed(c, err, "No se pudo eliminar el gasto")
		if expired {
			return redirectToLogin(c)
		}
		return resp.CloseModal().Send(c)
	}
	return NewHTMXResponse().CloseModal().RefreshList().Success("Gasto eliminado").Send(c)
}

func (h *ExpenseHandler) filter(c *fiber.Ctx) dto.ExpenseFilter {
	var f dto.ExpenseFilter
	if err := c.QueryParser(&f); err != nil {
		h.log.Debug().Err(err).Msg("filtro de gastos inválido, se ignora")
		f = dto.ExpenseFilter{}
	}
	f.Normalize()
	return f
}

// modal datos del modal de gasto. Con fixedCustomer no se pide la lista de clientes.
func (h *ExpenseHandler) modal(c *fiber.Ctx, title, action string, form dto.ExpenseForm, fixedCustomer string) fiber.Map {
	data := fiber.Map{
		"Title":         title,
		"Action":        action,
		"Form":          form,
		"FixedCustomer": fixedCustomer != "",
	}
	if fixedCustomer != "" {
		return data
	}
	options, err := h.customers.Options(c.UserContext())
	if err != nil {
		h.log.Warn().Err(err).Msg("no se pudo cargar el selector de clientes")
		data["Error"] = usecase.UserMessage(err, "No se pudo cargar la lista de clientes")
	}
	data["Customers"] = options
	return data
}
