package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gastos-admin/internal/application/dto"
	"github.com/jhoicas/gastos-admin/internal/application/usecase"
)

// OrganizationHandler listado, detalle con total agregado y modales de organizaciones.
type OrganizationHandler struct {
	base
	uc        *usecase.OrganizationUseCase
	customers *usecase.CustomerUseCase
	expenses  *usecase.ExpenseUseCase
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(uc *usecase.OrganizationUseCase, customers *usecase.CustomerUseCase, expenses *usecase.ExpenseUseCase, b base) *OrganizationHandler {
	return &OrganizationHandler{base: b, uc: uc, customers: customers, expenses: expenses}
}

// Page GET /organizations.
func (h *OrganizationHandler) Page(c *fiber.Ctx) error {
	filter := nameFilter(c)
	res, err := h.uc.List(c.UserContext(), filter, pageParam(c))
	data := h.page(c, "Organizaciones", "organizations")
	data["Filter"] = filter
	data["Query"] = filter.Query()
	data["Result"] = res
	return h.renderPage(c, "organizations", data, err, "No se pudieron cargar las organizaciones")
}

// Table GET /organizations/table.
func (h *OrganizationHandler) Table(c *fiber.Ctx) error {
	filter := nameFilter(c)
	res, err := h.uc.List(c.UserContext(), filter, pageParam(c))
	data := fiber.Map{"Query": filter.Query(), "Result": res}
	return h.renderPartial(c, "organizations_table", data, err, "No se pudieron cargar las organizaciones")
}

// Detail GET /organizations/:id: clientes de la organización y total de gastos.
func (h *OrganizationHandler) Detail(c *fiber.Ctx) error {
	id := c.Params("id")
	data := h.page(c, "Organización", "organizations")
	org, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		data["Organization"] = dto.OrganizationDetail{ID: id}
		data["Result"] = dto.EmptyPage[dto.CustomerRow](h.expenses.PageSize())
		data["Total"] = &dto.ExpenseTotalResponse{}
		return h.renderPage(c, "organization_detail", data, err, "No se pudo cargar la organización")
	}
	data["Title"] = org.Name
	data["Organization"] = org
	res, err := h.customers.ListByOrganization(c.UserContext(), id, pageParam(c))
	data["Result"] = res
	if err != nil {
		return h.renderPage(c, "organization_detail", data, err, "No se pudieron cargar los clientes")
	}
	total, err := h.expenses.Total(c.UserContext(), id)
	data["Total"] = total
	return h.renderPage(c, "organization_detail", data, err, "No se pudo cargar el total de gastos")
}

// Customers GET /organizations/:id/customers: recarga parcial de los clientes.
func (h *OrganizationHandler) Customers(c *fiber.Ctx) error {
	id := c.Params("id")
	res, err := h.customers.ListByOrganization(c.UserContext(), id, pageParam(c))
	data := fiber.Map{"OrganizationID": id, "Result": res}
	return h.renderPartial(c, "organization_customers_table", data, err, "No se pudieron cargar los clientes")
}

// Total GET /organizations/:id/total: parcial con el total agregado.
func (h *OrganizationHandler) Total(c *fiber.Ctx) error {
	id := c.Params("id")
	total, err := h.expenses.Total(c.UserContext(), id)
	data := fiber.Map{"OrganizationID": id, "Total": total}
	return h.renderPartial(c, "organization_total", data, err, "No se pudo cargar el total de gastos")
}

// New GET /organizations/new.
func (h *OrganizationHandler) New(c *fiber.Ctx) error {
	return h.views.Render(c, "organization_modal", modalData("Agregar organización", "/organizations", dto.OrganizationForm{}))
}

// Create POST /organizations.
func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	var form dto.OrganizationForm
	if err := c.BodyParser(&form); err != nil {
		return h.badForm(c, "organization_modal", modalData("Agregar organización", "/organizations", form), err)
	}
	if err := h.uc.Create(c.UserContext(), form); err != nil {
		return h.modalFailed(c, "organization_modal", modalData("Agregar organización", "/organizations", form), err, "No se pudo guardar la organización")
	}
	return NewHTMXResponse().CloseModal().RefreshList().Success("Organización agregada").Send(c)
}

// Edit GET /organizations/:id/edit.
func (h *OrganizationHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	org, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		resp, expired := h.failed(c, err, "No se pudo cargar la organización")
		if expired {
			return redirectToLogin(c)
		}
		return resp.Send(c)
	}
	return h.views.Render(c, "organization_modal", modalData("Editar organización", "/organizations/"+id, dto.OrganizationForm{Name: org.Name}))
}

// Update PUT|POST /organizations/:id.
func (h *OrganizationHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var form dto.OrganizationForm
	if err := c.BodyParser(&form); err != nil {
		return h.badForm(c, "organization_modal", modalData("Editar organización", "/organizations/"+id, form), err)
	}
	if err := h.uc.Update(c.UserContext(), id, form); err != nil {
		return h.modalFailed(c, "organization_modal", modalData("Editar organización", "/organizations/"+id, form), err, "No se pudo actualizar la organización")
	}
	return NewHTMXResponse().CloseModal().RefreshList().Success("Organización actualizada").Send(c)
}

// ConfirmDelete GET /organizations/:id/delete.
func (h *OrganizationHandler) ConfirmDelete(c *fiber.Ctx) error {
	return h.views.Render(c, "confirm_modal", fiber.Map{
		"Title":   "Eliminar organización",
		"Message": "¿Seguro que desea eliminar esta organización?",
		"Action":  "/organizations/" + c.Params("id") + "/delete",
	})
}

// Delete DELETE|POST /organizations/:id/delete.
func (h *OrganizationHandler) Delete(c *fiber.Ctx) error {
	if !confirmed(c) {
		return NewHTMXResponse().CloseModal().Send(c)
	}
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		resp, expired := h.failed(c, err, "No se pudo eliminar la organización")
		if expired {
			return redirectToLogin(c)
		}
		return resp.CloseModal().Send(c)
	}
	return NewHTMXResponse().CloseModal().RefreshList().Success("Organización eliminada").Send(c)
}

func modalData(title, action string, form any) fiber.Map {
	return fiber.Map{"Title": title, "Action": action, "Form": form}
}
