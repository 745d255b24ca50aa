package http

import (
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/jhoicas/gastos-admin/internal/application/export"
	"github.com/jhoicas/gastos-admin/internal/application/usecase"
	"github.com/jhoicas/gastos-admin/internal/infrastructure/blobstore"
	"github.com/jhoicas/gastos-admin/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ExpenseUC      *usecase.ExpenseUseCase
	CustomerUC     *usecase.CustomerUseCase
	OrganizationUC *usecase.OrganizationUseCase
	AuthUC         *usecase.AuthUseCase
	RangeExport    *export.RangeExportUseCase
	DateExport     *export.DateRangeExportUseCase
	Documents      *blobstore.Store
	Views          *Views
	Static         fs.FS // contenido de web/static; nil = sin estáticos
	Logger         *logger.Logger
	WriteRateLimit int
	SecureCookie   bool
}

// Router registra las rutas de la consola.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}
	b := base{views: deps.Views, log: log.Component("http")}

	if deps.Static != nil {
		app.Use("/static", filesystem.New(filesystem.Config{Root: nethttp.FS(deps.Static)}))
	}

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.SecureCookie, b)
	app.Get("/login", authHandler.LoginPage)
	app.Post("/login", RateLimitWrite(deps.WriteRateLimit), authHandler.Login)

	// Rutas protegidas (requieren sesión)
	protected := app.Group("/", SessionMiddleware(deps.AuthUC), RateLimitWrite(deps.WriteRateLimit))
	protected.Post("/logout", authHandler.Logout)
	protected.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/expenses", fiber.StatusSeeOther)
	})

	// Gastos
	expenseHandler := NewExpenseHandler(deps.ExpenseUC, deps.CustomerUC, b)
	expenses := protected.Group("/expenses")
	expenses.Get("/", expenseHandler.Page)
	expenses.Get("/table", expenseHandler.Table)
	expenses.Get("/new", expenseHandler.New)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/:id/edit", expenseHandler.Edit)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Post("/:id", expenseHandler.Update)
	expenses.Get("/:id/delete", expenseHandler.ConfirmDelete)
	expenses.Delete("/:id/delete", expenseHandler.Delete)
	expenses.Post("/:id/delete", expenseHandler.Delete)

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.ExpenseUC, deps.OrganizationUC, b)
	exportHandler := NewExportHandler(deps.RangeExport, deps.DateExport, deps.Documents, b)
	customers := protected.Group("/customers")
	customers.Get("/", customerHandler.Page)
	customers.Get("/table", customerHandler.Table)
	customers.Get("/new", customerHandler.New)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.Detail)
	customers.Get("/:id/edit", customerHandler.Edit)
	customers.Put("/:id", customerHandler.Update)
	customers.Post("/:id", customerHandler.Update)
	customers.Get("/:id/delete", customerHandler.ConfirmDelete)
	customers.Delete("/:id/delete", customerHandler.Delete)
	customers.Post("/:id/delete", customerHandler.Delete)
	customers.Get("/:id/expenses", customerHandler.Expenses)
	customers.Get("/:id/expenses/new", expenseHandler.NewForCustomer)
	customers.Post("/:id/expenses", expenseHandler.CreateForCustomer)
	customers.Get("/:id/export/range", exportHandler.RangeModal)
	customers.Post("/:id/export/range", exportHandler.Range)
	customers.Get("/:id/export/dates", exportHandler.DatesModal)
	customers.Post("/:id/export/dates", exportHandler.Dates)

	// Organizaciones
	orgHandler := NewOrganizationHandler(deps.OrganizationUC, deps.CustomerUC, deps.ExpenseUC, b)
	orgs := protected.Group("/organizations")
	orgs.Get("/", orgHandler.Page)
	orgs.Get("/table", orgHandler.Table)
	orgs.Get("/new", orgHandler.New)
	orgs.Post("/", orgHandler.Create)
	orgs.Get("/:id", orgHandler.Detail)
	orgs.Get("/:id/edit", orgHandler.Edit)
	orgs.Put("/:id", orgHandler.Update)
	orgs.Post("/:id", orgHandler.Update)
	orgs.Get("/:id/delete", orgHandler.ConfirmDelete)
	orgs.Delete("/:id/delete", orgHandler.Delete)
	orgs.Post("/:id/delete", orgHandler.Delete)
	orgs.Get("/:id/total", orgHandler.Total)
	orgs.Get("/:id/customers", orgHandler.Customers)
	orgs.Get("/:id/customers/new", customerHandler.NewForOrganization)
	orgs.Post("/:id/customers", customerHandler.CreateForOrganization)

	// Documentos transitorios
	docHandler := NewDocumentHandler(deps.Documents)
	protected.Get("/documents/:id", docHandler.Open)
}
