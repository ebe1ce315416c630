package http

import (
	"github.com/MaryamElkadi/khat-alilan-sub001/internal/transport/http/handler"
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Order    *handler.OrderHandler
	Product  *handler.ProductHandler
	Content  *handler.ContentHandler
	Contact  *handler.ContactHandler
	Customer *handler.CustomerHandler
	Settings *handler.SettingsHandler
}

func RegisterRoutes(app *fiber.App, h *Handlers) {
	orders := app.Group("/orders")
	orders.Get("", h.Order.List)
	orders.Post("", h.Order.Create)
	orders.Get("/:id", h.Order.Get)
	orders.Put("/:id", h.Order.Update)
	orders.Delete("/:id", h.Order.Delete)

	products := app.Group("/products")
	products.Get("", h.Product.List)
	products.Get("/:id", h.Product.Get)
	products.Post("", h.Product.Create)
	products.Put("/:id", h.Product.Update)
	products.Delete("/:id", h.Product.Delete)

	services := app.Group("/services")
	services.Get("", h.Content.ListServices)
	services.Get("/:id", h.Content.GetService)
	services.Post("", h.Content.CreateService)
	services.Put("/:id", h.Content.UpdateService)
	services.Delete("/:id", h.Content.DeleteService)

	portfolio := app.Group("/portfolio")
	portfolio.Get("", h.Content.ListPortfolio)
	portfolio.Get("/:id", h.Content.GetPortfolioItem)
	portfolio.Post("", h.Content.CreatePortfolioItem)
	portfolio.Put("/:id", h.Content.UpdatePortfolioItem)
	portfolio.Delete("/:id", h.Content.DeletePortfolioItem)

	contacts := app.Group("/contacts")
	contacts.Post("", h.Contact.Submit)
	contacts.Get("", h.Contact.List)
	contacts.Put("/:id/read", h.Contact.MarkRead)
	contacts.Delete("/:id", h.Contact.Delete)

	customers := app.Group("/customers")
	customers.Get("", h.Customer.List)
	customers.Get("/:id", h.Customer.Get)
	customers.Post("", h.Customer.Create)
	customers.Put("/:id", h.Customer.Update)
	customers.Delete("/:id", h.Customer.Delete)

	app.Get("/settings", h.Settings.Get)
	app.Put("/settings", h.Settings.Update)
}
