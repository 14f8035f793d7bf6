package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/stockwatch-api/internal/application/audit"
	"github.com/jhoicas/stockwatch-api/internal/application/auth"
	"github.com/jhoicas/stockwatch-api/internal/application/enquiry"
	"github.com/jhoicas/stockwatch-api/internal/application/inventory"
	"github.com/jhoicas/stockwatch-api/internal/application/usecase"
	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger  *inventory.Ledger
	Report  *inventory.ReportUseCase
	History *audit.History
	Enquiry *enquiry.Store
	StaffUC *usecase.StaffUseCase
	AuthUC  *auth.AuthUseCase
	Session SessionConfig
	Cookie  CookieConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	requireSession := AuthMiddleware(deps.Session)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Cookie)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", requireSession, authHandler.Logout)
	authGroup.Get("/me", requireSession, authHandler.Me)
	authGroup.Post("/register", requireSession, adminOnly, authHandler.Register)

	// Stock (sesión opcional: sin sesión las mutaciones quedan como "Unknown Staff")
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.Ledger, deps.Report)
	stock.Get("/report", requireSession, adminOnly, stockHandler.Report)
	stock.Get("/", OptionalAuth(deps.Session), stockHandler.List)
	stock.Post("/", OptionalAuth(deps.Session), stockHandler.AddOrIncrease)
	stock.Post("/increase", OptionalAuth(deps.Session), stockHandler.Increase)
	stock.Post("/decrease", OptionalAuth(deps.Session), stockHandler.Decrease)

	// Auditoría (admin)
	auditHandler := NewAuditHandler(deps.History)
	api.Get("/audit", requireSession, adminOnly, auditHandler.List)

	// Consultas y alertas
	enquiries := api.Group("/enquiries", requireSession)
	enquiryHandler := NewEnquiryHandler(deps.Enquiry)
	enquiries.Post("/", enquiryHandler.Create)
	enquiries.Get("/", adminOnly, enquiryHandler.List)

	// Empleados (admin)
	staffHandler := NewStaffHandler(deps.StaffUC)
	api.Get("/staff", requireSession, adminOnly, staffHandler.List)
}
