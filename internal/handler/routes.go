package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/yashalsharma/kirayadoor-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	otpRateLimiter *middleware.RateLimiter,
	authHandler *AuthHandler,
	propertyHandler *PropertyHandler,
	unitHandler *UnitHandler,
	tenantHandler *TenantHandler,
	expenseTypeHandler *ExpenseTypeHandler,
	tenantExpenseHandler *TenantExpenseHandler,
	paidExpenseHandler *PaidExpenseHandler,
	pendingHandler *PendingHandler,
	statementHandler *StatementHandler,
	photoHandler *PhotoHandler,
	wsHandler *WebSocketHandler,
) {
	// API version 1
	api := e.Group("/api/v1")

	// Auth routes (public, rate limited)
	auth := api.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware(otpRateLimiter))
	auth.POST("/otp/request", authHandler.RequestOTP)
	auth.POST("/otp/verify", authHandler.VerifyOTP)

	// Profile routes (protected)
	profile := api.Group("/profile")
	profile.Use(authMiddleware.Authenticate())
	profile.GET("", authHandler.GetProfile)
	profile.PUT("", authHandler.UpdateProfile)

	// Property routes (protected)
	properties := api.Group("/properties")
	properties.Use(authMiddleware.Authenticate())
	properties.POST("", propertyHandler.CreateProperty)
	properties.GET("", propertyHandler.GetProperties)
	properties.GET("/:id", propertyHandler.GetProperty)
	properties.PUT("/:id", propertyHandler.UpdateProperty)
	properties.DELETE("/:id", propertyHandler.DeleteProperty)
	properties.POST("/:id/units", unitHandler.CreateUnit)
	properties.GET("/:id/units", unitHandler.GetUnits)
	properties.POST("/:id/photo", photoHandler.UploadPhoto)
	properties.GET("/:id/photo", photoHandler.GetPhoto)
	properties.DELETE("/:id/photo", photoHandler.DeletePhoto)

	// Unit routes (protected)
	units := api.Group("/units")
	units.Use(authMiddleware.Authenticate())
	units.GET("/:id", unitHandler.GetUnit)
	units.PUT("/:id", unitHandler.UpdateUnit)
	units.DELETE("/:id", unitHandler.DeleteUnit)
	units.POST("/:id/tenants", tenantHandler.CreateTenant)
	units.GET("/:id/tenants", tenantHandler.GetTenants)

	// Tenant routes (protected)
	tenants := api.Group("/tenants")
	tenants.Use(authMiddleware.Authenticate())
	tenants.GET("/:id", tenantHandler.GetTenant)
	tenants.PUT("/:id", tenantHandler.UpdateTenant)
	tenants.DELETE("/:id", tenantHandler.DeleteTenant)
	tenants.POST("/:id/expenses", tenantExpenseHandler.CreateTenantExpense)
	tenants.GET("/:id/expenses", tenantExpenseHandler.GetTenantExpenses)
	tenants.POST("/:id/payments", paidExpenseHandler.RecordPayment)
	tenants.GET("/:id/payments", paidExpenseHandler.GetPayments)
	tenants.GET("/:id/statements/:year/:month", statementHandler.GetStatement)

	// Expense type catalog routes (protected)
	expenseTypes := api.Group("/expense-types")
	expenseTypes.Use(authMiddleware.Authenticate())
	expenseTypes.POST("", expenseTypeHandler.CreateExpenseType)
	expenseTypes.GET("", expenseTypeHandler.GetExpenseTypes)
	expenseTypes.PUT("/:id", expenseTypeHandler.UpdateExpenseType)
	expenseTypes.DELETE("/:id", expenseTypeHandler.DeleteExpenseType)

	// Tenant expense routes (protected)
	tenantExpenses := api.Group("/tenant-expenses")
	tenantExpenses.Use(authMiddleware.Authenticate())
	tenantExpenses.GET("/:id", tenantExpenseHandler.GetTenantExpense)
	tenantExpenses.PUT("/:id", tenantExpenseHandler.UpdateTenantExpense)
	tenantExpenses.DELETE("/:id", tenantExpenseHandler.DeleteTenantExpense)

	// Payment routes (protected)
	payments := api.Group("/payments")
	payments.Use(authMiddleware.Authenticate())
	payments.GET("/:id", paidExpenseHandler.GetPayment)
	payments.DELETE("/:id", paidExpenseHandler.DeletePayment)

	// Pending amount routes (protected)
	pending := api.Group("/pending")
	pending.Use(authMiddleware.Authenticate())
	pending.GET("/expenses/:id", pendingHandler.GetExpensePending)
	pending.GET("/tenants/:id", pendingHandler.GetTenantPending)
	pending.GET("/units/:id", pendingHandler.GetUnitPending)
	pending.GET("/properties/:id", pendingHandler.GetPropertyPending)

	// WebSocket endpoint (token authenticated via query param)
	e.GET("/ws", wsHandler.HandleWS)
}
