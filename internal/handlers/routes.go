package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-clinic/internal/middleware"
	"github.com/harentsoaR/dental-clinic/internal/models"
)

// RegisterRoutes mounts every endpoint on r. Each page of the clinic is a
// route group gated by the role table.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.POST("/auth/login", h.Login)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(h.Auth))
	{
		api.POST("/auth/logout", h.Logout)
		api.GET("/me", h.GetCurrentUser)
		api.GET("/navigation", h.GetNavigation)
		api.GET("/odontogram/statuses", h.ListToothStatuses)

		patients := api.Group("/patients", middleware.RequirePage(models.PagePatients))
		patients.GET("", h.ListPatients)
		patients.POST("", h.CreatePatient)
		patients.GET("/:id", h.GetPatient)
		patients.PUT("/:id", h.UpdatePatient)
		patients.DELETE("/:id", h.DeletePatient)

		odontogram := api.Group("/patients/:id/odontogram", middleware.RequirePage(models.PageOdontogram))
		odontogram.GET("", h.GetOdontogram)
		odontogram.PUT("", h.ReplaceOdontogram)
		odontogram.PATCH("/:tooth", h.SetTooth)

		procedures := api.Group("/procedures", middleware.RequirePage(models.PageProcedures))
		procedures.GET("", h.ListProcedures)
		procedures.POST("", h.CreateProcedure)
		procedures.GET("/:id", h.GetProcedure)
		procedures.PUT("/:id", h.UpdateProcedure)
		procedures.DELETE("/:id", h.DeleteProcedure)

		appointments := api.Group("/appointments", middleware.RequirePage(models.PageAppointments))
		appointments.GET("", h.GetAppointments)
		appointments.POST("", h.CreateAppointment)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id", h.UpdateAppointment)
		appointments.DELETE("/:id", h.DeleteAppointment)

		clinic := api.Group("/clinic", middleware.RequirePage(models.PageClinic))
		clinic.GET("/waiting-list", h.GetWaitingList)

		consultation := api.Group("/clinic/consultations/:id", middleware.RequirePage(models.PageConsultation))
		consultation.GET("", h.GetConsultation)
		consultation.PUT("/anamnesis", h.SaveAnamnesis)

		billing := api.Group("/billing", middleware.RequirePage(models.PageBilling))
		billing.GET("", h.ListBilling)
		billing.POST("/:id/payments", h.RecordPayment)

		reports := api.Group("/reports", middleware.RequirePage(models.PageReports))
		reports.GET("", h.GetReport)

		users := api.Group("/users", middleware.RequirePage(models.PageUsers))
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}
