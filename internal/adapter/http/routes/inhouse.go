package routes

import (
	"inhouse/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProjects  = "/projects"
	PathSteps     = "/steps"
	PathBookings  = "/bookings"
	PathDays      = "/days"
	PathInvoices  = "/invoices"
	PathTimers    = "/timers"
	PathStars     = "/stars"
	PathProfiles  = "/profiles"
	PathCustomers = "/customers"
)

func addProjectRoutes(rg *gin.RouterGroup, h *handlers.ProjectHandler) {
	projects := rg.Group(PathProjects)
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.Get)
		projects.PATCH("/:id/status", h.UpdateStatus)
		projects.POST("/:id/copy", h.Copy)
		projects.POST("/:id/steps", h.CreateStep)
		projects.POST("/:id/default-steps", h.AddDefaultSteps)
		projects.GET("/:id/steps", h.ListSteps)
	}

	steps := rg.Group(PathSteps)
	{
		steps.PATCH("/:id/status", h.UpdateStepStatus)
	}
}

func addTimesheetRoutes(rg *gin.RouterGroup, bookings *handlers.BookingHandler, days *handlers.DayHandler, invoices *handlers.InvoiceHandler) {
	b := rg.Group(PathBookings)
	{
		b.POST("", bookings.Create)
		b.GET("/:id", bookings.Get)
		b.PATCH("/:id", bookings.Update)
		b.DELETE("/:id", bookings.Delete)
	}

	d := rg.Group(PathDays)
	{
		d.GET("/:user_id/:date", days.GetSheet)
		d.POST("/:user_id/:date/lock", days.Lock)
	}

	i := rg.Group(PathInvoices)
	{
		i.POST("", invoices.Create)
		i.GET("/:id", invoices.Get)
	}
}

func addTimerRoutes(rg *gin.RouterGroup, timers *handlers.TimerHandler, stars *handlers.StarHandler) {
	t := rg.Group(PathTimers)
	{
		t.POST("", timers.Create)
		t.GET("/:id", timers.Get)
		t.POST("/:id/start", timers.Start)
		t.POST("/:id/stop", timers.Stop)
		t.POST("/:id/clear", timers.Clear)
	}

	s := rg.Group(PathStars)
	{
		s.GET("/:kind", stars.List)
		s.GET("/:kind/:object_id", stars.Get)
		s.PUT("/:kind/:object_id", stars.Add)
		s.DELETE("/:kind/:object_id", stars.Remove)
	}
}

func addPartyRoutes(rg *gin.RouterGroup, profiles *handlers.ProfileHandler, customers *handlers.CustomerHandler) {
	p := rg.Group(PathProfiles)
	{
		p.POST("", profiles.Create)
		p.GET("/:user_id", profiles.Get)
	}

	c := rg.Group(PathCustomers)
	{
		c.POST("", customers.Create)
		c.GET("/:id", customers.Get)
	}
}
