package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	ListBookingCustomers(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	GetCategory(c *ginext.Context)
	GetInstructorAvailability(c *ginext.Context)
	ListAvailableInstructors(c *ginext.Context)
	CreateOrder(c *ginext.Context)
	ListOrders(c *ginext.Context)
	GetOrder(c *ginext.Context)
	AddLineItem(c *ginext.Context)
	RunExpiryScan(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.GET("/bookings/:id", h.GetBooking)
		api.GET("/bookings/:id/customers", h.ListBookingCustomers)
		api.PATCH("/bookings/:id/status", h.UpdateBookingStatus)
		api.POST("/bookings/:id/cancel", h.CancelBooking)

		// Catalog
		api.GET("/categories/:id", h.GetCategory)

		// Instructors
		api.GET("/instructors/available", h.ListAvailableInstructors)
		api.GET("/instructors/:id/availability", h.GetInstructorAvailability)

		// LPO orders
		api.POST("/lpo/orders", h.CreateOrder)
		api.GET("/lpo/orders", h.ListOrders)
		api.GET("/lpo/orders/:id", h.GetOrder)
		api.POST("/lpo/orders/:id/line-items", h.AddLineItem)
		api.POST("/lpo/expiry-scan", h.RunExpiryScan)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
