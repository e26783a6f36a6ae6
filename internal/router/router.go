package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Refresh(c *ginext.Context)
	Me(c *ginext.Context)
	ListEvents(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	BookEvent(c *ginext.Context)
	MyBookings(c *ginext.Context)
	AdminDashboard(c *ginext.Context)
	AdminBookings(c *ginext.Context)
}

// InitRouter wires the route table. authMW resolves the identity for
// user-level routes; adminMW additionally requires the admin flag.
func InitRouter(mode string, h Handler, authMW, adminMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Public
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.POST("/token/refresh", h.Refresh)
	router.GET("/events", h.ListEvents)

	// Authenticated users
	user := router.Group("/", authMW)
	{
		user.GET("/me", h.Me)
		user.GET("/my-bookings", h.MyBookings)
		user.POST("/events/:id/book", h.BookEvent)
	}

	// Admins only
	admin := router.Group("/", authMW, adminMW)
	{
		admin.POST("/events/create", h.CreateEvent)
		admin.PUT("/events/:id/update", h.UpdateEvent)
		admin.DELETE("/events/:id/delete", h.DeleteEvent)
		admin.GET("/admin/dashboard", h.AdminDashboard)
		admin.GET("/admin/bookings", h.AdminBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
