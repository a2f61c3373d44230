package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/donation"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/favorite"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/request"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/review"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/rolerequest"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/transaction"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/handlers/user"
	"github.com/niloyahmadramjan/surplusshare-server/internal/api/middleware"
	"github.com/niloyahmadramjan/surplusshare-server/internal/model"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Donation    *donation.Handler
	Request     *request.Handler
	Review      *review.Handler
	Favorite    *favorite.Handler
	RoleRequest *rolerequest.Handler
	Transaction *transaction.Handler
	User        *user.Handler
}

func New(h Handlers, auth *middleware.Auth) *ginext.Engine {
	e := ginext.New()
	e.Use(middleware.CORS())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api")

	// Public listings: only verified donations are visible here.
	api.GET("/donations", h.Donation.List)
	api.GET("/donations/:id", h.Donation.Get)
	api.GET("/donations/:id/status", h.Donation.GetStatus)
	api.GET("/donations/:id/reviews", h.Review.ListByDonation)

	authed := api.Group("")
	authed.Use(auth.RequireAuth)
	{
		authed.PUT("/users", h.User.Upsert)
		authed.GET("/users/:email", h.User.Get)

		authed.POST("/donations", h.Donation.Create)
		authed.GET("/donations/mine", h.Donation.ListMine)
		authed.DELETE("/donations/:id", h.Donation.Delete)
		authed.GET("/donations/:id/requests", h.Request.ListByDonation)

		authed.POST("/donations/:id/reviews", h.Review.Create)
		authed.DELETE("/reviews/:id", h.Review.Delete)

		authed.POST("/favorites", h.Favorite.Add)
		authed.GET("/favorites", h.Favorite.ListMine)
		authed.DELETE("/favorites/:id", h.Favorite.Remove)

		authed.POST("/role-requests", h.RoleRequest.Create)
		authed.GET("/role-requests/me", h.RoleRequest.GetMine)

		authed.POST("/transactions", h.Transaction.Record)
		authed.GET("/transactions", h.Transaction.ListMine)

		authed.GET("/donation-requests/:id", h.Request.Get)
		authed.PATCH("/donation-requests/:id/status", h.Request.Decide)
		authed.PATCH("/donation-requests/:id/confirm-pickup", h.Request.ConfirmPickup)
	}

	charity := api.Group("")
	charity.Use(auth.RequireAuth, auth.RequireRole(model.RoleCharity))
	{
		charity.POST("/donations/:id/requests", h.Request.Submit)
		charity.GET("/donation-requests", h.Request.ListMine)
		charity.DELETE("/donation-requests/:id", h.Request.Cancel)
	}

	admin := api.Group("/admin")
	admin.Use(auth.RequireAuth, auth.RequireRole(model.RoleAdmin))
	{
		admin.GET("/donations", h.Donation.ListAll)
		admin.PATCH("/donations/:id/verification", h.Donation.Verify)
		admin.GET("/role-requests", h.RoleRequest.ListAll)
		admin.PATCH("/role-requests/:id/status", h.RoleRequest.Decide)
		admin.GET("/transactions", h.Transaction.ListAll)
	}

	return e
}
