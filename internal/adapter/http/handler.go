package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"github.com/niteshdsouza/org-level-campaigns/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP covering the admin API under /api/v1 and the public donor-facing
// pledge and giving endpoints. Routes are registered on a chi.Router.
type Handler struct {
	campaigns port.CampaignUseCase
	pledges   port.PledgeUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, pledges port.PledgeUseCase, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, pledges: pledges, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Post("/campaigns/{id}/close", h.handleCloseCampaign)
		r.Get("/campaigns/{id}/donors", h.handleCampaignDonors)
		r.Get("/campaigns/{id}/links", h.handleCampaignLinks)

		r.Get("/pledges", h.handleListPledges)
		r.Post("/pledges", h.handleAddPledge)
		r.Get("/pledges/check", h.handleCheckExistingPledge)
		r.Get("/pledges/search-donors", h.handleSearchDonors)
		r.Put("/pledges/{id}", h.handleUpdatePledge)
		r.Delete("/pledges/{id}", h.handleDeletePledge)

		r.Get("/campuses", h.handleListCampuses)
		r.Get("/listings", h.handleListListings)
	})

	// donor-facing pages, reached through shared links
	r.Get("/pledge", h.handlePledgePage)
	r.Post("/pledge", h.handleSubmitPledge)
	r.Get("/give", h.handleGivingPage)
	r.Post("/give", h.handleSubmitGift)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
