package wire

import (
	"github.com/Mohammed-hani69/adsvairl/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAd(r chi.Router, adHandler *adaptor.AdHandler, moderationHandler *adaptor.ModerationHandler, auth, admin guard) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/ads", adHandler.ListAds)
	r.Get("/api/ads/featured", adHandler.GetFeaturedAds)
	r.Get("/api/ads/{id}", adHandler.GetAd)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/api/ads", adHandler.CreateAd)
		r.Patch("/api/ads/{id}", adHandler.UpdateAd)
		r.Delete("/api/ads/{id}", adHandler.DeleteAd)
		r.Get("/api/user/ads", adHandler.GetUserAds)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth, admin)

		r.Get("/api/admin/ads", moderationHandler.ListAds)
		r.Get("/api/admin/ads/pending", moderationHandler.GetPendingAds)
		r.Patch("/api/admin/ads/{id}/approve", moderationHandler.ApproveAd)
		r.Patch("/api/admin/ads/{id}/reject", moderationHandler.RejectAd)
		r.Patch("/api/admin/ads/{id}/feature", moderationHandler.ToggleFeatured)
		r.Delete("/api/admin/ads/{id}", adHandler.DeleteAd)
		r.Get("/api/admin/stats", moderationHandler.GetStats)
	})
}
