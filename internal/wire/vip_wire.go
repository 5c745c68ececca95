package wire

import (
	"github.com/Mohammed-hani69/adsvairl/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVip(
	r chi.Router,
	storeHandler *adaptor.VipStoreHandler,
	orderHandler *adaptor.VipOrderHandler,
	productHandler *adaptor.StoreProductHandler,
	auth, optional, admin guard,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/vip/stores", storeHandler.ListStores)

	// owners and admins also see stores awaiting approval
	r.Group(func(r chi.Router) {
		r.Use(optional)

		r.Get("/api/vip/stores/{id}", storeHandler.GetStore)
		r.Get("/api/vip/stores/{id}/products", productHandler.ListProducts)
	})

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/api/vip/stores", storeHandler.CreateStore)
		r.Patch("/api/vip/stores/{id}", storeHandler.UpdateStore)
		r.Patch("/api/vip/stores/{id}/logo", storeHandler.UpdateLogo)
		r.Patch("/api/vip/stores/{id}/banner", storeHandler.UpdateBanner)
		r.Get("/api/user/vip-store", storeHandler.GetUserStore)

		r.Post("/api/vip/orders", orderHandler.CreateOrder)
		r.Get("/api/vip/orders", orderHandler.GetUserOrders)

		r.Post("/api/vip/stores/{id}/products", productHandler.CreateProduct)
		r.Patch("/api/vip/products/{id}", productHandler.UpdateProduct)
		r.Delete("/api/vip/products/{id}", productHandler.DeleteProduct)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(auth, admin)

		r.Get("/api/admin/vip/stores", storeHandler.ListAllStores)
		r.Patch("/api/admin/vip/stores/{id}/approve", storeHandler.ApproveStore)
		r.Get("/api/admin/vip/orders", orderHandler.ListOrders)
		r.Patch("/api/admin/vip/orders/{id}", orderHandler.UpdateOrderStatus)
	})
}
