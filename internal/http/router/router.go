package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/otuedon/shop-tracker/docs"
	"github.com/otuedon/shop-tracker/internal/http/handlers"
	mw "github.com/otuedon/shop-tracker/internal/http/middleware"
)

// NewRouter wires every route. mediaDir is served read-only under /media
// so uploaded product images resolve from the URLs stored on products.
func NewRouter(mediaDir string) http.Handler {
	r := chi.NewRouter()
	r.Use(mw.RequestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))

	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit)
		r.Post("/auth/otp/request", handlers.RequestOTPHandler)
		r.Post("/auth/otp/verify", handlers.VerifyOTPHandler)
		r.Post("/auth/refresh", handlers.RefreshHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(mw.Auth)

		r.Get("/profile", handlers.GetProfileHandler)
		r.Put("/profile", handlers.UpdateProfileHandler)
		r.Put("/profile/business-type", handlers.SetBusinessTypeHandler)

		r.Post("/drafts", handlers.OpenDraftHandler)
		r.Get("/drafts/{id}", handlers.GetDraftHandler)
		r.Patch("/drafts/{id}/fields", handlers.UpdateDraftFieldsHandler)
		r.Post("/drafts/{id}/image", handlers.UploadDraftImageHandler)
		r.Post("/drafts/{id}/advance", handlers.AdvanceDraftHandler)
		r.Post("/drafts/{id}/retreat", handlers.RetreatDraftHandler)
		r.Post("/drafts/{id}/submit", handlers.SubmitDraftHandler)
		r.Delete("/drafts/{id}", handlers.AbandonDraftHandler)

		r.Get("/products", handlers.GetProductsHandler)
		r.Get("/products/search", handlers.FilterProductsHandler)
		r.Get("/products/{id}", handlers.GetProductByIDHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)

		r.Post("/sales", handlers.RecordSaleHandler)
		r.Get("/sales", handlers.GetSalesHandler)
		r.Get("/summary", handlers.GetSummaryHandler)

		r.Get("/notifications", handlers.GetNotificationsHandler)
		r.Get("/notifications/{id}", handlers.GetNotificationByIDHandler)
		r.Post("/notifications/{id}/read", handlers.MarkNotificationReadHandler)
		r.Delete("/notifications/{id}", handlers.DeleteNotificationHandler)
	})

	return r
}
