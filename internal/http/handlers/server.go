package handlers

import (
	"github.com/otuedon/shop-tracker/internal/auth"
	"github.com/otuedon/shop-tracker/internal/blobstore"
	"github.com/otuedon/shop-tracker/internal/form"
	"github.com/otuedon/shop-tracker/internal/repo"
)

var (
	productRepo      repo.ProductRepository
	saleRepo         repo.SaleRepository
	notificationRepo repo.NotificationRepository
	userRepo         repo.UserRepository

	authService *auth.Service
	staging     *form.Staging
	pipeline    *form.Pipeline

	devMode bool
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
	rebuildPipeline()
}

func SetSaleRepo(r repo.SaleRepository) {
	saleRepo = r
}

func SetNotificationRepo(r repo.NotificationRepository) {
	notificationRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetAuthService(s *auth.Service) {
	authService = s
}

func SetBlobStore(b blobstore.Store) {
	staging = form.NewStaging(b)
	rebuildPipeline()
}

// SetStaging overrides the staging layer; tests use this to control the
// upload clock and opener.
func SetStaging(s *form.Staging) {
	staging = s
	rebuildPipeline()
}

func SetDevMode(on bool) {
	devMode = on
}

func rebuildPipeline() {
	if productRepo != nil && staging != nil {
		pipeline = form.NewPipeline(productRepo, staging)
	}
}
