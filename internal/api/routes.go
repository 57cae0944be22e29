package api

import (
	"net/http"

	"github.com/TropoEU/concierge/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	behaviorHandler := domain.Behavior.Handler()

	routes.Register(
		mux,
		domain.Tenants.Handler().Routes(),
		behaviorHandler.Routes(),
		behaviorHandler.AdminRoutes(),
		domain.Prompt.Routes(),
	)
}
