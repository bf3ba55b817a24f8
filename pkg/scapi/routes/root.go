package routes

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"github.com/quatton/scitech/pkg/scapi/services"
)

// RegisterAPI registers every huma operation. svcs may be nil when only the
// OpenAPI document is needed.
func RegisterAPI(api huma.API, svcs *services.Services) {
	if svcs == nil {
		svcs = &services.Services{}
	}

	for _, name := range AllTags() {
		api.OpenAPI().Tags = append(api.OpenAPI().Tags, &huma.Tag{Name: name})
	}

	if svcs.IAM != nil {
		api.UseMiddleware(svcs.IAM.Middleware())
	}

	RegisterHealth(api)
	RegisterAuth(api, svcs)
	RegisterMachines(api, svcs)
	RegisterEvents(api, svcs)
}

// RegisterRaw mounts the plain HTTP handlers that live outside huma.
func RegisterRaw(router chi.Router, svcs *services.Services) {
	if svcs == nil {
		return
	}
	if svcs.Hub != nil {
		router.Get("/socket", SocketHandler(svcs.Hub, svcs.Logger))
	}
	if svcs.Metrics != nil {
		router.Handle("/metrics", svcs.Metrics.Handler())
	}
}
