package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "francofolies/docs"
)

const swaggerIndex = "/swagger/index.html"

func redirectToSwaggerIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, swaggerIndex, http.StatusMovedPermanently)
}

// RegisterSwaggerRoutes serves the generated catalog documentation.
func RegisterSwaggerRoutes(r chi.Router) {
	r.Get("/swagger", redirectToSwaggerIndex)
	r.Get("/swagger/", redirectToSwaggerIndex)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))
}
