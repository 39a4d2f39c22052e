package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/snackhub/catalog-backend/docs" // Импорт сгенерированных файлов
	"github.com/snackhub/catalog-backend/internal/usecase"
	"github.com/snackhub/catalog-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, rl *RateLimiter) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		if rl != nil {
			v1.Use(rl.Middleware)
		}

		prHandler := NewProductHandler(prUC, r.logger)
		registerProductRoutes(v1, prHandler)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.createProduct)
		pr.Get("/", prHandler.findAllProducts)
		pr.Get("/search", prHandler.findProductsByName)
		pr.Get("/promotions", prHandler.findProductsOnPromotion)

		pr.Route("/category/{category}", func(cat chi.Router) {
			cat.Get("/", prHandler.findProductsByCategory)
			cat.Get("/price-range", prHandler.findProductsByPriceRange)
			cat.Get("/price-range-manual", prHandler.findProductsByPriceRangeManual)
		})

		pr.Get("/{id}", prHandler.findProductByID)
		pr.Delete("/{id}", prHandler.deleteProductByID)
	})
}
