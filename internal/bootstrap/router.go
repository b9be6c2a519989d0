package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/sadiko81-hub/wonderdiina-website/internal/api/http"
	"github.com/sadiko81-hub/wonderdiina-website/internal/api/http/middleware"
	carthttp "github.com/sadiko81-hub/wonderdiina-website/internal/cart/http"
	"github.com/sadiko81-hub/wonderdiina-website/internal/cart/repository"
	"github.com/sadiko81-hub/wonderdiina-website/internal/cart/service"
	"github.com/sadiko81-hub/wonderdiina-website/internal/catalog"
	"github.com/sadiko81-hub/wonderdiina-website/internal/currency"
	"github.com/sadiko81-hub/wonderdiina-website/internal/pricing"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Catalog        *catalog.Catalog
	Converter      *currency.Converter
	MerchantHandle string
	CartTTL        time.Duration
	Redis          *redis.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, carthttp.SessionHeader)
	corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, carthttp.SessionHeader)
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	cartRepo := repository.NewCartRepositoryWithTTL(dep.Redis, dep.CartTTL)
	carts := service.NewCartService(cartRepo, dep.Catalog)
	agg := pricing.NewAggregator(dep.Converter)

	cartHandler := carthttp.New(carts, dep.Catalog, agg, dep.MerchantHandle)
	cartHandler.Register(api)

	return r
}
