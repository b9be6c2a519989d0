package main

import (
	"context"
	"log"
	"time"

	"github.com/sadiko81-hub/wonderdiina-website/config"
	"github.com/sadiko81-hub/wonderdiina-website/internal/bootstrap"
	"github.com/sadiko81-hub/wonderdiina-website/internal/catalog"
	catalogrepo "github.com/sadiko81-hub/wonderdiina-website/internal/catalog/repository"
	"github.com/sadiko81-hub/wonderdiina-website/internal/currency"
	"github.com/shopspring/decimal"
)

const serviceName = "wonderdiina-storefront"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	redisClient, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	log.Printf("catalog loaded with %d products", cat.Len())

	rate, err := decimal.NewFromString(cfg.Shop.RateMADToEUR)
	if err != nil {
		log.Fatalf("exchange rate: %v", err)
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Catalog:        cat,
		Converter:      currency.NewConverter(rate),
		MerchantHandle: cfg.Shop.PayPalHandle,
		CartTTL:        time.Duration(cfg.Shop.CartTTLDays) * 24 * time.Hour,
		Redis:          redisClient,
	})

	log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}

// loadCatalog reads the product catalog from Postgres when a DSN is
// configured, otherwise uses the built-in seed.
func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Shop.CatalogDSN == "" {
		return catalog.New(catalog.DefaultSeed())
	}

	db, err := bootstrap.OpenCatalogDB(ctx, bootstrap.DBOptions{DSN: cfg.Shop.CatalogDSN})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	products, err := catalogrepo.NewProductRepository(db).ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return catalog.New(products)
}
