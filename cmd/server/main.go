package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v83"

	"stracing_back_end/internal/cache"
	"stracing_back_end/internal/cart"
	"stracing_back_end/internal/config"
	"stracing_back_end/internal/handlers"
	"stracing_back_end/internal/middleware"
	"stracing_back_end/internal/notifications"
	"stracing_back_end/internal/orders"
	"stracing_back_end/internal/payments"
	"stracing_back_end/internal/routes"
	"stracing_back_end/internal/session"
)

func main() {
	config.Load()

	// Frontend očekuje cene kao JSON brojeve, ne stringove.
	decimal.MarshalJSONWithoutQuotes = true

	secret, err := config.StripeSecretKey()
	if err != nil {
		log.Fatalf("❌ Stripe ne može da se inicijalizuje: %v", err)
	}
	stripe.Key = secret
	log.Println("✅ Stripe inicijalizovan")

	sessionSecret := config.SessionSecret()
	if sessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET nedostaje u .env")
	}

	// Redis je opcion: bez njega dedup notifikacija je in-memory, a rate limit se isključuje.
	var redisClient *redis.Client
	if addr, password := config.RedisAddr(); addr != "" {
		redisClient, err = cache.InitRedis(addr, password)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		log.Println("✅ Redis povezan")
	} else {
		log.Println("⚠️ REDIS_HOST nije podešen — dedup notifikacija radi u memoriji procesa")
	}

	var notified orders.NotifiedStore
	if redisClient != nil {
		notified = orders.NewRedisNotifiedStore(redisClient)
	} else {
		notified = orders.NewMemoryNotifiedStore()
	}

	dispatcher := notifications.NewDispatcher(config.SMTP(), config.AdminEmail())
	workflow := orders.NewWorkflow(payments.NewStripeGateway(), dispatcher, notified)
	carts := cart.NewManager()
	sessionStore := session.NewStore(sessionSecret)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.FrontendOrigin()},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r, routes.Deps{
		Orders:    handlers.NewOrderHandler(workflow),
		Cart:      handlers.NewCartHandler(carts),
		Session:   session.Middleware(sessionStore),
		RateLimit: middleware.OrderRateLimit(redisClient),
	})

	port := config.Port()
	log.Println("🚀 ST Racing Shop backend sluša na portu", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Server se srušio: %v", err)
	}
}
