package main

import (
	"context"
	"log"

	"true-feelings/api/middleware"
	"true-feelings/api/router"
	"true-feelings/api/server"
	"true-feelings/auth"
	"true-feelings/cache"
	"true-feelings/config"
	"true-feelings/db"
	"true-feelings/eventbus"
	"true-feelings/gate"
	"true-feelings/internal/logger"
	"true-feelings/repositories"
	"true-feelings/seo"
	"true-feelings/services"
)

// @title           True Feelings API
// @version         1.0
// @description     Blog content API: posts, categories, tags, feeds and the gated admin pages.
// @BasePath        /
// @securityDefinitions.apikey  CookieAuth
// @in                          cookie
// @name                        token
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	jwtManager, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}

	ctx := context.Background()
	if err := db.Init(ctx, cfg.Mongo); err != nil {
		log.Fatalf("failed to initialize MongoDB: %v", err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			logger.Log.Errorf("mongo disconnect: %v", err)
		}
	}()

	postRepo := repositories.NewPostRepository(db.Database())
	categoryRepo := repositories.NewCategoryRepository(db.Database())
	tagRepo := repositories.NewTagRepository(db.Database())

	postSvc := services.NewPostService(postRepo, categoryRepo, tagRepo, cfg.Posts)

	if cfg.Redis.Addr != "" {
		rc := cache.New(cfg.Redis.Addr, cfg.Redis.DB, cfg.Redis.TTLSeconds)
		if err := rc.Ping(ctx); err != nil {
			logger.Log.Warnf("redis unavailable at %s, post cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			defer rc.Close()
			postSvc.WithCache(rc)
			logger.Log.Infof("post cache enabled (redis=%s ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
		}
	}

	if cfg.Kafka.Brokers != "" {
		topic := eventbus.NewTopic(cfg.Kafka.Topic)
		if err := eventbus.EnsureTopics(cfg.Kafka.Brokers, topic, 3); err != nil {
			logger.Log.Warnf("ensure kafka topics: %v", err)
		}
		bus, err := eventbus.NewKafkaEventBus(cfg.Kafka.Brokers)
		if err != nil {
			log.Fatalf("kafka: %v", err)
		}
		defer bus.Close()
		postSvc.WithPublisher(bus, topic.Base())
		logger.Log.Infof("publishing post events to %s", topic.Base())
	}

	taxonomySvc := services.NewTaxonomyService(categoryRepo, tagRepo, postSvc)
	seoSvc := services.NewSEOService(postSvc, taxonomySvc, seo.SiteFromConfig(cfg.Site), cfg.Posts.FeedSize)

	r := router.New(router.Deps{
		Posts:      postSvc,
		Taxonomy:   taxonomySvc,
		SEO:        seoSvc,
		Verifier:   jwtManager,
		Gate:       gate.New(cfg.Auth.ProtectedPrefixes, jwtManager),
		Metrics:    middleware.NewMetrics(),
		Ping:       db.Ping,
		CookieName: cfg.Auth.CookieName,
		LoginPath:  cfg.Auth.LoginPath,
	})

	srv := server.New(server.NewHandler(r, cfg.CORS), cfg.Server)
	if err := server.Run(srv, cfg.Server.ShutdownTimeout); err != nil {
		logger.Log.Errorf("server: %v", err)
	}
}
