package bootstrap

import (
	"context"
	"log"

	"college-compass-be/internal/config"
	"college-compass-be/internal/controller"
	"college-compass-be/internal/pkg/logger"
	"college-compass-be/internal/pkg/mailer"
	"college-compass-be/internal/repository/memory"
	"college-compass-be/internal/repository/unitofwork"
	"college-compass-be/internal/service"
	"college-compass-be/pkg/cache"
	"college-compass-be/pkg/recommender"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	OAuthController       controller.IOAuthController
	UserController        controller.IUserController
	CollegeController     controller.ICollegeController
	FavoriteController    controller.IFavoriteController
	SavedSearchController controller.ISavedSearchController
	ComparisonController  controller.IComparisonController
	RefinementController  controller.IRefinementController

	// Background consumers (exposed for main.go to run)
	ActivityConsumer service.IActivityConsumer
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// Redis: the refinement result cache degrades to a no-op when Redis is
	// down, so a failed ping is a warning, not a fatal.
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// Upstream recommendation backend
	recommenderClient := recommender.NewClient(cfg.Recommender.BaseURL)
	resultCache := cache.NewRefinementCache(rdb)
	imageCache := memory.NewImageCache()

	// Services
	activityPublisher := service.NewActivityPublisher(pubSub, sysLogger)
	activityConsumer := service.NewActivityConsumer(pubSub, uowFactory, sysLogger)

	authService := service.NewAuthService(uowFactory, emailService, sysLogger)
	oauthService := service.NewOAuthService(uowFactory, cfg.OAuth)
	userService := service.NewUserService(uowFactory)
	preferenceService := service.NewPreferenceService(uowFactory)
	collegeService := service.NewCollegeService(uowFactory, imageCache)
	favoriteService := service.NewFavoriteService(uowFactory, collegeService, activityPublisher)
	savedSearchService := service.NewSavedSearchService(uowFactory)
	comparisonService := service.NewComparisonService(uowFactory, recommenderClient, activityPublisher, sysLogger)

	ingestService := service.NewIngestService(uowFactory, sysLogger)
	refinementService := service.NewRefinementService(
		uowFactory,
		recommenderClient,
		ingestService,
		resultCache,
		activityPublisher,
		sysLogger,
	)

	return &Container{
		AuthController:        controller.NewAuthController(authService),
		OAuthController:       controller.NewOAuthController(oauthService),
		UserController:        controller.NewUserController(userService, preferenceService),
		CollegeController:     controller.NewCollegeController(collegeService),
		FavoriteController:    controller.NewFavoriteController(favoriteService),
		SavedSearchController: controller.NewSavedSearchController(savedSearchService),
		ComparisonController:  controller.NewComparisonController(comparisonService),
		RefinementController:  controller.NewRefinementController(refinementService),

		ActivityConsumer: activityConsumer,
	}
}
