package http

import (
	"context"
	"fmt"
	"log"
	stdhttp "net/http"

	"bloghub/internal/config"
	"bloghub/internal/database"
	"bloghub/internal/handler"
	"bloghub/internal/repository"
	"bloghub/internal/service"
)

func Run() error {
	ctx := context.Background()

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Connect to Database and apply schema
	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	// 3. Repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	// 4. Services
	authService := service.NewAuthService(userRepo, cfg)
	feedService := service.NewFeedService(postRepo, userRepo, groupRepo, followRepo)
	postService := service.NewPostService(postRepo, userRepo, groupRepo, commentRepo)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	groupService := service.NewGroupService(groupRepo)

	// Media is optional: without object storage config the upload route is
	// simply not mounted and posts go out without images.
	var mediaHandler *handler.MediaHandler
	mediaService, err := service.NewMediaService(ctx, cfg)
	if err != nil {
		log.Printf("Object storage not configured, image uploads disabled: %v", err)
	} else {
		mediaHandler = handler.NewMediaHandler(mediaService)
	}

	// 5. Router
	router := NewRouter(RouterConfig{
		AuthHandler:    handler.NewAuthHandler(authService, cfg.AccessTokenMaxAge),
		FeedHandler:    handler.NewFeedHandler(feedService),
		PostHandler:    handler.NewPostHandler(postService),
		CommentHandler: handler.NewCommentHandler(commentService),
		FollowHandler:  handler.NewFollowHandler(followService),
		GroupHandler:   handler.NewGroupHandler(groupService),
		MediaHandler:   mediaHandler,
		JWTSecret:      cfg.JWTSecret,
	})

	addr := ":" + cfg.ServerPort
	log.Printf("Starting server on %s", addr)
	return stdhttp.ListenAndServe(addr, router)
}
