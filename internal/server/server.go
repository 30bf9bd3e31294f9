package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lullaby/internal/ai/component"
	"lullaby/internal/config"
	"lullaby/internal/handler"
	authHandler "lullaby/internal/handler/auth"
	storyHandler "lullaby/internal/handler/story"
	"lullaby/internal/pkg/cache"
	"lullaby/internal/pkg/fal"
	"lullaby/internal/pkg/mongodb"
	"lullaby/internal/pkg/storytools"
	"lullaby/internal/pkg/storytools/providers"
	authRepo "lullaby/internal/repository/auth"
	storyRepo "lullaby/internal/repository/story"
	"lullaby/internal/server/middleware"
	"lullaby/internal/service"
	storysvc "lullaby/internal/service/story"
)

// Server HTTP 服务器
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	mongo  *mongodb.Client
	redis  *cache.RedisCache
}

// New 创建服务器实例
// MongoDB 和 Redis 是必需依赖（故事库和Token存储）；图片服务未配置时仍可启动，
// 只是生成接口会返回"未配置"错误
func New(cfg *config.Config) (*Server, error) {
	// 设置 Gin 模式
	switch cfg.Server.Mode {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	// 创建 Gin 引擎
	engine := gin.New()

	// 初始化 MongoDB
	mongoClient, err := mongodb.New(&cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")

	// 创建索引
	if err := mongodb.EnsureIndexes(mongoClient.Database()); err != nil {
		log.Warn().Err(err).Msg("failed to ensure indexes")
	}

	// 初始化 Redis
	redisCache, err := cache.NewRedisCache(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")

	srv := &Server{
		cfg:    cfg,
		engine: engine,
		mongo:  mongoClient,
		redis:  redisCache,
	}

	// 设置路由
	if err := srv.setupRoutes(); err != nil {
		return nil, err
	}

	return srv, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() error {
	// 全局中间件
	s.engine.Use(middleware.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Logger())
	s.engine.Use(middleware.CORS())

	// 健康检查
	healthHandler := handler.NewHealthHandler()
	s.engine.GET("/health", healthHandler.Health)
	s.engine.GET("/ready", healthHandler.Ready)

	// Swagger 文档
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 认证服务
	userRepo := authRepo.NewUserRepo(s.mongo.Database())
	refreshTokenRepo := authRepo.NewRefreshTokenRepo(s.redis)

	// 从配置读取JWT参数，如果没有配置则使用默认值
	jwtSecret := s.cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "default-secret-key-change-in-production"
		log.Warn().Msg("JWT secret not configured, using default (NOT SECURE for production)")
	}

	accessTokenExpiry := s.cfg.Auth.AccessTokenExpiry
	if accessTokenExpiry == 0 {
		accessTokenExpiry = 24 * time.Hour
	}

	refreshTokenExpiry := s.cfg.Auth.RefreshTokenExpiry
	if refreshTokenExpiry == 0 {
		refreshTokenExpiry = 7 * 24 * time.Hour
	}

	authSvc := service.NewAuthService(
		userRepo,
		refreshTokenRepo,
		jwtSecret,
		accessTokenExpiry,
		refreshTokenExpiry,
	)
	authHdl := authHandler.NewHandler(authSvc)

	// 故事服务
	storySvc, err := s.newStoryService()
	if err != nil {
		return err
	}
	storyHdl := storyHandler.NewHandler(storySvc)

	// API v1
	v1 := s.engine.Group("/api/v1")
	{
		// 认证接口（公开）
		v1.POST("/auth/register", authHdl.Register)
		v1.POST("/auth/login", authHdl.Login)
		v1.POST("/auth/refresh", authHdl.Refresh)
		v1.POST("/auth/logout", authHdl.Logout)
		v1.GET("/auth/me", authHdl.GetMe)

		// 故事接口（需要认证）
		authed := v1.Group("")
		authed.Use(middleware.Auth(authSvc.JWT()))
		{
			authed.POST("/stories", storyHdl.GenerateStory)
			authed.GET("/stories", storyHdl.ListStories)
			authed.GET("/stories/:story_id", storyHdl.GetStory)
			authed.DELETE("/stories/:story_id", storyHdl.DeleteStory)
			authed.PUT("/stories/:story_id/rating", storyHdl.RateStory)
		}
	}

	return nil
}

// newStoryService 组装故事服务的依赖
func (s *Server) newStoryService() (storysvc.StoryService, error) {
	// 文本生成（eino ChatModel）
	chatModel, err := component.NewChatModel(context.Background(), &s.cfg.AI)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}
	llmProvider := providers.NewEinoProvider(chatModel)
	log.Info().Str("provider", s.cfg.AI.Provider).Str("model", s.cfg.AI.Model).Msg("initialized chat model")

	// 图片生成（fal.ai，可选）
	var imageProvider storytools.ImageProvider
	if s.cfg.Image.APIKey != "" {
		fp, err := providers.NewFalImageProvider(&fal.Config{
			APIKey:  s.cfg.Image.APIKey,
			BaseURL: s.cfg.Image.BaseURL,
			Model:   s.cfg.Image.Model,
			Timeout: s.cfg.Image.Timeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create image provider: %w", err)
		}
		imageProvider = fp
		log.Info().Str("model", s.cfg.Image.Model).Msg("initialized image provider")
	} else {
		log.Warn().Msg("image API key not configured, story generation will be rejected")
	}

	repo := storyRepo.NewStoryRepo(s.mongo.Database())
	return storysvc.NewStoryService(repo, llmProvider, imageProvider), nil
}

// Run 启动服务器
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待关闭信号或错误
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")

		// 关闭连接
		if err := s.mongo.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to close MongoDB connection")
		}
		if err := s.redis.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Redis connection")
		}

		return srv.Shutdown(context.Background())
	case err := <-errCh:
		return err
	}
}

// Engine 获取 Gin 引擎 (用于测试)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
