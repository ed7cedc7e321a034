package container

import (
	"context"
	"fmt"

	"fanzone-backend/internal/config"
	articlehandler "fanzone-backend/internal/domains/article/handler"
	articlerepo "fanzone-backend/internal/domains/article/repository"
	articleservice "fanzone-backend/internal/domains/article/service"
	canvashandler "fanzone-backend/internal/domains/canvas/handler"
	canvasrepo "fanzone-backend/internal/domains/canvas/repository"
	canvasservice "fanzone-backend/internal/domains/canvas/service"
	commenthandler "fanzone-backend/internal/domains/comment/handler"
	commentrepo "fanzone-backend/internal/domains/comment/repository"
	commentservice "fanzone-backend/internal/domains/comment/service"
	communityhandler "fanzone-backend/internal/domains/community/handler"
	communityrepo "fanzone-backend/internal/domains/community/repository"
	communityservice "fanzone-backend/internal/domains/community/service"
	mediahandler "fanzone-backend/internal/domains/media/handler"
	mediarepo "fanzone-backend/internal/domains/media/repository"
	mediaservice "fanzone-backend/internal/domains/media/service"
	userhandler "fanzone-backend/internal/domains/user/handler"
	userrepo "fanzone-backend/internal/domains/user/repository"
	userservice "fanzone-backend/internal/domains/user/service"
	infracache "fanzone-backend/internal/infrastructure/cache"
	"fanzone-backend/internal/infrastructure/database"
	"fanzone-backend/internal/infrastructure/queue"
	"fanzone-backend/internal/infrastructure/storage"
	"fanzone-backend/pkg/cache"
	"fanzone-backend/pkg/jwt"
)

// Container wires configuration, infrastructure, repositories, services
// and handlers in dependency order. Both binaries build one and pick
// the pieces they need.
type Container struct {
	Config *config.Config

	// Infrastructure
	DB         *database.PostgresDB
	Cache      cache.Cache
	Store      storage.Store
	Queue      *queue.Client
	JWTManager *jwt.Manager

	// Repositories
	AssetRepo     mediarepo.AssetRepository
	CanvasRepo    canvasrepo.CanvasRepository
	ArticleRepo   articlerepo.ArticleRepository
	CommentRepo   commentrepo.CommentRepository
	CommunityRepo communityrepo.PostRepository
	UserRepo      userrepo.UserRepository

	// Services
	MediaService     mediaservice.ServiceInterface
	CanvasService    canvasservice.ServiceInterface
	ArticleService   articleservice.ServiceInterface
	CommentService   commentservice.ServiceInterface
	CommunityService communityservice.ServiceInterface
	UserService      userservice.ServiceInterface

	// Handlers
	MediaHandler     *mediahandler.MediaHandler
	CanvasHandler    *canvashandler.CanvasHandler
	ArticleHandler   *articlehandler.ArticleHandler
	CommentHandler   *commenthandler.CommentHandler
	CommunityHandler *communityhandler.CommunityHandler
	UserHandler      *userhandler.UserHandler
}

type Options struct {
	// WithQueue connects the asynq client; the worker does not enqueue
	// and leaves it off.
	WithQueue bool
}

func New(ctx context.Context, cfg *config.Config, opts Options) (*Container, error) {
	c := &Container{Config: cfg}

	if err := c.buildInfrastructure(ctx, opts); err != nil {
		return nil, err
	}
	c.buildRepositories()
	c.buildServices()
	c.buildHandlers()
	return c, nil
}

func (c *Container) buildInfrastructure(ctx context.Context, opts Options) error {
	c.DB = database.NewPostgresDB(c.Config.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	c.Cache = infracache.NewRedisCache(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)

	store, err := buildStore(c.Config)
	if err != nil {
		return fmt.Errorf("failed to build storage: %w", err)
	}
	c.Store = store

	if opts.WithQueue {
		c.Queue = queue.NewClient(c.Config.Redis.Host, c.Config.Redis.Password, c.Config.Redis.DB)
	}

	c.JWTManager = jwt.NewManager(c.Config.JWT.Secret, c.Config.JWT.AccessTokenExpiry)
	return nil
}

func buildStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Upload.Driver {
	case "minio":
		return storage.NewMinIOStore(cfg.MinIO)
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewLocalStore(cfg.Upload.LocalDir, cfg.App.BaseURL)
	}
}

func (c *Container) buildRepositories() {
	pool := c.DB.Pool
	c.AssetRepo = mediarepo.NewPostgresAssetRepository(pool)
	c.CanvasRepo = canvasrepo.NewPostgresCanvasRepository(pool)
	c.ArticleRepo = articlerepo.NewPostgresArticleRepository(pool)
	c.CommentRepo = commentrepo.NewPostgresCommentRepository(pool)
	c.CommunityRepo = communityrepo.NewPostgresPostRepository(pool)
	c.UserRepo = userrepo.NewPostgresUserRepository(pool)
}

func (c *Container) buildServices() {
	var enqueuer mediaservice.TaskEnqueuer
	if c.Queue != nil {
		enqueuer = c.Queue
	}

	c.MediaService = mediaservice.NewMediaService(c.AssetRepo, c.Store, enqueuer)
	c.CanvasService = canvasservice.NewCanvasService(
		c.CanvasRepo, c.Store,
		c.Config.Upload.MaxImageBytes, c.Config.Upload.MaxVideoBytes,
	)
	c.ArticleService = articleservice.NewArticleService(c.ArticleRepo, c.Cache)
	c.CommentService = commentservice.NewCommentService(
		c.CommentRepo, c.ArticleRepo, c.Cache, c.Config.Moderation.Strict,
	)
	c.CommunityService = communityservice.NewCommunityService(c.CommunityRepo)
	c.UserService = userservice.NewUserService(c.UserRepo, c.JWTManager)
}

func (c *Container) buildHandlers() {
	c.MediaHandler = mediahandler.NewMediaHandler(c.MediaService)
	c.CanvasHandler = canvashandler.NewCanvasHandler(c.CanvasService)
	c.ArticleHandler = articlehandler.NewArticleHandler(c.ArticleService)
	c.CommentHandler = commenthandler.NewCommentHandler(c.CommentService)
	c.CommunityHandler = communityhandler.NewCommunityHandler(c.CommunityService)
	c.UserHandler = userhandler.NewUserHandler(c.UserService)
}

func (c *Container) Close() {
	if c.Queue != nil {
		_ = c.Queue.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
