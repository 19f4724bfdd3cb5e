package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-forum/internal/config"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
	mysqlRepo "github.com/Guyuepp/go-clean-forum/internal/repository/mysql"
	myRedis "github.com/Guyuepp/go-clean-forum/internal/repository/redis"
	"github.com/Guyuepp/go-clean-forum/internal/rest"
	"github.com/Guyuepp/go-clean-forum/internal/rest/middleware"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/comment"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/like"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/reply"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/thread"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/validity"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
	shutdownTimeout    = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	cfg.SetupLogger()

	// prepare database
	db, err := openDatabase(cfg.Database.DSN())
	if err != nil {
		logrus.Fatalf("could not connect to database after retries: %v", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Errorf("got error when closing the DB connection: %v", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := mysqlRepo.AutoMigrate(db); err != nil {
			logrus.Fatalf("failed to migrate database: %v", err)
		}
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr(),
		Password: cfg.Cache.Pass,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Errorf("got error when closing the cache connection: %v", err)
		}
	}()
	if err := client.Ping(context.Background()).Err(); err != nil {
		// the bloom filter stays degraded, lookups go to the database
		logrus.Warnf("failed to open connection to cache: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Prepare Repository
	idGen := mysqlRepo.NewIDGenerator()
	bloomRepo := myRedis.NewRedisBloomRepo(client, cfg.BloomFilterSize)
	threadDBRepo := mysqlRepo.NewThreadDBRepository(db, idGen)
	threadRepo := repository.NewThreadRepository(threadDBRepo, bloomRepo)
	commentRepo := mysqlRepo.NewCommentRepository(db, idGen)
	replyRepo := mysqlRepo.NewReplyRepository(db, idGen)
	likeRepo := mysqlRepo.NewCommentLikeRepository(db, idGen)

	if err := threadRepo.InitBloomFilter(ctx); err != nil {
		logrus.Warnf("failed to init bloom filter, serving without it: %v", err)
	}

	// Build service Layer
	checker := validity.NewChecker(threadRepo, commentRepo, replyRepo)
	threadSvc := thread.NewService(threadRepo, commentRepo, replyRepo, likeRepo)
	commentSvc := comment.NewService(commentRepo, checker)
	replySvc := reply.NewService(replyRepo, checker)
	likeSvc := like.NewService(likeRepo, checker)

	threadHandler := rest.NewThreadHandler(threadSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	replyHandler := rest.NewReplyHandler(replySvc)
	likeHandler := rest.NewLikeHandler(likeSvc)

	// prepare gin
	route := gin.New()
	route.Use(gin.Recovery())
	route.Use(middleware.NewMetrics(prometheus.DefaultRegisterer).Handler())
	route.Use(middleware.CORS(cfg.CORSAllowedOrigin))
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))
	route.NoRoute(rest.NotFound)

	// Register routes
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	route.GET("/threads/:threadId", threadHandler.GetThreadByID)
	route.GET("/threads/:threadId/comments/:commentId/replies", replyHandler.GetReplies)

	authorized := route.Group("/")
	authorized.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		authorized.POST("/threads", threadHandler.PostThread)
		authorized.POST("/threads/:threadId/comments", commentHandler.PostComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", commentHandler.DeleteComment)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", replyHandler.PostReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", replyHandler.DeleteReply)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", likeHandler.PutLike)
	}

	// Start Server
	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("listen: %s", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}
	logrus.Info("Server exiting")
}

func openDatabase(dsn string) (*gorm.DB, error) {
	var err error
	for i := range dbMaxRetry {
		var db *gorm.DB
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			err = ping(db)
			if err == nil {
				return db, nil
			}
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return err
	}
	return nil
}
