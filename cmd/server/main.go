package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"prepwise/internal/cache"
	"prepwise/internal/config"
	"prepwise/internal/repository"
	"prepwise/internal/service"
	"prepwise/internal/transport/rest"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()
	ctx := context.Background()

	graderCfg := config.DefaultGraderConfig()
	if graderCfg.IsEnabled() {
		logger.Info("grader configured", zap.String("model", graderCfg.Model))
	} else {
		logger.Warn("GEMINI_API_KEY not set, voice and text rounds use fallback scores")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logger.Info("connected to MongoDB", zap.String("db", cfg.MongoDB))

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal("failed to ping Redis", zap.Error(err))
	}
	logger.Info("connected to Redis", zap.String("addr", cfg.RedisAddr))

	// Repositories
	templateRepo := repository.NewTemplateRepo(db)
	interviewRepo := repository.NewInterviewRepo(db)
	roundFeedbackRepo := repository.NewRoundFeedbackRepo(db)
	companyFeedbackRepo := repository.NewCompanyFeedbackRepo(db)
	questionBankRepo := repository.NewQuestionBankRepo(db)

	// Caches
	feedbackCache := cache.NewFeedbackCache(rdb)

	// Services
	authSvc := service.NewAuthService()
	templateSvc := service.NewTemplateService(templateRepo)
	bankSvc := service.NewQuestionBankService(questionBankRepo)
	grader := service.NewGraderService(graderCfg, cfg.Scoring.FallbackVoiceScore, logger)
	runner := service.NewRunnerService(config.DefaultRunnerConfig())
	scoreSvc := service.NewScoreService(runner, grader)
	aggregateSvc := service.NewAggregateService(templateRepo, roundFeedbackRepo, companyFeedbackRepo, feedbackCache, logger)
	feedbackSvc := service.NewFeedbackService(templateRepo, interviewRepo, roundFeedbackRepo, aggregateSvc, cfg.Scoring, logger)
	interviewSvc := service.NewInterviewService(interviewRepo, templateRepo)
	submissionSvc := service.NewSubmissionService(interviewRepo, templateRepo, questionBankRepo, scoreSvc, feedbackSvc, interviewSvc, logger)

	container := &rest.Container{
		AuthService:         authSvc,
		TemplateService:     templateSvc,
		QuestionBankService: bankSvc,
		InterviewService:    interviewSvc,
		SubmissionService:   submissionSvc,
		FeedbackService:     feedbackSvc,
		AggregateService:    aggregateSvc,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
