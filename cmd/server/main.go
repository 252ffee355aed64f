package main

import (
	"flag"
	"log/slog"
	"os"

	"mood-diary/internal/config"
	"mood-diary/internal/handler"
	"mood-diary/internal/logger"
	"mood-diary/internal/middleware"
	"mood-diary/internal/model"
	"mood-diary/internal/mood"
	"mood-diary/internal/reconcile"
	"mood-diary/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	middleware.SetSecret(cfg.Auth.JWTSecret)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Activity{}, &model.DiaryEntry{}); err != nil {
		slog.Error("db migrate failed", "err", err)
		os.Exit(1)
	}

	vocab := mood.DefaultVocabulary()

	authSvc := service.NewAuthService(db)
	diarySvc := service.NewDiaryService(db, vocab)
	activitySvc := service.NewActivityService(db)
	statsSvc := service.NewStatsService(db)

	engine := reconcile.New(
		service.NewReconcileStore(diarySvc, activitySvc),
		reconcile.Config{
			WindowDays:         cfg.Reconcile.WindowDays,
			Materialization:    reconcile.Materialization(cfg.Reconcile.Materialization),
			OnMissingYesterday: reconcile.PromptPolicy(cfg.Reconcile.OnMissingYesterday),
		},
	)

	authH := handler.NewAuthHandler(authSvc)
	diaryH := handler.NewDiaryHandler(diarySvc, engine)
	activityH := handler.NewActivityHandler(activitySvc)
	trendsH := handler.NewTrendsHandler(statsSvc)
	metaH := handler.NewMetaHandler(vocab)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/register", authH.Register)
	r.POST("/api/login", authH.Login)

	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/me", authH.Me)
	api.GET("/meta", metaH.Meta)

	api.GET("/diaries", diaryH.List)
	api.POST("/diaries", diaryH.Create)
	api.POST("/diaries/reconcile", diaryH.Reconcile)
	api.GET("/diaries/:id", diaryH.Get)
	api.PUT("/diaries/:id", diaryH.Update)
	api.DELETE("/diaries/:id", diaryH.Delete)

	api.GET("/activities", activityH.List)
	api.POST("/activities", activityH.Create)
	api.PUT("/activities/:id/status", activityH.UpdateStatus)
	api.DELETE("/activities/:id", activityH.Delete)

	api.GET("/trends/insights", trendsH.Insights)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
