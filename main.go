package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"linkus-backend/internal/attendance"
	"linkus-backend/internal/platform/auth"
	"linkus-backend/internal/platform/config"
	"linkus-backend/internal/platform/db"
	"linkus-backend/internal/platform/reqid"
	"linkus-backend/internal/platform/sheets"
	"linkus-backend/internal/roster"
	"linkus-backend/internal/session"
	"linkus-backend/internal/skill"
)

func main() {
	// .env는 로컬 개발 편의용. 없으면 그냥 넘어간다.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] .env loaded")
	}

	// 설정 읽기
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		panic(err)
	}

	log.Printf("[INFO] mode:%s\n", cfg.Mode)

	if cfg.Mode != "dev" && cfg.Mode != "release" {
		fmt.Println("Usage: go run main.go [dev|release]")
		return
	}

	ctx := context.Background()

	sheetsClient, err := sheets.NewClient(ctx)
	if err != nil {
		panic(err)
	}

	rosterSvc := roster.NewService(
		roster.NewStore(sheetsClient, cfg.Sheets.RosterSpreadsheetID, cfg.Sheets.RosterSheet))
	attSvc := attendance.NewService(
		attendance.NewStore(sheetsClient, cfg.Sheets.LedgerSpreadsheetID, cfg.Sheets.LedgerSheet))

	// 세션 저장소: DB 설정이 있으면 MySQL (다중 인스턴스 대비), 없으면 인메모리
	var sessions session.Store = session.NewMemory()
	var authSvc *auth.Service
	if cfg.Database != nil {
		conn, err := db.Connect(*cfg.Database)
		if err != nil {
			panic(err)
		}
		defer conn.Close()
		log.Printf("[INFO] connected to DB: %s", cfg.Database.DBName)

		sessions = session.NewMySQL(conn)
		if cfg.Admin.JWTSecret != "" {
			authSvc = auth.NewService(conn, []byte(cfg.Admin.JWTSecret))
		}
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), reqid.Middleware())
	_ = r.SetTrustedProxies(nil)

	if cfg.Mode == "dev" {
		// CORS (개발 중에만 필요)
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length", reqid.Header},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowCredentials: true,
		}))
	}

	// 헬스
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "Linkus skill server OK") })

	// 카카오 스킬
	skill.RegisterRoutes(r, rosterSvc, attSvc, sessions)

	// 관리자 API (DB + secret 설정 시에만)
	if authSvc != nil {
		admin := r.Group("/admin")
		auth.RegisterRoutes(admin, authSvc)
		guarded := admin.Group("", auth.RequireAuth(authSvc.Secret()))
		if lister, ok := sessions.(session.Lister); ok {
			session.RegisterAdminRoutes(guarded, lister)
		}
	}

	srv := &http.Server{
		Addr:    cfg.Listen,
		Handler: r,
	}

	go func() {
		log.Printf("[INFO] listening on %s", cfg.Listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
