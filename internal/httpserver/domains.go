package httpserver

import (
	"context"
	"time"

	authHTTP "github.com/KN-gho/timebudget/internal/auth/delivery/http"
	"github.com/KN-gho/timebudget/internal/auth/session"
	authUC "github.com/KN-gho/timebudget/internal/auth/usecase"
	diaryHTTP "github.com/KN-gho/timebudget/internal/diary/delivery/http"
	diarySQLite "github.com/KN-gho/timebudget/internal/diary/repository/sqlite"
	diaryUC "github.com/KN-gho/timebudget/internal/diary/usecase"
	"github.com/KN-gho/timebudget/internal/middleware"
	scheduleHTTP "github.com/KN-gho/timebudget/internal/schedule/delivery/http"
	scheduleSQLite "github.com/KN-gho/timebudget/internal/schedule/repository/sqlite"
	scheduleUC "github.com/KN-gho/timebudget/internal/schedule/usecase"
	taskHTTP "github.com/KN-gho/timebudget/internal/task/delivery/http"
	taskSQLite "github.com/KN-gho/timebudget/internal/task/repository/sqlite"
	taskUC "github.com/KN-gho/timebudget/internal/task/usecase"
	userHTTP "github.com/KN-gho/timebudget/internal/user/delivery/http"
	userSQLite "github.com/KN-gho/timebudget/internal/user/repository/sqlite"
	userUC "github.com/KN-gho/timebudget/internal/user/usecase"
)

// registerDomainRoutes wires every domain under /api/v1:
//  1. Repository:   repo := <domain>SQLite.New(srv.db, srv.l)
//  2. UseCase:      uc := <domain>UC.New(repo, ..., srv.l)
//  3. HTTP Handler: h := <domain>HTTP.New(srv.l, uc)
//  4. Routes:       <domain>HTTP.RegisterRoutes(api, h, mw)
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	// Session store + middleware gate all domain routes.
	sessions := session.NewStore(time.Duration(srv.sessionTTL) * time.Hour)
	mw := middleware.New(srv.l, sessions)

	// Shared user repository: settings feed the task pressure report and
	// the region feeds the weather forecast.
	userRepo := userSQLite.New(srv.db, srv.l)

	// Auth domain
	aUC := authUC.New(srv.googleOAuth, sessions, userRepo, srv.l)
	authHTTP.RegisterRoutes(api, authHTTP.New(srv.l, aUC))
	srv.l.Infof(ctx, "Auth domain registered")

	// User domain
	uUC := userUC.New(userRepo, srv.l)
	userHTTP.RegisterRoutes(api, userHTTP.New(srv.l, uUC), mw)
	srv.l.Infof(ctx, "User domain registered")

	// Task domain
	taskRepo := taskSQLite.New(srv.db, srv.l)
	tUC := taskUC.New(taskRepo, userRepo, srv.ai, srv.resolver, srv.calc, srv.l)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tUC), mw)
	srv.l.Infof(ctx, "Task domain registered")

	// Diary domain
	diaryRepo := diarySQLite.New(srv.db, srv.l)
	dUC := diaryUC.New(diaryRepo, userRepo, srv.l)
	diaryHTTP.RegisterRoutes(api, diaryHTTP.New(srv.l, dUC), mw)
	srv.l.Infof(ctx, "Diary domain registered")

	// Schedule domain
	scheduleRepo := scheduleSQLite.New(srv.db, srv.l)
	sUC := scheduleUC.New(scheduleRepo, userRepo, srv.weather, srv.ai, srv.l)
	scheduleHTTP.RegisterRoutes(api, scheduleHTTP.New(srv.l, sUC), mw)
	srv.l.Infof(ctx, "Schedule domain registered")

	return nil
}
