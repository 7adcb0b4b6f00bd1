package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	alertHTTP "rockguard-srv/internal/alert/delivery/http"
	alertPostgre "rockguard-srv/internal/alert/repository/postgre"
	alertUsecase "rockguard-srv/internal/alert/usecase"
	"rockguard-srv/internal/middleware"
)

func (srv *HTTPServer) setupAlertDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := alertPostgre.New(srv.postgresDB, srv.l, srv.encrypter)

	uc := alertUsecase.New(repo, srv.smsClient, srv.l, alertUsecase.Config{
		MaxConcurrentBatches: srv.config.SMS.MaxConcurrentBatches,
		DispatchTimeout:      time.Duration(srv.config.Alerting.DispatchTimeout) * time.Second,
	})

	handler := alertHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Alert domain registered")
	return nil
}
