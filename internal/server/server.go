package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tipaniya/hisaab/internal/audit"
	auditdomain "github.com/tipaniya/hisaab/internal/audit/domain"
	"github.com/tipaniya/hisaab/internal/auth"
	authdomain "github.com/tipaniya/hisaab/internal/auth/domain"
	"github.com/tipaniya/hisaab/internal/auth/session"
	"github.com/tipaniya/hisaab/internal/config"
	"github.com/tipaniya/hisaab/internal/entry"
	entrydomain "github.com/tipaniya/hisaab/internal/entry/domain"
	"github.com/tipaniya/hisaab/internal/farmer"
	farmerdomain "github.com/tipaniya/hisaab/internal/farmer/domain"
	"github.com/tipaniya/hisaab/internal/invoice"
	invoicedomain "github.com/tipaniya/hisaab/internal/invoice/domain"
	obslogger "github.com/tipaniya/hisaab/internal/observability/logger"
	obsmetrics "github.com/tipaniya/hisaab/internal/observability/metrics"
	"github.com/tipaniya/hisaab/internal/payment"
	paymentdomain "github.com/tipaniya/hisaab/internal/payment/domain"
	"github.com/tipaniya/hisaab/internal/providers/pdf"
	"github.com/tipaniya/hisaab/internal/servicetype"
	servicetypedomain "github.com/tipaniya/hisaab/internal/servicetype/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(obsmetrics.NewHTTPMetrics),
	fx.Provide(config.NewReportConfigHolder),
	fx.Provide(registerGin),
	audit.Module,
	session.Module,
	auth.Module,
	farmer.Module,
	servicetype.Module,
	entry.Module,
	payment.Module,
	invoice.Module,
	pdf.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(log, httpMetrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	db         *gorm.DB
	authsvc    authdomain.Service
	sessions   *session.Manager
	auditSvc   auditdomain.Service
	farmerSvc  farmerdomain.Service
	serviceSvc servicetypedomain.Service
	entrySvc   entrydomain.Service
	paymentSvc paymentdomain.Service
	invoiceSvc invoicedomain.Service
	receipts   pdf.Provider
	report     *config.ReportConfigHolder
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	DB         *gorm.DB
	Authsvc    authdomain.Service
	Sessions   *session.Manager
	AuditSvc   auditdomain.Service
	FarmerSvc  farmerdomain.Service
	ServiceSvc servicetypedomain.Service
	EntrySvc   entrydomain.Service
	PaymentSvc paymentdomain.Service
	InvoiceSvc invoicedomain.Service
	Receipts   pdf.Provider
	Report     *config.ReportConfigHolder
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		db:         p.DB,
		authsvc:    p.Authsvc,
		sessions:   p.Sessions,
		auditSvc:   p.AuditSvc,
		farmerSvc:  p.FarmerSvc,
		serviceSvc: p.ServiceSvc,
		entrySvc:   p.EntrySvc,
		paymentSvc: p.PaymentSvc,
		invoiceSvc: p.InvoiceSvc,
		receipts:   p.Receipts,
		report:     p.Report,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.AuthRequired(), s.Me)
	auth.POST("/create-user", s.AuthRequired(), s.RequireAdmin(), s.CreateUser)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/", s.AuthRequired())

	// -------- Farmers --------
	api.GET("/farmers", s.ListFarmers)
	api.POST("/farmers", s.CreateFarmer)
	api.GET("/farmers/:id", s.GetFarmerByID)

	// -------- Services --------
	api.GET("/services", s.ListServices)
	api.POST("/services", s.RequireAdmin(), s.CreateService)

	// -------- Entries --------
	api.POST("/entries", s.CreateEntry)
	api.GET("/entries/user/:userId", s.ListEntriesByUser)
	api.GET("/entries/farmer/:farmerId/user/:userId", s.ListEntriesByFarmerAndUser)

	// -------- Payments --------
	api.POST("/payments", s.CreatePayment)
	api.GET("/payments/farmer/:farmerId", s.ListPaymentsByFarmer)
	api.GET("/payments/admin/:adminId", s.ListPaymentsByAdmin)
	api.GET("/payments/:id/receipt", s.GetPaymentReceipt)

	// -------- Invoices --------
	api.GET("/invoices/farmer/:farmerId", s.GetFarmerInvoice)
}
