package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/orthoflow/orthoflow/internal/audit"
	"github.com/orthoflow/orthoflow/internal/config"
	"github.com/orthoflow/orthoflow/internal/document"
	documentdomain "github.com/orthoflow/orthoflow/internal/document/domain"
	"github.com/orthoflow/orthoflow/internal/document/storage"
	"github.com/orthoflow/orthoflow/internal/observability"
	obsmiddleware "github.com/orthoflow/orthoflow/internal/observability/logger"
	obsmetrics "github.com/orthoflow/orthoflow/internal/observability/metrics"
	obstracing "github.com/orthoflow/orthoflow/internal/observability/tracing"
	"github.com/orthoflow/orthoflow/internal/order"
	orderdomain "github.com/orthoflow/orthoflow/internal/order/domain"
	"github.com/orthoflow/orthoflow/internal/payer"
	payerdomain "github.com/orthoflow/orthoflow/internal/payer/domain"
	"github.com/orthoflow/orthoflow/internal/product"
	productdomain "github.com/orthoflow/orthoflow/internal/product/domain"
	"github.com/orthoflow/orthoflow/internal/providers/pdf"
	"github.com/orthoflow/orthoflow/internal/vendors"
	vendordomain "github.com/orthoflow/orthoflow/internal/vendors/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	audit.Module,
	document.Module,
	pdf.Module,
	vendors.Module,
	product.Module,
	payer.Module,
	order.Module,
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(*Server) {}),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
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
	engine    *gin.Engine
	cfg       config.Config
	db        *gorm.DB
	genID     *snowflake.Node
	orderSvc  orderdomain.Service
	vendorSvc vendordomain.Service
	prodSvc   productdomain.Service
	payerSvc  payerdomain.Service
	docRepo   documentdomain.Repository
	docStore  storage.Store
}

type ServerParams struct {
	fx.In

	Gin       *gin.Engine
	Cfg       config.Config
	DB        *gorm.DB
	GenID     *snowflake.Node
	OrderSvc  orderdomain.Service
	VendorSvc vendordomain.Service
	ProdSvc   productdomain.Service
	PayerSvc  payerdomain.Service
	DocRepo   documentdomain.Repository
	DocStore  storage.Store
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:    p.Gin,
		cfg:       p.Cfg,
		db:        p.DB,
		genID:     p.GenID,
		orderSvc:  p.OrderSvc,
		vendorSvc: p.VendorSvc,
		prodSvc:   p.ProdSvc,
		payerSvc:  p.PayerSvc,
		docRepo:   p.DocRepo,
		docStore:  p.DocStore,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- Orders --------
	api.GET("/orders", s.ListOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrderByID)
	api.PUT("/orders/:id", s.EditOrder)
	api.POST("/orders/:id/submit", s.SubmitOrder)
	api.POST("/orders/:id/status", s.ChangeOrderStatus)
	api.POST("/orders/:id/documents", s.RegenerateOrderDocument)

	// -------- Catalog --------
	api.GET("/vendors", s.ListVendors)
	api.POST("/vendors", s.CreateVendor)
	api.GET("/vendors/:id", s.GetVendorByID)
	api.DELETE("/vendors/:id", s.DeleteVendor)

	api.GET("/products", s.ListProducts)
	api.POST("/products", s.CreateProduct)
	api.GET("/products/:id", s.GetProductByID)
	api.PATCH("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.GET("/payers", s.ListPayers)
	api.POST("/payers", s.CreatePayer)
	api.GET("/payers/:id", s.GetPayerByID)
	api.GET("/payers/:id/fees", s.ListPayerFees)
	api.PUT("/payers/:id/fees", s.SetPayerFee)

	// -------- Documents --------
	api.GET("/documents/:id/download", s.DownloadDocument)
}
