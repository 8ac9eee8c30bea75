package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lyepez-glitch/VitalCore/internal/core/auth"
	"github.com/lyepez-glitch/VitalCore/internal/core/config"
	"github.com/lyepez-glitch/VitalCore/internal/realtime"
	"github.com/lyepez-glitch/VitalCore/internal/transport/http/handler"
	mdw "github.com/lyepez-glitch/VitalCore/internal/transport/http/middleware"
)

type Deps struct {
	Log     *zap.Logger
	Cfg     *config.Config
	Vitals  *handler.VitalsHandler
	Auth    *handler.AuthHandler
	Hub     *realtime.Hub          // nil disables /ws
	GraphQL http.Handler           // nil disables /graphql
	JWTer   *auth.JWTer
}

// NewAPIEngine assembles the single public engine: REST routes, the typed
// query endpoint, the websocket channel, and the operational routes.
func NewAPIEngine(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
	)
	r.Use(corsFor(d.Cfg.App.FrontendOrigin))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Welcome to the VitalCore API")
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// reads are open
	r.GET("/cells", d.Vitals.GetCellLifespans)
	r.GET("/cellss", d.Vitals.ListCells) // legacy overlapping route
	r.GET("/genes", d.Vitals.ListGenes)

	// The historical surface shipped without token verification on writes.
	// auth.protect_writes opts into the labeled authorization extension.
	writes := r.Group("")
	if d.Cfg.Auth.ProtectWrites {
		writes.Use(mdw.AuthJWT(d.JWTer))
	}
	writes.PUT("/cells", d.Vitals.BulkUpdateLifespans)

	r.POST("/signup", d.Auth.Signup)
	r.POST("/login", d.Auth.Login)

	if d.GraphQL != nil {
		r.POST("/graphql", gin.WrapH(d.GraphQL))
		r.GET("/graphql", gin.WrapH(d.GraphQL)) // GraphiQL
	}
	if d.Hub != nil {
		r.GET("/ws", realtime.ServeWS(d.Hub, d.Cfg.App.FrontendOrigin, d.Log))
	}

	return r
}

func corsFor(origin string) gin.HandlerFunc {
	if origin == "" {
		return cors.Default()
	}
	return cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
