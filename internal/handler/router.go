package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "referral-credits/docs"
	"referral-credits/internal/handler/api"
	"referral-credits/internal/handler/graphql"
	"referral-credits/internal/handler/middleware"
	"referral-credits/internal/infra/metrics"
	"referral-credits/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, referralHandler *api.ReferralHandler, graphqlHandler *graphql.Handler) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, referralHandler, graphqlHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, referralHandler *api.ReferralHandler, graphqlHandler *graphql.Handler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine.Group("/graphql"), []route{
		{Method: http.MethodPost, Path: "", Handler: graphqlHandler.Post},
		{Method: http.MethodGet, Path: "", Handler: graphqlHandler.Get},
	})

	apiGroup := engine.Group("/api")
	{
		referrals := apiGroup.Group("/referrals")
		addRoutes(referrals, []route{
			{Method: http.MethodGet, Path: "/customers/:customerId/summary", Handler: referralHandler.GetSummary},
			{Method: http.MethodPost, Path: "/send", Handler: referralHandler.SendCode},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Handle(r.Method, r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
