package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"ceu-checkin-backend/config"
	"ceu-checkin-backend/internal/mw"
	"ceu-checkin-backend/internal/notification"
	"ceu-checkin-backend/internal/report"
	"ceu-checkin-backend/internal/schedule"
	"ceu-checkin-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(
	s store.Store,
	engine *report.Engine,
	sched *schedule.Schedule,
	webpushOptions *webpush.Options,
	pool *notification.WorkerPool,
	serverCfg *config.ServerConfig,
) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, engine, sched, webpushOptions, pool)

	rateLimiter := mw.RateLimiter(rate.Limit(serverCfg.RateLimitPerSec), serverCfg.RateLimitBurst)

	cacheTTL := time.Duration(serverCfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/checkin", handler.PostCheckin)

		api.POST("/attendees", handler.PostAttendee)
		api.GET("/attendees", handler.GetAttendees)
		api.GET("/attendees/:badge_id/credits", handler.GetAttendeeCredits)

		// Report projections are recomputed from the full scan log on each
		// request; the cache middleware keeps repeated dashboard refreshes
		// cheap.
		reports := api.Group("/reports")
		{
			reports.GET("/punch-summary", caching, handler.GetPunchSummary)
			reports.GET("/credits", caching, handler.GetCreditReport)
			reports.POST("/credits", handler.SaveCreditReport)
			reports.GET("/scan-listing", caching, handler.GetScanListing)
		}

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
