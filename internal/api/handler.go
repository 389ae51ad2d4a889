package api

import (
	"github.com/SherClockHolmes/webpush-go"

	"ceu-checkin-backend/internal/notification"
	"ceu-checkin-backend/internal/report"
	"ceu-checkin-backend/internal/schedule"
	"ceu-checkin-backend/internal/store"
)

// Handler holds shared dependencies for API handlers. Everything is injected
// at construction; the handlers keep no state of their own.
type Handler struct {
	store    store.Store
	engine   *report.Engine
	schedule *schedule.Schedule
	webpush  *webpush.Options
	pool     *notification.WorkerPool
}

// NewHandler creates a new API handler.
func NewHandler(
	s store.Store,
	engine *report.Engine,
	sched *schedule.Schedule,
	webpushOptions *webpush.Options,
	pool *notification.WorkerPool,
) *Handler {
	return &Handler{
		store:    s,
		engine:   engine,
		schedule: sched,
		webpush:  webpushOptions,
		pool:     pool,
	}
}
