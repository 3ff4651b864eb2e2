package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

//go:generate mockgen -source=stats.go -destination=stats_mock.go -package=handlers

// StatsReader aggregates a user's ledger for charting.
type StatsReader interface {
	Weekly(ctx context.Context, userID uuid.UUID) (*models.Stats, error)
	Monthly(ctx context.Context, userID uuid.UUID) (*models.Stats, error)
	Yearly(ctx context.Context, userID uuid.UUID) (*models.Stats, error)
}

// NewStatsHandler returns an HTTP handler for grouped bar chart statistics.
// @Summary Income and expense statistics
// @Tags stats
// @Produce json
// @Param period path string true "weekly, monthly or yearly"
// @Success 200 {object} models.Response{data=models.Stats}
// @Failure 400 {object} models.Response "Unknown period"
// @Router /stats/{period} [get]
// @Security BearerAuth
func NewStatsHandler(svc StatsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var aggregate func(ctx context.Context, userID uuid.UUID) (*models.Stats, error)
		switch chi.URLParam(r, "period") {
		case "weekly":
			aggregate = svc.Weekly
		case "monthly":
			aggregate = svc.Monthly
		case "yearly":
			aggregate = svc.Yearly
		default:
			writeFailure(w, http.StatusBadRequest, "period must be weekly, monthly or yearly")
			return
		}

		stats, err := aggregate(r.Context(), uid)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, stats)
	}
}
