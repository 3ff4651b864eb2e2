package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
)

// Bar colors of the grouped chart.
const (
	WeeklyIncomeColor  = "#008000"
	MonthlyIncomeColor = "#a3e635"
	ExpenseColor       = "#ef4444"
)

type bucket struct {
	key     string
	label   string
	income  float64
	expense float64
}

// StatsService aggregates a user's ledger into fixed time buckets.
type StatsService struct {
	finder TransactionFinder
	loc    *time.Location
	now    func() time.Time
}

// NewStatsService creates a StatsService bucketing calendar dates in loc (UTC when nil).
func NewStatsService(finder TransactionFinder, loc *time.Location) *StatsService {
	if loc == nil {
		loc = time.UTC
	}
	return &StatsService{finder: finder, loc: loc, now: time.Now}
}

// Weekly buckets the last seven days, oldest first, by calendar date.
func (s *StatsService) Weekly(ctx context.Context, userID uuid.UUID) (*models.Stats, error) {
	today := s.now().In(s.loc)

	buckets := make([]*bucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		buckets = append(buckets, &bucket{key: day.Format(time.DateOnly), label: day.Format("Mon")})
	}

	return s.aggregate(ctx, userID, today.AddDate(0, 0, -7), today, buckets, time.DateOnly, WeeklyIncomeColor)
}

// Monthly buckets the last twelve months, oldest first, labelled "Jan 06".
func (s *StatsService) Monthly(ctx context.Context, userID uuid.UUID) (*models.Stats, error) {
	today := s.now().In(s.loc)
	firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, s.loc)

	buckets := make([]*bucket, 0, 12)
	for i := 11; i >= 0; i-- {
		month := firstOfMonth.AddDate(0, -i, 0)
		label := month.Format("Jan 06")
		buckets = append(buckets, &bucket{key: label, label: label})
	}

	return s.aggregate(ctx, userID, today.AddDate(0, -12, 0), today, buckets, "Jan 06", MonthlyIncomeColor)
}

// Yearly is not aggregated; it always returns empty sequences.
func (s *StatsService) Yearly(ctx context.Context, userID uuid.UUID) (*models.Stats, error) {
	return &models.Stats{Stats: []models.StatsEntry{}, Transactions: []models.Transaction{}}, nil
}

func (s *StatsService) aggregate(
	ctx context.Context,
	userID uuid.UUID,
	from, to time.Time,
	buckets []*bucket,
	keyLayout, incomeColor string,
) (*models.Stats, error) {
	txns, err := s.finder.Find(ctx, models.TransactionFilter{UserID: userID, From: &from, To: &to})
	if err != nil {
		logger.Log.Errorw("failed to fetch transactions for stats", "userID", userID, "error", err)
		return nil, storeErr(err)
	}

	index := make(map[string]*bucket, len(buckets))
	for _, b := range buckets {
		index[b.key] = b
	}

	for _, t := range txns {
		b, ok := index[t.Date.In(s.loc).Format(keyLayout)]
		if !ok {
			continue
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			b.income += t.Amount
		case models.TransactionTypeExpense:
			b.expense += t.Amount
		}
	}

	entries := make([]models.StatsEntry, 0, 2*len(buckets))
	for _, b := range buckets {
		entries = append(entries,
			models.StatsEntry{Value: b.income, Label: b.label, BucketColor: incomeColor},
			models.StatsEntry{Value: b.expense, BucketColor: ExpenseColor},
		)
	}

	return &models.Stats{Stats: entries, Transactions: txns}, nil
}
