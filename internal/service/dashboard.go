package service

import (
	"context"
	"fmt"

	"github.com/Rangggase/Holy-Grail/internal/domain"
)

// Spend thresholds (rupiah) for the five customer tiers.
const (
	diamondThreshold  = 10_000_000
	platinumThreshold = 4_500_000
	goldThreshold     = 3_000_000
	silverThreshold   = 1_000_000
)

func segmentFor(totalSpend int64) string {
	switch {
	case totalSpend >= diamondThreshold:
		return "Diamond"
	case totalSpend >= platinumThreshold:
		return "Platinum"
	case totalSpend >= goldThreshold:
		return "Gold"
	case totalSpend >= silverThreshold:
		return "Silver"
	default:
		return "Bronze"
	}
}

func (s *Service) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	summary, err := s.repo.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return summary, nil
}

// CustomerSegments returns per-customer spend with the five-tier label
// attached, highest spenders first.
func (s *Service) CustomerSegments(ctx context.Context) ([]domain.CustomerSpend, error) {
	spend, err := s.repo.GetCustomerSpend(ctx)
	if err != nil {
		return nil, fmt.Errorf("customer segments: %w", err)
	}
	for i := range spend {
		spend[i].Segment = segmentFor(spend[i].TotalSpend)
	}
	return spend, nil
}

// HourlySales returns the full 24-hour revenue series, zero-filled.
func (s *Service) HourlySales(ctx context.Context) ([]domain.HourlyRevenue, error) {
	byHour, err := s.repo.GetHourlyRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("hourly sales: %w", err)
	}
	series := make([]domain.HourlyRevenue, 24)
	for h := 0; h < 24; h++ {
		series[h] = domain.HourlyRevenue{Hour: h, Revenue: byHour[h]}
	}
	return series, nil
}

// TopMenu returns the five best sellers in each display bucket.
func (s *Service) TopMenu(ctx context.Context) (*domain.TopMenu, error) {
	food, err := s.repo.GetTopMenu(ctx, false, topMenuLimit)
	if err != nil {
		return nil, fmt.Errorf("top food: %w", err)
	}
	drinks, err := s.repo.GetTopMenu(ctx, true, topMenuLimit)
	if err != nil {
		return nil, fmt.Errorf("top drinks: %w", err)
	}
	if food == nil {
		food = []domain.MenuSales{}
	}
	if drinks == nil {
		drinks = []domain.MenuSales{}
	}
	return &domain.TopMenu{Food: food, Drinks: drinks}, nil
}

// Transactions lists joined order rows newest first, optionally filtered
// by category.
func (s *Service) Transactions(ctx context.Context, category string, page, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = defaultTrxLimit
	} else if limit > maxTrxLimit {
		limit = maxTrxLimit
	}
	if page < 1 {
		page = 1
	}
	trx, err := s.repo.GetTransactions(ctx, category, limit, (page-1)*limit)
	if err != nil {
		return nil, fmt.Errorf("transactions: %w", err)
	}
	return trx, nil
}
