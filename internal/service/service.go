package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Rangggase/Holy-Grail/internal/cache"
	"github.com/Rangggase/Holy-Grail/internal/domain"
	"github.com/Rangggase/Holy-Grail/internal/metrics"
	"github.com/Rangggase/Holy-Grail/internal/recommend"
	"github.com/Rangggase/Holy-Grail/internal/repository"
	"github.com/google/uuid"
)

const (
	customerSearchLimit = 5
	topMenuLimit        = 5
	defaultTrxLimit     = 50
	maxTrxLimit         = 200
)

// PaymentCash requires the paid amount to cover the total; the other
// methods settle exactly.
const PaymentCash = "Tunai"

type Service struct {
	repo   *repository.Repository
	cache  *cache.Cache
	bundle recommend.Bundle
	now    func() time.Time
}

// NewService wires the POS service. bundle may be nil: recommendations then
// run rule-only. now is the clock seam; nil means time.Now.
func NewService(repo *repository.Repository, c *cache.Cache, bundle recommend.Bundle, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, cache: c, bundle: bundle, now: now}
}

type RecommendRequest struct {
	CustomerID   int64
	CustomerName string
	Weather      domain.Weather
	GroupSize    domain.GroupSize
}

type RecommendResponse struct {
	Menu      domain.RankedMenu
	CacheHit  bool
	Customer  domain.Customer
	Context   domain.Context
	TimeLabel string
}

// Recommend resolves the customer, builds the request context from the
// clock and runs the pipeline, with a per-customer-per-context cache in
// front. Cache errors are logged and ignored; a recommendation must never
// fail because redis did.
func (s *Service) Recommend(ctx context.Context, req RecommendRequest) (*RecommendResponse, error) {
	start := time.Now()
	defer func() {
		metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	}()
	metrics.RecommendTotal.Inc()
	if s.bundle == nil {
		metrics.ModelFallbackTotal.Inc()
	}

	hour := s.now().Hour()
	rctx := domain.Context{
		Weather:   req.Weather,
		GroupSize: req.GroupSize,
		TimeOfDay: recommend.BucketFor(hour),
		Hour:      hour,
	}

	cust := domain.Customer{Name: req.CustomerName}
	if req.CustomerID > 0 {
		found, err := s.repo.GetUserByID(ctx, req.CustomerID)
		if err != nil {
			return nil, err
		}
		cust = *found
	}

	resp := &RecommendResponse{
		Customer:  cust,
		Context:   rctx,
		TimeLabel: recommend.DisplayLabel(hour),
	}

	if menu, found, err := s.cache.Get(ctx, cust.ID, rctx); err != nil {
		log.Printf("[service] cache get error for customer %d: %v", cust.ID, err)
	} else if found {
		metrics.RecommendCacheHits.Inc()
		resp.Menu = menu
		resp.CacheHit = true
		return resp, nil
	}

	catalog, err := s.repo.ListMenu(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	resp.Menu = recommend.Recommend(catalog, cust, rctx, s.bundle)

	if cacheErr := s.cache.Set(ctx, cust.ID, rctx, resp.Menu); cacheErr != nil {
		log.Printf("[service] cache set error for customer %d: %v", cust.ID, cacheErr)
	}
	return resp, nil
}

// ListMenu exposes the catalog for the menu book view.
func (s *Service) ListMenu(ctx context.Context) ([]domain.MenuItem, error) {
	items, err := s.repo.ListMenu(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return items, nil
}

// SearchCustomers is the fuzzy member lookup. Zero matches means the name
// belongs to a new customer.
func (s *Service) SearchCustomers(ctx context.Context, name string) ([]domain.Customer, error) {
	found, err := s.repo.SearchUsersByName(ctx, name, customerSearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	return found, nil
}

type CartLine struct {
	MenuID int64
	Qty    int
}

type CheckoutRequest struct {
	CustomerID   int64
	CustomerName string
	Weather      domain.Weather
	GroupSize    domain.GroupSize
	Method       string
	Paid         int64
	Items        []CartLine
}

// Checkout prices the cart from the stored menu, registers the customer
// when new, appends one order row per cart line with the purchase context,
// and returns the receipt. The customer's cached menus are invalidated
// best-effort afterwards.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*domain.Receipt, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	ids := make([]int64, 0, len(req.Items))
	for _, line := range req.Items {
		ids = append(ids, line.MenuID)
	}
	menuItems, err := s.repo.GetMenuItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch cart items: %w", err)
	}

	var total int64
	lines := make([]domain.OrderLine, 0, len(req.Items))
	for _, line := range req.Items {
		item, ok := menuItems[line.MenuID]
		if !ok {
			return nil, fmt.Errorf("%w: menu_id %d", domain.ErrMenuItemNotFound, line.MenuID)
		}
		qty := line.Qty
		if qty < 1 {
			qty = 1
		}
		sub := int64(qty) * item.Price
		total += sub
		lines = append(lines, domain.OrderLine{
			MenuID:   item.ID,
			Name:     item.Name,
			Qty:      qty,
			Price:    item.Price,
			Subtotal: sub,
		})
	}

	paid := req.Paid
	if req.Method == PaymentCash {
		if paid < total {
			return nil, domain.ErrInsufficientPayment
		}
	} else {
		// QRIS and card settle exactly.
		paid = total
	}

	custID := req.CustomerID
	custName := req.CustomerName
	if custID > 0 {
		cust, err := s.repo.GetUserByID(ctx, custID)
		if err != nil {
			return nil, err
		}
		custName = cust.Name
	} else {
		custID, err = s.repo.CreateUser(ctx, custName)
		if err != nil {
			return nil, fmt.Errorf("register customer: %w", err)
		}
	}

	ts := s.now()
	rctx := domain.Context{
		Weather:   req.Weather,
		GroupSize: req.GroupSize,
		TimeOfDay: recommend.BucketFor(ts.Hour()),
		Hour:      ts.Hour(),
	}
	if err := s.repo.InsertOrders(ctx, custID, lines, rctx, ts); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	metrics.CheckoutTotal.Inc()

	if err := s.cache.ClearCustomerCache(ctx, custID); err != nil {
		log.Printf("[service] cache invalidation error for customer %d: %v", custID, err)
	}

	return &domain.Receipt{
		ID:           uuid.NewString(),
		CustomerID:   custID,
		CustomerName: custName,
		Items:        lines,
		Total:        total,
		Paid:         paid,
		Change:       paid - total,
		Method:       req.Method,
		Timestamp:    ts,
	}, nil
}
