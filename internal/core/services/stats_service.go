package services

import (
	"context"

	"chapa-dashboard/internal/adapters/persistence/repositories"
	"chapa-dashboard/internal/core/domain"
	"chapa-dashboard/internal/pkg/latency"
)

// Stats derivation constants
const (
	// avgTransactionsPerUser is the placeholder heuristic the stats card
	// was built on. The real count is reported on the analytics payload.
	avgTransactionsPerUser = 25

	// monthlyRevenueRate estimates monthly revenue as a share of the
	// total balance held on the platform.
	monthlyRevenueRate = 0.025
)

// StatsService recomputes dashboard aggregates from the store on each call
type StatsService struct {
	users        repositories.UserRepository
	transactions repositories.TransactionRepository
	sim          *latency.Simulator
}

// NewStatsService creates a new stats service
func NewStatsService(
	users repositories.UserRepository,
	transactions repositories.TransactionRepository,
	sim *latency.Simulator,
) *StatsService {
	return &StatsService{users: users, transactions: transactions, sim: sim}
}

// SystemStats derives the admin dashboard snapshot: active regular users,
// total balances held, the per-user transaction heuristic and the revenue
// estimate. Nothing is cached; every call re-reads the store.
func (s *StatsService) SystemStats(ctx context.Context) (*domain.SystemStats, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.SystemStats{}
	for _, u := range users {
		stats.TotalPayments += u.Balance
		if u.IsActive && u.Role == domain.RoleUser {
			stats.ActiveUsers++
		}
	}
	stats.TotalTransactions = int64(len(users)) * avgTransactionsPerUser
	stats.MonthlyRevenue = stats.TotalPayments * monthlyRevenueRate

	return stats, nil
}

// MonthlyStat is one point of the analytics trend series
type MonthlyStat struct {
	Month        string  `json:"month"`
	Transactions int64   `json:"transactions"`
	Revenue      float64 `json:"revenue"`
	Users        int64   `json:"users"`
}

// RegionStat is one row of the regional breakdown
type RegionStat struct {
	Region       string  `json:"region"`
	Transactions int64   `json:"transactions"`
	Revenue      float64 `json:"revenue"`
}

// Analytics is the analytics page payload: canned demo series plus the
// real transaction volume held in the store
type Analytics struct {
	Monthly           []MonthlyStat `json:"monthly"`
	Regions           []RegionStat  `json:"regions"`
	TransactionVolume int64         `json:"transaction_volume"`
}

// monthlyTrend is the fixed demo series behind the analytics charts
var monthlyTrend = []MonthlyStat{
	{Month: "Jan", Transactions: 450, Revenue: 12500, Users: 89},
	{Month: "Feb", Transactions: 580, Revenue: 15200, Users: 134},
	{Month: "Mar", Transactions: 620, Revenue: 18700, Users: 187},
	{Month: "Apr", Transactions: 750, Revenue: 22100, Users: 245},
	{Month: "May", Transactions: 890, Revenue: 28900, Users: 312},
	{Month: "Jun", Transactions: 950, Revenue: 32400, Users: 398},
	{Month: "Jul", Transactions: 1100, Revenue: 38200, Users: 456},
	{Month: "Aug", Transactions: 1250, Revenue: 42800, Users: 523},
	{Month: "Sep", Transactions: 1180, Revenue: 39600, Users: 487},
	{Month: "Oct", Transactions: 1320, Revenue: 45200, Users: 567},
	{Month: "Nov", Transactions: 1450, Revenue: 51300, Users: 634},
	{Month: "Dec", Transactions: 1680, Revenue: 58700, Users: 721},
}

var regionBreakdown = []RegionStat{
	{Region: "North America", Transactions: 2500, Revenue: 89500},
	{Region: "Europe", Transactions: 1800, Revenue: 67200},
	{Region: "Asia Pacific", Transactions: 3200, Revenue: 95800},
	{Region: "Latin America", Transactions: 1200, Revenue: 34500},
	{Region: "Africa", Transactions: 800, Revenue: 28900},
}

// Analytics returns the analytics page payload
func (s *StatsService) Analytics(ctx context.Context) (*Analytics, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	volume, err := s.transactions.Count(ctx)
	if err != nil {
		return nil, err
	}

	monthly := make([]MonthlyStat, len(monthlyTrend))
	copy(monthly, monthlyTrend)
	regions := make([]RegionStat, len(regionBreakdown))
	copy(regions, regionBreakdown)

	return &Analytics{
		Monthly:           monthly,
		Regions:           regions,
		TransactionVolume: volume,
	}, nil
}
