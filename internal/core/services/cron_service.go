package services

import (
	"log"

	"chapa-dashboard/internal/adapters/persistence/repositories"
	"chapa-dashboard/internal/config"

	"github.com/robfig/cron/v3"
)

// CronService schedules the periodic demo-data reset: shared demo
// deployments re-seed the store on a fixed schedule so every visitor finds
// the same five accounts.
type CronService struct {
	cron  *cron.Cron
	store *repositories.Store
	cfg   *config.Config
}

// NewCronService creates a new cron service
func NewCronService(store *repositories.Store, cfg *config.Config) *CronService {
	return &CronService{
		cron:  cron.New(),
		store: store,
		cfg:   cfg,
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() {
	if !s.cfg.Demo.ResetEnabled {
		log.Println("⏭️ Demo reset schedule disabled")
		return
	}

	_, err := s.cron.AddFunc(s.cfg.Demo.ResetSchedule, s.resetDemoData)
	if err != nil {
		log.Printf("❌ Failed to schedule demo reset: %v", err)
		return
	}

	s.cron.Start()
	log.Printf("🚀 Demo reset scheduled: %s", s.cfg.Demo.ResetSchedule)
}

// Stop stops the scheduler, waiting for a running job to finish
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Cron service stopped")
}

// resetDemoData re-seeds users and transactions
func (s *CronService) resetDemoData() {
	if err := config.SeedDemoData(s.store); err != nil {
		log.Printf("❌ Demo reset failed: %v", err)
		return
	}
	log.Println("✅ Demo data reset to seed state")
}
