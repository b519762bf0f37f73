package services

import (
	"context"
	"log"
	"time"

	"leadtrack/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderService logs a morning summary of leads whose follow-up date
// has come due. It only reports; it never mutates lead state.
type ReminderService struct {
	leadRepo repositories.LeadRepository
	cron     *cron.Cron
}

// NewReminderService creates a new reminder service
func NewReminderService(leadRepo repositories.LeadRepository) *ReminderService {
	return &ReminderService{
		leadRepo: leadRepo,
		cron:     cron.New(),
	}
}

// Start schedules the daily sweep at 08:30
func (s *ReminderService) Start() {
	_, err := s.cron.AddFunc("30 8 * * *", s.sweep)
	if err != nil {
		log.Printf("❌ Failed to schedule follow-up reminders: %v", err)
		return
	}

	s.cron.Start()
	log.Println("🚀 Follow-up reminder service started (daily 08:30)")
}

// Stop stops the scheduler
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Follow-up reminder service stopped")
}

func (s *ReminderService) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	leads, err := s.leadRepo.ListDueFollowUps(ctx)
	if err != nil {
		log.Printf("❌ Follow-up sweep query error: %v", err)
		return
	}

	if len(leads) == 0 {
		log.Println("✅ Follow-up sweep: nothing due")
		return
	}

	log.Printf("🔔 %d lead(s) due for follow-up", len(leads))
	for _, lead := range leads {
		name := lead.ClientID
		if lead.Client != nil {
			name = lead.Client.FullName
		}
		log.Printf("🔔 Lead %s (%s, status %s) due since %s, assigned to %s",
			lead.ID, name, lead.Status,
			lead.NextFollowUp.Format("2006-01-02"), lead.AssignedTo)
	}
}
