package service

import (
	"context"
	"log"
	"time"

	"kostify-backend/internal/models"
	"kostify-backend/internal/repository"
)

// overdueGrace is how long past the monthly due day an unpaid tenant is
// tolerated before being marked overdue.
const overdueGrace = 3 * 24 * time.Hour

type WorkerService struct {
	tenantRepo *repository.TenantRepository
	interval   time.Duration
}

func NewWorkerService(tenantRepo *repository.TenantRepository) *WorkerService {
	return &WorkerService{
		tenantRepo: tenantRepo,
		interval:   time.Hour,
	}
}

// Start begins the background worker that sweeps unpaid tenants into the
// overdue state once their monthly due day has passed
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("Background worker started - overdue sweep every %v", w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Background worker stopped")
			return
		case <-ticker.C:
			w.sweepOverdue(time.Now().UTC())
		}
	}
}

func (w *WorkerService) sweepOverdue(now time.Time) {
	tenants, err := w.tenantRepo.ListUnpaid()
	if err != nil {
		log.Printf("Error fetching unpaid tenants: %v", err)
		return
	}

	for _, tenant := range tenants {
		if !IsOverdue(tenant.CheckInDate, now) {
			continue
		}
		if err := w.tenantRepo.UpdatePaymentStatus(tenant.ID, models.TenantOverdue); err != nil {
			log.Printf("Error marking tenant %s overdue: %v", tenant.ID, err)
			continue
		}
		log.Printf("Tenant %s marked overdue", tenant.ID)
	}
}

// IsOverdue reports whether rent is overdue as of now. The due day each
// month is the check-in day-of-month; days past the end of a short month
// roll forward per time.Date normalization.
func IsOverdue(checkIn, now time.Time) bool {
	due := time.Date(now.Year(), now.Month(), checkIn.Day(), 0, 0, 0, 0, now.Location())
	if due.After(now) {
		// Due day not reached yet this month; last month's cycle applies.
		due = due.AddDate(0, -1, 0)
	}
	return now.Sub(due) > overdueGrace
}
