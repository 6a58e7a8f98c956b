package services

import (
	"context"
	"log"

	"booklend/internal/adapters/persistence/models"
	"booklend/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	bookRepo repositories.BookRepository
	cron     *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(bookRepo repositories.BookRepository) *CronService {
	return &CronService{
		bookRepo: bookRepo,
		cron:     cron.New(),
	}
}

// Start schedules and launches all jobs
func (s *CronService) Start() {
	// Nightly catalog sweep at 03:30
	if _, err := s.cron.AddFunc("30 3 * * *", s.ReconcileBookStatus); err != nil {
		log.Printf("❌ Failed to schedule catalog sweep: %v", err)
		return
	}

	s.cron.Start()
	log.Println("🚀 CronService started")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}

// ReconcileBookStatus repairs books whose stored status has drifted
// from the quantity it must be derived from (out-of-band edits).
func (s *CronService) ReconcileBookStatus() {
	ctx := context.Background()

	books, err := s.bookRepo.List(ctx)
	if err != nil {
		log.Printf("❌ Catalog sweep query error: %v", err)
		return
	}

	fixed := 0
	for _, book := range books {
		want := models.StatusForQuantity(book.Quantity)
		if book.Status == want {
			continue
		}
		book.Status = want
		if err := s.bookRepo.Update(ctx, book); err != nil {
			log.Printf("❌ Catalog sweep update error for book %d: %v", book.ID, err)
			continue
		}
		fixed++
	}

	if fixed > 0 {
		log.Printf("✅ Catalog sweep repaired %d book status rows", fixed)
	}
}
