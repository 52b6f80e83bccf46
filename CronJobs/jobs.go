package CronJobs

import (
	"fmt"
	"log"

	"Eventy/Models"
	"Eventy/Workflow"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// PendingDigest logs a daily summary of how many open requests each role is
// sitting on, so stalled approvals surface in the morning logs.
type PendingDigest struct {
	cronScheduler  *cron.Cron
	db             *gorm.DB
	runImmediately bool
	jobID          cron.EntryID
}

// NewPendingDigest creates the digest job against the given connection
func NewPendingDigest(db *gorm.DB, runImmediately bool) *PendingDigest {
	return &PendingDigest{
		cronScheduler:  cron.New(cron.WithSeconds()),
		db:             db,
		runImmediately: runImmediately,
	}
}

// Start schedules the digest to run daily at 8:00 AM
func (p *PendingDigest) Start() error {
	var err error
	p.jobID, err = p.cronScheduler.AddFunc("0 0 8 * * *", func() {
		log.Println("Running scheduled pending-requests digest")
		p.runDigest()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	p.cronScheduler.Start()

	if p.runImmediately {
		p.runDigest()
	}
	return nil
}

// Stop terminates the digest scheduler
func (p *PendingDigest) Stop() {
	if p.cronScheduler != nil {
		p.cronScheduler.Stop()
		log.Println("Pending digest scheduler stopped")
	}
}

func (p *PendingDigest) runDigest() {
	type roleCount struct {
		AssignedTo string
		Total      int64
	}
	var rows []roleCount
	err := p.db.Model(&Models.Request{}).
		Where("status <> ?", Workflow.StatusRejected).
		Select("assigned_to, count(*) as total").
		Group("assigned_to").
		Scan(&rows).Error
	if err != nil {
		log.Printf("Pending digest failed: %v", err)
		return
	}
	if len(rows) == 0 {
		log.Println("Pending digest: no open requests")
		return
	}
	for _, row := range rows {
		log.Printf("Pending digest: %d request(s) waiting on %s", row.Total, row.AssignedTo)
	}
}
