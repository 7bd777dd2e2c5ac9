package jobs

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"gorm.io/gorm"
)

type Worker struct {
	ID   string
	Repo *Repo
	DB   *gorm.DB
}

type taskRow struct {
	ID      uint64     `gorm:"column:id"`
	Title   string     `gorm:"column:title"`
	Status  string     `gorm:"column:status"`
	DueDate *time.Time `gorm:"column:due_date"`
}

func (taskRow) TableName() string { return "tasks" }

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(800 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			job, err := w.Repo.Claim(w.ID)
			if err != nil {
				log.Printf("worker claim error: %v\n", err)
				continue
			}
			if job == nil {
				continue
			}
			w.handle(job)
		}
	}
}

func (w *Worker) handle(job *Job) {
	switch job.Type {
	case TypeTaskReminder:
		w.handleTaskReminder(job)
	default:
		_ = w.Repo.MarkFailed(job.ID, "unknown job type")
	}
}

func (w *Worker) handleTaskReminder(job *Job) {
	type payload struct {
		TaskID uint64 `json:"task_id"`
	}
	var p payload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		_ = w.Repo.MarkFailed(job.ID, "bad payload")
		return
	}

	var t taskRow
	if err := w.DB.Where("id=?", p.TaskID).First(&t).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			_ = w.Repo.MarkDone(job.ID)
			return
		}
		w.retry(job, "db read error")
		return
	}

	// Completed tasks and tasks whose due date was cleared need no reminder.
	if t.Status == "done" || t.DueDate == nil {
		_ = w.Repo.MarkDone(job.ID)
		return
	}

	log.Printf("[REMINDER] task=%d title=%q due=%s\n", t.ID, t.Title, t.DueDate.Format(time.RFC3339))
	_ = w.Repo.MarkDone(job.ID)
}

func (w *Worker) retry(job *Job, errMsg string) {
	attempts := job.Attempts + 1
	if attempts >= job.MaxAttempts {
		_ = w.Repo.MarkFailed(job.ID, errMsg)
		return
	}

	sec := math.Min(math.Pow(2, float64(attempts)), 600)
	next := time.Now().Add(time.Duration(sec) * time.Second)

	_ = w.Repo.RetryLater(job.ID, attempts, next, errMsg)
}
