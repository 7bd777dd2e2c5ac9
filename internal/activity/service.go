package activity

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gestor/internal/agenda"
	"gestor/internal/jobs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")
var ErrInvalidType = errors.New("invalid activity type")

var validTypes = map[string]struct{}{
	"note": {}, "email": {}, "call": {}, "task": {}, "todo": {}, "meeting": {},
}

// Service is the activity provider: it feeds the agenda core its source
// collections and owns the writes.
type Service struct {
	DB *gorm.DB
}

type ListInput struct {
	Limit int
	Tag   string
}

// List returns the most recent activities as agenda records, newest
// first. The limit is capped; list views filter and paginate client-side
// over this window.
func (s *Service) List(ctx context.Context, in ListInput) ([]agenda.RawActivity, error) {
	limit := in.Limit
	if limit <= 0 || limit > 500 {
		limit = 200
	}

	q := s.DB.WithContext(ctx).Model(&Activity{})
	if in.Tag != "" {
		q = q.Where("? = any(tags)", in.Tag)
	}

	var rows []Activity
	if err := q.Order("created_at desc").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]agenda.RawActivity, 0, len(rows))
	for _, r := range rows {
		out = append(out, toRaw(r))
	}
	return out, nil
}

// Tasks returns the task table as agenda records.
func (s *Service) Tasks(ctx context.Context) ([]agenda.RawActivity, error) {
	var rows []Task
	if err := s.DB.WithContext(ctx).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]agenda.RawActivity, 0, len(rows))
	for _, t := range rows {
		created := t.CreatedAt
		out = append(out, agenda.RawActivity{
			ID:        t.ID,
			Title:     t.Title,
			Type:      agenda.TypeKey(t.Type),
			IsTask:    true,
			DueDate:   t.DueDate,
			CreatedAt: &created,
		})
	}
	return out, nil
}

// Collections is the client-side split of one activity fetch into the
// subsets the calendar aggregates separately. Emails and calls have no
// calendar presence and are dropped here.
type Collections struct {
	Notes    []agenda.RawActivity
	Meetings []agenda.RawActivity
	Tasks    []agenda.RawActivity
}

// Split buckets activities by their effective type.
func Split(items []agenda.RawActivity) Collections {
	var c Collections
	for _, a := range items {
		switch agenda.EffectiveType(a) {
		case agenda.TypeNote:
			c.Notes = append(c.Notes, a)
		case agenda.TypeMeeting:
			c.Meetings = append(c.Meetings, a)
		case agenda.TypeTask, agenda.TypeTodo:
			c.Tasks = append(c.Tasks, a)
		}
	}
	return c
}

type CreateActivityInput struct {
	Type        string
	Subject     string
	Description string
	Owner       string
	DueDate     *time.Time
}

func (s *Service) CreateActivity(ctx context.Context, in CreateActivityInput) (uint64, error) {
	if _, ok := validTypes[in.Type]; !ok {
		return 0, ErrInvalidType
	}

	a := Activity{
		Type:        in.Type,
		IsTask:      in.Type == "task" || in.Type == "todo",
		Subject:     in.Subject,
		Description: in.Description,
		Owner:       in.Owner,
		Tags:        pq.StringArray(ExtractTags(in.Description)),
		DueDate:     in.DueDate,
		CreatedAt:   time.Now(),
	}
	if err := s.DB.WithContext(ctx).Create(&a).Error; err != nil {
		return 0, err
	}
	return a.ID, nil
}

type CreateTaskInput struct {
	Title    string
	Type     string
	Priority string
	DueDate  *time.Time
}

// CreateTask inserts a task and, when it has a due date, enqueues the
// reminder job in the same transaction so the two can never diverge.
func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (uint64, error) {
	var taskID uint64

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t := Task{
			Title:     in.Title,
			Type:      in.Type,
			Status:    "pending",
			Priority:  in.Priority,
			DueDate:   in.DueDate,
			CreatedAt: time.Now(),
		}
		if t.Priority == "" {
			t.Priority = "normal"
		}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
		taskID = t.ID

		if in.DueDate != nil {
			payload, _ := json.Marshal(map[string]any{"task_id": taskID})
			j := jobs.Job{
				Type:    jobs.TypeTaskReminder,
				Payload: payload,
				RunAt:   *in.DueDate,
				Status:  "PENDING",
			}
			if err := tx.Create(&j).Error; err != nil {
				return err
			}
		}
		return nil
	})

	return taskID, err
}

// CompleteTask marks a task done. Pending reminder jobs are left in
// place; the worker sees the final status and drops them.
func (s *Service) CompleteTask(ctx context.Context, id uint64) error {
	res := s.DB.WithContext(ctx).Model(&Task{}).Where("id = ?", id).Update("status", "done")
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func toRaw(a Activity) agenda.RawActivity {
	created := a.CreatedAt
	return agenda.RawActivity{
		ID:          a.ID,
		Subject:     a.Subject,
		Description: a.Description,
		Type:        agenda.TypeKey(a.Type),
		IsTask:      a.IsTask,
		DueDate:     a.DueDate,
		CreatedAt:   &created,
		Owner:       a.Owner,
	}
}
