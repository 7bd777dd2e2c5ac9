package db

import (
	"fmt"

	"gestor/internal/activity"
	"gestor/internal/jobs"
	"gestor/internal/remote"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&activity.Activity{},
		&activity.Task{},
		&remote.RemoteEvent{},
		&jobs.Job{},
	); err != nil {
		return err
	}

	// Tag filter (GIN for text[])
	if err := gdb.Exec(`create index if not exists idx_activities_tags on activities using gin (tags);`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_activities_created on activities(created_at desc);`,
		`create index if not exists idx_activities_due on activities(due_date) where due_date is not null;`,
		`create index if not exists idx_tasks_due on tasks(due_date) where due_date is not null;`,
		`create index if not exists idx_remote_events_source on remote_events(source_id);`,
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
