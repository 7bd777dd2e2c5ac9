package remote

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"gestor/internal/agenda"
	"gestor/internal/config"

	"gorm.io/gorm"
)

// Syncer refreshes the configured remote feeds into the remote_events
// cache. The HTTP API never talks to the remote side directly; it reads
// whatever the last refresh left in the cache.
type Syncer struct {
	DB     *gorm.DB
	Client *http.Client
	Cal    config.CalendarConfig
}

func NewSyncer(db *gorm.DB, cal config.CalendarConfig) *Syncer {
	return &Syncer{
		DB:     db,
		Client: &http.Client{Timeout: 15 * time.Second},
		Cal:    cal,
	}
}

// Refresh fetches every configured feed and replaces its cached rows.
// Skipped entirely when the integration is not connected. Per-feed
// failures are logged and do not abort the other feeds.
func (s *Syncer) Refresh(ctx context.Context) error {
	st := CheckToken(s.Cal.Token, time.Now())
	if !st.Connected() {
		log.Printf("calendar sync skipped: hasToken=%v expired=%v\n", st.HasToken, st.IsExpired)
		return nil
	}

	now := time.Now()
	windowStart := now.AddDate(0, 0, -30)
	windowEnd := now.AddDate(0, 0, s.Cal.HorizonDays)

	for _, feed := range s.Cal.Feeds {
		body, err := s.fetchFeed(ctx, feed.URL)
		if err != nil {
			log.Printf("calendar sync: fetch %s failed: %v\n", feed.ID, err)
			continue
		}
		events, err := ParseFeed(body, windowStart, windowEnd)
		if err != nil {
			log.Printf("calendar sync: parse %s failed: %v\n", feed.ID, err)
			continue
		}
		if err := s.store(ctx, feed.ID, events, now); err != nil {
			log.Printf("calendar sync: store %s failed: %v\n", feed.ID, err)
			continue
		}
		log.Printf("calendar sync: %s refreshed, %d events\n", feed.ID, len(events))
	}
	return nil
}

func (s *Syncer) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// store swaps the cached rows of one source atomically.
func (s *Syncer) store(ctx context.Context, sourceID string, events []agenda.RemoteCalendarEvent, syncedAt time.Time) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("source_id = ?", sourceID).Delete(&RemoteEvent{}).Error; err != nil {
			return err
		}
		for _, ev := range events {
			row := fromAgenda(sourceID, ev, syncedAt)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Events returns the cached remote events when the integration is
// connected, and an empty collection otherwise. The aggregation treats
// an empty collection as a valid input, so a disconnected or failing
// integration degrades to a calendar without remote items.
func (s *Syncer) Events(ctx context.Context) ([]agenda.RemoteCalendarEvent, error) {
	if !CheckToken(s.Cal.Token, time.Now()).Connected() {
		return nil, nil
	}

	var rows []RemoteEvent
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]agenda.RemoteCalendarEvent, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToAgenda())
	}
	return out, nil
}

// StatusNow reports the current connection status for the API.
func (s *Syncer) StatusNow() Status {
	return CheckToken(s.Cal.Token, time.Now())
}
