package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/anirudhxmishra/swipe-hire-app/internal/api/dto"
	"github.com/anirudhxmishra/swipe-hire-app/internal/api/model"
	"github.com/google/uuid"
)

// Placeholder blobs written for every synced job so the frontend never sees
// a missing or null value for these three fields.
const (
	emptyBenefits        = "[]"
	emptyQualifications  = "[]"
	emptyFullDescription = "{}"
)

// JobStore is the persistence capability the sync service needs
type JobStore interface {
	UpsertJob(ctx context.Context, job *model.Job) error
}

// EventPublisher emits application events for downstream consumers
type EventPublisher interface {
	Publish(ctx context.Context, body []byte, contentType string) error
}

// Service converts loosely-typed external job records into normalized Job
// rows and upserts them.
type Service struct {
	store     JobStore
	publisher EventPublisher
	logger    *slog.Logger
}

// NewService creates a new sync Service. publisher may be nil, in which case
// no events are emitted.
func NewService(store JobStore, publisher EventPublisher, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

// syncedEvent is the jobs.synced payload published after a successful batch
type syncedEvent struct {
	Event    string    `json:"event"`
	Synced   int       `json:"synced"`
	SyncedAt time.Time `json:"synced_at"`
}

// Sync upserts each record in order and returns the number written. Records
// are processed sequentially with no batch transaction: the first storage
// failure aborts the remaining records, and earlier writes stay committed.
func (s *Service) Sync(ctx context.Context, records []dto.JobSyncRecord) (int, error) {
	now := time.Now()
	synced := 0

	for _, rec := range records {
		job := normalize(rec, now)

		if err := s.store.UpsertJob(ctx, job); err != nil {
			return synced, fmt.Errorf("failed to upsert job %s: %w", job.ID, err)
		}
		synced++
	}

	s.logger.Info("Job sync complete", slog.Int("synced", synced))

	s.publishSynced(ctx, synced, now)

	return synced, nil
}

// normalize maps an external record onto a Job row. A missing id gets a
// fresh random identifier; the three blob fields are always the fixed
// placeholders regardless of the source record.
func normalize(rec dto.JobSyncRecord, now time.Time) *model.Job {
	id := rec.ID
	if id == "" {
		id = uuid.New().String()
	}

	return &model.Job{
		ID:              id,
		Title:           optional(rec.Title),
		Company:         optional(rec.Company),
		Location:        optional(rec.Location),
		ApplyURL:        optional(rec.Link),
		Benefits:        emptyBenefits,
		Qualifications:  emptyQualifications,
		FullDescription: emptyFullDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// publishSynced emits a jobs.synced event. Publishing is best-effort; a
// broker failure never fails the sync itself.
func (s *Service) publishSynced(ctx context.Context, synced int, at time.Time) {
	if s.publisher == nil {
		return
	}

	body, err := json.Marshal(syncedEvent{
		Event:    "jobs.synced",
		Synced:   synced,
		SyncedAt: at,
	})
	if err != nil {
		s.logger.Error("Failed to encode sync event", slog.Any("error", err))
		return
	}

	if err := s.publisher.Publish(ctx, body, "application/json"); err != nil {
		s.logger.Warn("Failed to publish sync event", slog.Any("error", err))
	}
}
