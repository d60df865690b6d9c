package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bizdash-core/internal/core/domain"
	"bizdash-core/internal/core/ports/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDispatchStats_CountersAndHistory(t *testing.T) {
	s := NewDispatchStats(3, nil, newTestLogger())
	ctx := context.Background()
	now := time.Now()

	s.MarkSent(domain.KindAudio, now)
	s.Record(ctx, domain.DispatchResult{ID: uuid.New(), WebhookType: domain.KindAudio, Success: true})
	s.Record(ctx, domain.DispatchResult{ID: uuid.New(), WebhookType: domain.KindAudio, Outcome: domain.OutcomeInvalid})

	st := s.Stats()
	require.Len(t, st, len(domain.AllWebhookKinds()))
	assert.Equal(t, int64(1), st[domain.KindAudio].Sent)
	assert.Equal(t, int64(1), st[domain.KindAudio].Success)
	assert.Equal(t, int64(1), st[domain.KindAudio].Errors)
	require.NotNil(t, st[domain.KindAudio].LastSentAt)
	assert.True(t, now.Equal(*st[domain.KindAudio].LastSentAt))

	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		r := domain.DispatchResult{ID: uuid.New(), WebhookType: domain.KindBooks}
		ids = append(ids, r.ID)
		s.Record(ctx, r)
	}
	h := s.History()
	require.Len(t, h, 3)
	assert.Equal(t, []uuid.UUID{ids[4], ids[3], ids[2]}, []uuid.UUID{h[0].ID, h[1].ID, h[2].ID})
}

func TestDispatchStats_UnknownKindNotCounted(t *testing.T) {
	s := NewDispatchStats(5, nil, newTestLogger())
	s.MarkSent("comics", time.Now())
	s.Record(context.Background(), domain.DispatchResult{WebhookType: "comics"})

	_, ok := s.Stats()["comics"]
	assert.False(t, ok)
	assert.Len(t, s.History(), 1)
}

func TestDispatchStats_Reset(t *testing.T) {
	s := NewDispatchStats(5, nil, newTestLogger())
	s.MarkSent(domain.KindNotes, time.Now())
	s.Record(context.Background(), domain.DispatchResult{WebhookType: domain.KindNotes, Success: true})

	s.Reset()
	assert.Equal(t, domain.EndpointStats{}, s.Stats()[domain.KindNotes])
	assert.Len(t, s.History(), 1)
}

func TestDispatchStats_PersistsToRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDispatchLogRepository(ctrl)
	s := NewDispatchStats(5, repo, newTestLogger())

	r := domain.DispatchResult{ID: uuid.New(), WebhookType: domain.KindNotes}
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got *domain.DispatchResult) error {
		assert.Equal(t, r.ID, got.ID)
		return nil
	})
	s.Record(context.Background(), r)

	// A failing sink is logged and does not affect the in-memory record.
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	s.Record(context.Background(), domain.DispatchResult{ID: uuid.New(), WebhookType: domain.KindNotes})
	assert.Len(t, s.History(), 2)
	assert.Equal(t, int64(2), s.Stats()[domain.KindNotes].Errors)
}

func TestDispatchStats_RecentPrefersRepository(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kind := domain.KindBooks
	stored := []domain.DispatchResult{{ID: uuid.New(), WebhookType: kind}}

	repo := mocks.NewMockDispatchLogRepository(ctrl)
	repo.EXPECT().ListRecent(gomock.Any(), &kind, 5).Return(stored, nil)

	s := NewDispatchStats(5, repo, newTestLogger())
	assert.Equal(t, stored, s.Recent(context.Background(), &kind, 0))
}

func TestDispatchStats_RecentFallsBackToMemory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDispatchLogRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	repo.EXPECT().ListRecent(gomock.Any(), gomock.Any(), 2).Return(nil, errors.New("db down"))

	s := NewDispatchStats(5, repo, newTestLogger())
	ctx := context.Background()
	s.Record(ctx, domain.DispatchResult{WebhookType: domain.KindAudio})
	s.Record(ctx, domain.DispatchResult{WebhookType: domain.KindBooks})
	s.Record(ctx, domain.DispatchResult{WebhookType: domain.KindAudio})

	audio := domain.KindAudio
	got := s.Recent(ctx, &audio, 2)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, domain.KindAudio, r.WebhookType)
	}
}
