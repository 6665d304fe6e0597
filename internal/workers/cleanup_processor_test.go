package workers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/kasir-rental/internal/workers"
	"github.com/ammerola/kasir-rental/test/helpers"
	"github.com/ammerola/kasir-rental/test/mocks"
)

func TestCleanupProcessor_CleanupJournal(t *testing.T) {
	now := time.Date(2026, 5, 21, 3, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		retention time.Duration
		setup     func(*mocks.MockCheckoutJournal)
		wantErr   error
		retried   bool
	}{
		{
			name:      "deletes_rows_past_retention",
			retention: 90 * 24 * time.Hour,
			setup: func(j *mocks.MockCheckoutJournal) {
				j.EXPECT().
					DeleteOlderThan(gomock.Any(), time.Date(2026, 2, 20, 3, 0, 0, 0, time.UTC)).
					Return(int64(12), nil)
			},
		},
		{
			name:      "database_errors_are_retried",
			retention: 24 * time.Hour,
			setup: func(j *mocks.MockCheckoutJournal) {
				j.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection reset"))
			},
			retried: true,
		},
		{
			name:      "non_positive_retention_is_not_retried",
			retention: 0,
			setup:     func(*mocks.MockCheckoutJournal) {},
			wantErr:   asynq.SkipRetry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			journal := mocks.NewMockCheckoutJournal(ctrl)
			tt.setup(journal)

			p := workers.NewCleanupProcessor(journal, tt.retention, helpers.TestLogger())
			p.SetClock(func() time.Time { return now })

			err := p.CleanupJournal(context.Background(), workers.NewJournalCleanupTask())

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.retried:
				require.Error(t, err)
				assert.NotErrorIs(t, err, asynq.SkipRetry)
			default:
				assert.NoError(t, err)
			}
		})
	}
}
