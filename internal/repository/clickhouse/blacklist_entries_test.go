package clickhouse

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
)

func TestRepository_BlacklistEntries_QueryError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	ctx := context.Background()
	queryErr := errors.New("query failed")

	mockConn := NewMockConn(ctrl)
	mockMetrics := NewMockMetrics(ctrl)

	gomock.InOrder(
		mockConn.EXPECT().
			Query(ctx, gomock.Any()).
			Return(nil, queryErr),
		mockMetrics.EXPECT().
			Observe("blacklist_entries", gomock.Any(), gomock.AssignableToTypeOf(time.Time{})).
			Do(func(_ string, err error, _ time.Time) {
				if !errors.Is(err, queryErr) {
					t.Fatalf("unexpected error propagated to metrics: %v", err)
				}
			}),
	)

	repo := &Repository{conn: mockConn, metrics: mockMetrics}
	_, err := repo.BlacklistEntries(ctx)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "query blacklist entries") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewRepository_RequiresDSN(t *testing.T) {
	t.Parallel()

	if _, err := NewRepository("", nil); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
	if _, err := NewRepository("://not-a-dsn", nil); err == nil {
		t.Fatalf("expected error for malformed dsn")
	}
}
