package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tbourn/holistiq/internal/repo"
)

// newTestStore returns a Store over a private in-memory SQLite database.
func newTestStore(t *testing.T) *repo.Store {
	t.Helper()
	db, err := repo.OpenSQLite(fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", uuid.NewString()))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	s := repo.NewStore(repo.NewSQLBackend(db), time.Second)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

// stepClock returns a clock that advances one second per call.
func stepClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	n := 0
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		n++
		return start.Add(time.Duration(n) * time.Second)
	}
}

var t0 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
