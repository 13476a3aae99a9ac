package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testResults() []*batch.ResultRow {
	return []*batch.ResultRow{
		{
			Filename: "card1.jpg",
			Status:   batch.StatusSuccess,
			Duration: 2.5,
			Data: batch.Fields{
				{Name: "Titel", Value: "Sinfonie Nr. 5"},
				{Name: "Komponist", Value: "Beethoven"},
			},
			EditedData: map[string]string{},
		},
		{
			Filename:   "card2.jpg",
			Status:     batch.StatusFailed,
			Error:      "unreadable scan",
			EditedData: map[string]string{},
		},
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.SaveBatch(ctx, "Bestand 1941", testResults())
	if err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}
	if rec.ID == "" {
		t.Error("expected generated batch ID")
	}

	got, err := s.GetBatch(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetBatch failed: %v", err)
	}
	if got.Name != "Bestand 1941" {
		t.Errorf("expected name Bestand 1941, got %s", got.Name)
	}
	if len(got.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got.Results))
	}
	if got.Results[0].Data.Value("Komponist") != "Beethoven" {
		t.Error("field data did not survive the round trip")
	}
	if names := got.Results[0].Data.Names(); names[0] != "Titel" || names[1] != "Komponist" {
		t.Errorf("field order not preserved: %v", names)
	}
	if got.Results[1].Error != "unreadable scan" {
		t.Error("error message lost")
	}
	if got.Results[1].EditedData == nil {
		t.Error("EditedData should never be nil after load")
	}
}

func TestBatchRecord_Stats(t *testing.T) {
	rec := &BatchRecord{Results: testResults()}

	stats := rec.Stats()
	if stats.FileCount != 2 {
		t.Errorf("FileCount = %d, want 2", stats.FileCount)
	}
	if stats.FailedCount != 1 {
		t.Errorf("FailedCount = %d, want 1", stats.FailedCount)
	}
	if stats.TotalDuration != 2.5 {
		t.Errorf("TotalDuration = %v, want 2.5", stats.TotalDuration)
	}
}

func TestStore_GetBatch_NotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.GetBatch(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListBatches(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.SaveBatch(ctx, "B1", testResults()); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}
	if _, err := s.SaveBatch(ctx, "B2", testResults()[:1]); err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	sums, err := s.ListBatches(ctx)
	if err != nil {
		t.Fatalf("ListBatches failed: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(sums))
	}
	counts := map[string]int{}
	for _, sum := range sums {
		counts[sum.Name] = sum.FileCount
	}
	if counts["B1"] != 2 || counts["B2"] != 1 {
		t.Errorf("unexpected file counts: %v", counts)
	}
}

func TestStore_UpdateCell(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.SaveBatch(ctx, "B1", testResults())
	if err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	t.Run("stores correction", func(t *testing.T) {
		if err := s.UpdateCell(ctx, rec.ID, "card1.jpg", "Titel", "Fünfte Sinfonie"); err != nil {
			t.Fatalf("UpdateCell failed: %v", err)
		}
		got, err := s.GetBatch(ctx, rec.ID)
		if err != nil {
			t.Fatalf("GetBatch failed: %v", err)
		}
		if batch.Resolve(got.Results[0], "Titel") != "Fünfte Sinfonie" {
			t.Error("correction not applied")
		}
	})

	t.Run("empty value overrides recognized text", func(t *testing.T) {
		if err := s.UpdateCell(ctx, rec.ID, "card1.jpg", "Komponist", ""); err != nil {
			t.Fatalf("UpdateCell failed: %v", err)
		}
		got, err := s.GetBatch(ctx, rec.ID)
		if err != nil {
			t.Fatalf("GetBatch failed: %v", err)
		}
		if batch.Resolve(got.Results[0], "Komponist") != "" {
			t.Error("empty correction should hide the recognized value")
		}
	})

	t.Run("unknown file", func(t *testing.T) {
		if err := s.UpdateCell(ctx, rec.ID, "nope.jpg", "Titel", "x"); err == nil {
			t.Error("expected error for unknown filename")
		}
	})
}

func TestStore_DeleteBatch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	rec, err := s.SaveBatch(ctx, "B1", testResults())
	if err != nil {
		t.Fatalf("SaveBatch failed: %v", err)
	}

	if err := s.DeleteBatch(ctx, rec.ID); err != nil {
		t.Fatalf("DeleteBatch failed: %v", err)
	}
	if _, err := s.GetBatch(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.DeleteBatch(ctx, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for double delete, got %v", err)
	}
}
