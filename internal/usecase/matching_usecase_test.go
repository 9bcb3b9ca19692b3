package usecase

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"jobfit/internal/domain/job"
	"jobfit/internal/domain/profile"
)

func TestMatching_Match(t *testing.T) {
	uc := NewMatchingUsecase()
	p := profile.Profile{TechnicalSkills: []string{"Go"}}
	rec := job.Record{KeyRequirements: []string{"Go"}}

	res, err := uc.Match(context.Background(), p, rec)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.ComponentScores.Skills != 100 {
		t.Fatalf("expected skills 100, got %d", res.ComponentScores.Skills)
	}
}

func TestMatching_MatchCancelledContext(t *testing.T) {
	uc := NewMatchingUsecase()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := uc.Match(ctx, profile.Profile{}, job.Record{}); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestMatching_MatchBatchPreservesOrder(t *testing.T) {
	uc := NewMatchingUsecase()
	p := profile.Profile{TechnicalSkills: []string{"Go", "Python", "Rust"}}

	recs := make([]job.Record, 20)
	for i := range recs {
		recs[i] = job.Record{
			Title:           fmt.Sprintf("Job %d", i),
			KeyRequirements: []string{[]string{"Go", "Python", "Rust", "COBOL"}[i%4]},
		}
	}

	batch, err := uc.MatchBatch(context.Background(), p, recs)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(batch) != len(recs) {
		t.Fatalf("expected %d results, got %d", len(recs), len(batch))
	}

	for i, rec := range recs {
		single, err := uc.Match(context.Background(), p, rec)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !reflect.DeepEqual(single, batch[i]) {
			t.Fatalf("batch result %d differs from single match", i)
		}
	}
}

func TestMatching_MatchBatchEmpty(t *testing.T) {
	uc := NewMatchingUsecase()
	batch, err := uc.MatchBatch(context.Background(), profile.Profile{}, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if batch == nil || len(batch) != 0 {
		t.Fatalf("expected empty result slice, got %v", batch)
	}
}
