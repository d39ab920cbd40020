package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/txengine/internal/domain"
	"github.com/iho/txengine/internal/usecase"
)

func TestAccountFromDomain(t *testing.T) {
	resp := AccountFromDomain(domain.Account{
		ID:        4,
		Available: decimal.RequireFromString("1.23456"),
		Held:      decimal.NewFromInt(2),
		Total:     decimal.RequireFromString("3.23456"),
		Locked:    true,
	})

	if resp.Client != 4 || !resp.Locked {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Available != "1.2346" || resp.Held != "2.0000" || resp.Total != "3.2346" {
		t.Fatalf("unexpected amounts: %+v", resp)
	}

	list := AccountsFromDomain([]domain.Account{{ID: 1}, {ID: 2}})
	if len(list) != 2 || list[1].Client != 2 {
		t.Fatalf("unexpected list conversion: %+v", list)
	}
}

func TestBatchFromSummary(t *testing.T) {
	resp := BatchFromSummary(&usecase.BatchSummary{
		RunID:     "run",
		Rows:      5,
		Applied:   3,
		Failed:    1,
		Malformed: 1,
		Duration:  1500 * time.Millisecond,
	})

	if resp.RunID != "run" || resp.Rows != 5 || resp.Applied != 3 || resp.Failed != 1 || resp.Malformed != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.DurationMs != 1500 {
		t.Fatalf("expected 1500ms, got %d", resp.DurationMs)
	}
}
