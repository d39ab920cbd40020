package domain

import (
	"errors"
	"testing"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		input   string
		want    TransactionType
		wantErr bool
	}{
		{input: "deposit", want: TransactionTypeDeposit},
		{input: "withdrawal", want: TransactionTypeWithdrawal},
		{input: " dispute ", want: TransactionTypeDispute},
		{input: "Resolve", want: TransactionTypeResolve},
		{input: "chargeback", want: TransactionTypeChargeback},
		{input: "transfer", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTransactionType(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrMalformedRecord) {
				t.Errorf("ParseTransactionType(%q): expected malformed record error, got %v", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTransactionType(%q): unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseTransactionType(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransactionType_IsChargeable(t *testing.T) {
	chargeable := map[TransactionType]bool{
		TransactionTypeDeposit:    true,
		TransactionTypeWithdrawal: true,
		TransactionTypeDispute:    false,
		TransactionTypeResolve:    false,
		TransactionTypeChargeback: false,
	}

	for typ, want := range chargeable {
		if got := typ.IsChargeable(); got != want {
			t.Errorf("%s.IsChargeable() = %v, want %v", typ, got, want)
		}
	}
}

func TestNewChargeableRecord(t *testing.T) {
	amount := dec("42.5")
	rec, err := NewChargeableRecord(&Transaction{
		Type:      TransactionTypeDeposit,
		AccountID: 2,
		TxID:      9,
		Amount:    &amount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.TxID != 9 || rec.AccountID != 2 || rec.Type != TransactionTypeDeposit || !rec.Amount.Equal(amount) {
		t.Errorf("unexpected record: %+v", rec)
	}

	_, err = NewChargeableRecord(&Transaction{Type: TransactionTypeWithdrawal, AccountID: 2, TxID: 10})
	if !errors.Is(err, ErrMissingAmount) {
		t.Errorf("expected missing amount error, got %v", err)
	}
}
