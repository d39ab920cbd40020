package csv

import (
	encodingcsv "encoding/csv"
	"io"
	"strconv"

	"github.com/iho/txengine/internal/domain"
)

// OutputHeader is the header row written by Writer.
var OutputHeader = []string{"client", "available", "held", "total", "locked"}

// Writer renders account state as CSV.
type Writer struct {
	w *encodingcsv.Writer
}

// NewWriter creates a new Writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: encodingcsv.NewWriter(w)}
}

// WriteAccounts writes the header followed by one row per account.
func (w *Writer) WriteAccounts(accounts []domain.Account) error {
	if err := w.w.Write(OutputHeader); err != nil {
		return err
	}

	for _, a := range accounts {
		row := []string{
			strconv.FormatUint(uint64(a.ID), 10),
			domain.FormatAmount(a.Available),
			domain.FormatAmount(a.Held),
			domain.FormatAmount(a.Total),
			strconv.FormatBool(a.Locked),
		}
		if err := w.w.Write(row); err != nil {
			return err
		}
	}

	w.w.Flush()
	return w.w.Error()
}
