package csv

import (
	encodingcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iho/txengine/internal/domain"
	"github.com/iho/txengine/internal/usecase"
)

// Input column names.
const (
	ColumnType   = "type"
	ColumnClient = "client"
	ColumnTx     = "tx"
	ColumnAmount = "amount"
)

// ErrMissingColumn is wrapped into every row error when the header lacks a
// required column.
var ErrMissingColumn = errors.New("csv: missing required column")

// Reader parses transactions from CSV input of the form type,client,tx,amount.
// Rows are read lazily, one per call to Next.
type Reader struct {
	r       *encodingcsv.Reader
	header  map[string]int
	missing error
	err     error
}

// NewReader creates a Reader. The header is read on the first call to Next.
func NewReader(r io.Reader) *Reader {
	cr := encodingcsv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return &Reader{r: cr}
}

// Next returns the next transaction.
//
// It returns io.EOF at the end of input (an empty input has no rows), an error
// wrapping domain.ErrMalformedRecord for a row that cannot be parsed (reading may
// continue), and any other error for unrecoverable input problems. When the header
// lacks a required column every row is malformed.
func (r *Reader) Next() (*domain.Transaction, error) {
	if r.err != nil {
		return nil, r.err
	}

	if r.header == nil {
		if err := r.readHeader(); err != nil {
			r.err = err
			return nil, err
		}
	}

	record, err := r.r.Read()
	if err != nil {
		var parseErr *encodingcsv.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedRecord, parseErr)
		}
		if !errors.Is(err, io.EOF) {
			r.err = err
		}
		return nil, err
	}

	line, _ := r.r.FieldPos(0)

	if r.missing != nil {
		return nil, fmt.Errorf("line %d: %w: %w", line, domain.ErrMalformedRecord, r.missing)
	}

	tx, err := r.parse(record)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}

	return tx, nil
}

func (r *Reader) readHeader() error {
	record, err := r.r.Read()
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	if err != nil {
		return fmt.Errorf("csv: read header: %w", err)
	}

	header := make(map[string]int, len(record))
	for i, name := range record {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, col := range []string{ColumnType, ColumnClient, ColumnTx} {
		if _, ok := header[col]; !ok {
			r.missing = fmt.Errorf("%w: %s", ErrMissingColumn, col)
			break
		}
	}

	r.header = header
	return nil
}

func (r *Reader) field(record []string, col string) string {
	i, ok := r.header[col]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func (r *Reader) parse(record []string) (*domain.Transaction, error) {
	txType, err := domain.ParseTransactionType(r.field(record, ColumnType))
	if err != nil {
		return nil, err
	}

	client, err := strconv.ParseUint(r.field(record, ColumnClient), 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: client: %v", domain.ErrMalformedRecord, err)
	}

	txID, err := strconv.ParseUint(r.field(record, ColumnTx), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: tx: %v", domain.ErrMalformedRecord, err)
	}

	tx := &domain.Transaction{
		Type:      txType,
		AccountID: domain.AccountID(client),
		TxID:      domain.TxID(txID),
	}

	if raw := r.field(record, ColumnAmount); raw != "" {
		amount, err := domain.ParseAmount(raw)
		if err != nil {
			return nil, err
		}
		tx.Amount = &amount
	}

	return tx, nil
}

var _ usecase.TransactionSource = (*Reader)(nil)
