package usecase

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/txengine/internal/domain"
)

// BatchSummary describes one pass over a transaction source.
type BatchSummary struct {
	RunID     string        `json:"run_id"`
	Rows      int           `json:"rows"`
	Applied   int           `json:"applied"`
	Failed    int           `json:"failed"`
	Malformed int           `json:"malformed"`
	Duration  time.Duration `json:"duration"`
}

// BatchUseCase feeds a transaction source through an Engine.
type BatchUseCase struct {
	engine  *Engine
	metrics MetricsRecorder
	idGen   IDGenerator
	logger  zerolog.Logger
}

// NewBatchUseCase creates a new BatchUseCase. metrics may be nil.
func NewBatchUseCase(engine *Engine, metrics MetricsRecorder, idGen IDGenerator, logger zerolog.Logger) *BatchUseCase {
	return &BatchUseCase{
		engine:  engine,
		metrics: metrics,
		idGen:   idGen,
		logger:  logger,
	}
}

// Process applies every transaction from source in order.
//
// Malformed rows and rejected transactions are logged and skipped. Any other error
// from the source aborts the run; the partial summary is returned with it.
func (uc *BatchUseCase) Process(source TransactionSource) (*BatchSummary, error) {
	start := time.Now()
	summary := &BatchSummary{RunID: uc.idGen.Generate()}
	logger := uc.logger.With().Str("run_id", summary.RunID).Logger()

	defer func() {
		summary.Duration = time.Since(start)
		if uc.metrics != nil {
			uc.metrics.ObserveBatch(summary.Duration)
		}
	}()

	for {
		tx, err := source.Next()
		switch {
		case errors.Is(err, io.EOF):
			uc.logSummary(logger, summary, start)
			return summary, nil
		case errors.Is(err, domain.ErrMalformedRecord):
			summary.Rows++
			summary.Malformed++
			if uc.metrics != nil {
				uc.metrics.ObserveMalformedRow()
			}
			logger.Warn().Err(err).Msg("skipping invalid transaction row")
			continue
		case err != nil:
			return summary, fmt.Errorf("read transactions: %w", err)
		}

		summary.Rows++
		err = uc.engine.ProcessTransaction(tx)
		if uc.metrics != nil {
			uc.metrics.ObserveTransaction(tx.Type, err)
		}
		if err != nil {
			summary.Failed++
			logger.Warn().
				Err(err).
				Str("type", string(tx.Type)).
				Uint16("client", uint16(tx.AccountID)).
				Uint32("tx", uint32(tx.TxID)).
				Stringer("kind", domain.KindOf(err)).
				Msg("failed transaction")
			continue
		}

		summary.Applied++
	}
}

func (uc *BatchUseCase) logSummary(logger zerolog.Logger, summary *BatchSummary, start time.Time) {
	logger.Info().
		Int("rows", summary.Rows).
		Int("applied", summary.Applied).
		Int("failed", summary.Failed).
		Int("malformed", summary.Malformed).
		Dur("elapsed", time.Since(start)).
		Msg("batch processed")
}
