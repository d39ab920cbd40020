package usecase_test

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/iho/txengine/internal/domain"
	"github.com/iho/txengine/internal/usecase"
)

func TestLedgerService_ConcurrentIngest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	engine := newEngine()
	svc := usecase.NewLedgerService(engine, usecase.NewBatchUseCase(engine, nil, newIDGen(ctrl), zerolog.Nop()))

	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()

			src := &sliceSource{}
			for i := 0; i < perWorker; i++ {
				src.add(newTx(domain.TransactionTypeDeposit, 1, domain.TxID(w*perWorker+i), amount("1")), nil)
			}
			_, err := svc.Ingest(src)
			assert.NoError(t, err)
			_ = svc.Accounts()
		}(w)
	}
	wg.Wait()

	acc, ok := svc.Account(1)
	require.True(t, ok)
	assert.True(t, acc.Total.Equal(decimal.NewFromInt(workers*perWorker)), "got %s", acc.Total)
	assert.Len(t, svc.Accounts(), 1)
}
