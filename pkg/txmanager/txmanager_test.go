package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
)

type stubTx struct {
	commits   int
	rollbacks int
}

func (t *stubTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *stubTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *stubTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *stubTx) Commit() error {
	t.commits++
	return nil
}

func (t *stubTx) Rollback() error {
	t.rollbacks++
	return nil
}

type stubBeginner struct {
	tx *stubTx
}

func (b *stubBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.tx, nil
}

// Ошибка в том виде, в каком она доходит до менеджера: драйверная причина
// обернута сентинелами репозитория и use case
func wrapAsLayersDo(cause error) error {
	repoErr := fmt.Errorf("storage: execute update: %w", cause)
	return fmt.Errorf("usecase: failed to increment available slots: %w", repoErr)
}

func TestDoRetriesDeadlockThroughWrappedLayers(t *testing.T) {
	tx := &stubTx{}
	m := NewTransactionManager(&stubBeginner{tx: tx})

	deadlock := &pq.Error{Code: "40P01"}

	attempts := 0
	err := m.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 2 {
			return wrapAsLayersDo(deadlock)
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Equal(t, 1, tx.commits)
}

func TestDoGivesUpAfterMaxAttempts(t *testing.T) {
	tx := &stubTx{}
	m := NewTransactionManager(&stubBeginner{tx: tx})

	serialization := &pq.Error{Code: "40001"}

	attempts := 0
	err := m.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return wrapAsLayersDo(serialization)
	})

	require.Error(t, err)
	assert.Equal(t, maxAttempts, attempts)
	assert.Equal(t, maxAttempts, tx.rollbacks)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestDoDoesNotRetryOrdinaryErrors(t *testing.T) {
	tx := &stubTx{}
	m := NewTransactionManager(&stubBeginner{tx: tx})

	boom := errors.New("constraint violated")

	attempts := 0
	err := m.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return wrapAsLayersDo(boom)
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Equal(t, 0, tx.commits)
}
