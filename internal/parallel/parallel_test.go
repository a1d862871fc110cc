package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	for _, cfg := range []Config{DefaultConfig(), {Enabled: true, NumWorkers: 3}, {Enabled: false}} {
		var counter int64
		seen := make([]bool, 100)
		err := For(100, func(i int) error {
			atomic.AddInt64(&counter, 1)
			seen[i] = true
			return nil
		}, cfg)
		require.NoError(t, err)
		assert.Equal(t, int64(100), counter)
		for i, ok := range seen {
			assert.True(t, ok, "index %d", i)
		}
	}
}

func TestFor_FirstError(t *testing.T) {
	errLow := errors.New("low")
	errHigh := errors.New("high")

	var ran int64
	err := For(10, func(i int) error {
		atomic.AddInt64(&ran, 1)
		switch i {
		case 2:
			return errLow
		case 7:
			return errHigh
		}
		return nil
	}, Config{Enabled: true, NumWorkers: 4})

	assert.ErrorIs(t, err, errLow)
	assert.Equal(t, int64(10), ran)
}

func TestFor_Empty(t *testing.T) {
	assert.NoError(t, For(0, func(int) error { return errors.New("unreachable") }, DefaultConfig()))
}
