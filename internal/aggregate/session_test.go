package aggregate

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/soopatree/balloon/internal/common"
	"github.com/soopatree/balloon/internal/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionExport = strings.Join([]string{
	"별풍선,\"A(a)\",100,,잭팟(10%)",
	"별풍선,\"B(b)\",10,,당첨(20%)",
	"별풍선,\"C(c)\",50,,꽝(70%)",
	"별풍선,\"A(a)\",5,,꽝(70%)",
}, "\n")

func TestSession_RunAndFilterChange(t *testing.T) {
	ctx := context.Background()
	session := NewSession(sessionExport, quietOptions())

	assert.Nil(t, session.Bundle())
	assert.ErrorIs(t, session.Reorder("a", "b"), ErrNotRun)

	bundle, err := session.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(165), bundle.TotalAmount())
	assert.Equal(t, []string{"꽝(70%)", "당첨(20%)", "잭팟(10%)"}, session.Columns())

	filtered, err := session.OnFilterChange(ctx, filter.Set{
		Amount: filter.AmountRange{Min: int64Ptr(50)}.Contains,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(150), filtered.TotalAmount())
	assert.Same(t, filtered, session.Bundle())
	assert.Equal(t, []string{"꽝(70%)", "잭팟(10%)"}, session.Columns())

	again, err := session.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(150), again.TotalAmount(), "Run keeps the last filters")
}

func TestSession_ManualOrderSurvivesFilterChange(t *testing.T) {
	ctx := context.Background()
	session := NewSession(sessionExport, quietOptions())
	_, err := session.Run(ctx)
	require.NoError(t, err)

	require.NoError(t, session.Reorder("꽝(70%)", "잭팟(10%)"))
	assert.Equal(t, []string{"잭팟(10%)", "당첨(20%)", "꽝(70%)"}, session.Columns())

	_, err = session.OnFilterChange(ctx, filter.None())
	require.NoError(t, err)
	assert.Equal(t, []string{"잭팟(10%)", "당첨(20%)", "꽝(70%)"}, session.Columns())

	require.NoError(t, session.Move("잭팟(10%)", 1))
	assert.Equal(t, []string{"당첨(20%)", "잭팟(10%)", "꽝(70%)"}, session.Columns())
}

func TestSession_ManualOrderResetWhenDisabled(t *testing.T) {
	ctx := context.Background()
	session := NewSession(sessionExport, quietOptions(), WithKeepManualOrder(false))
	_, err := session.Run(ctx)
	require.NoError(t, err)

	require.NoError(t, session.Reorder("꽝(70%)", "잭팟(10%)"))

	_, err = session.OnFilterChange(ctx, filter.None())
	require.NoError(t, err)
	assert.Equal(t, []string{"꽝(70%)", "당첨(20%)", "잭팟(10%)"}, session.Columns())
}

func TestSession_FailedRunKeepsPreviousState(t *testing.T) {
	ctx := context.Background()
	session := NewSession(sessionExport, quietOptions())
	first, err := session.Run(ctx)
	require.NoError(t, err)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = session.OnFilterChange(canceled, filter.Set{
		Amount: filter.AmountRange{Max: int64Ptr(1)}.Contains,
	})
	require.Error(t, err)

	assert.Same(t, first, session.Bundle())
	again, err := session.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.TotalAmount(), again.TotalAmount())
}

func TestSession_UnsupportedExport(t *testing.T) {
	session := NewSession("not an export", quietOptions())

	_, err := session.Run(context.Background())

	assert.ErrorIs(t, err, common.ErrFormat)
	assert.Nil(t, session.Bundle())
	assert.Nil(t, session.Columns())
}

func TestSession_ConcurrentFilterChanges(t *testing.T) {
	ctx := context.Background()
	session := NewSession(sessionExport, quietOptions())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(floor int64) {
			defer wg.Done()
			_, err := session.OnFilterChange(ctx, filter.Set{
				Amount: filter.AmountRange{Min: &floor}.Contains,
			})
			assert.NoError(t, err)
		}(int64(i))
	}
	wg.Wait()

	bundle := session.Bundle()
	require.NotNil(t, bundle)
	assert.Equal(t, 4, bundle.Statistics.TotalRows)
	assert.Equal(t, bundle.Statistics.TotalRows,
		bundle.Statistics.ProcessedRows+bundle.Statistics.SkippedRows)
}
