package common

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	err := NewUserError(MsgUnsupportedFormat, ErrFormat)
	wrapped := fmt.Errorf("loading: %w", err)

	assert.ErrorIs(t, wrapped, ErrFormat)
	assert.Equal(t, MsgUnsupportedFormat, UserMessage(wrapped))
	assert.Contains(t, err.Error(), ErrFormat.Error())

	bare := NewUserError(MsgNoData, nil)
	assert.Equal(t, MsgNoData, bare.Error())

	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
}

func TestRecordError(t *testing.T) {
	err := &RecordError{Offset: 42, Err: ErrEmptyDonorID}

	assert.Equal(t, "record at offset 42: empty donor id", err.Error())
	assert.ErrorIs(t, err, ErrEmptyDonorID)
	assert.False(t, IsFatal(err))
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(NewUserError(MsgReadFailed, ErrRead)))
	assert.True(t, IsFatal(fmt.Errorf("x: %w", ErrFormat)))
	assert.False(t, IsFatal(ErrInvalidFilter))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "loud", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewLogger(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown", "donors", 3)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"donors":3`)

	_, err = NewLogger(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, slog.LevelInfo, "console")
	require.NoError(t, err)

	previous := slog.Default()
	slog.SetDefault(logger)
	t.Cleanup(func() { slog.SetDefault(previous) })

	LogError(ErrRead, "Load failed", Fields{"path": "a.csv"})

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "Load failed")
	assert.Contains(t, buf.String(), "path=a.csv")
}
