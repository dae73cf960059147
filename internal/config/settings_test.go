package config

import (
	"testing"

	"github.com/soopatree/balloon/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(newViper())

	require.NoError(t, err)
	assert.Equal(t, "donor", s.Shape)
	assert.Equal(t, "auto", s.Encoding)
	assert.Equal(t, ".", s.ExportDir)
	assert.False(t, s.XLSX)
	assert.True(t, s.KeepManualOrder)
	assert.Nil(t, s.Filter.MinAmount)
	assert.Nil(t, s.Filter.MaxAmount)
}

func TestLoad_Overrides(t *testing.T) {
	v := newViper()
	v.Set(KeyShape, "Dated")
	v.Set(KeyEncoding, "EUC-KR")
	v.Set(KeyExportXLSX, true)
	v.Set(KeyKeepManualOrder, false)
	v.Set(KeyMin, "10")
	v.Set(KeyMax, 500)
	v.Set(KeyPreset, "custom")
	v.Set(KeyStart, "2024-01-01")

	s, err := Load(v)

	require.NoError(t, err)
	assert.Equal(t, "dated", s.Shape)
	assert.Equal(t, "euc-kr", s.Encoding)
	assert.True(t, s.XLSX)
	assert.False(t, s.KeepManualOrder)
	require.NotNil(t, s.Filter.MinAmount)
	require.NotNil(t, s.Filter.MaxAmount)
	assert.Equal(t, int64(10), *s.Filter.MinAmount)
	assert.Equal(t, int64(500), *s.Filter.MaxAmount)
	assert.Equal(t, "custom", s.Filter.Preset)
	assert.Equal(t, "2024-01-01", s.Filter.StartDate)
}

func TestLoad_InvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   any
		wantErr error
	}{
		{name: "unknown shape", key: KeyShape, value: "csv", wantErr: common.ErrInvalidConfig},
		{name: "unknown encoding", key: KeyEncoding, value: "latin-1", wantErr: common.ErrInvalidConfig},
		{name: "empty export dir", key: KeyExportDir, value: "", wantErr: common.ErrInvalidConfig},
		{name: "non numeric min", key: KeyMin, value: "12abc", wantErr: common.ErrInvalidFilter},
		{name: "negative max", key: KeyMax, value: -1, wantErr: common.ErrInvalidFilter},
		{name: "unknown preset", key: KeyPreset, value: "2days", wantErr: common.ErrInvalidFilter},
		{name: "bad date", key: KeyEnd, value: "2024/01/01", wantErr: common.ErrInvalidFilter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)

			_, err := Load(v)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFilter_BlankBoundsAreUnset(t *testing.T) {
	v := newViper()
	v.Set(KeyMin, "  ")

	cfg, err := LoadFilter(v)

	require.NoError(t, err)
	assert.Nil(t, cfg.MinAmount)
}
