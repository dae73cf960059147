package identity

import (
	"testing"

	"github.com/soopatree/balloon/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		label        string
		wantID       string
		wantNickname string
	}{
		{label: "Alice(u1)", wantID: "u1", wantNickname: "Alice"},
		{label: "  별빛 소녀 (star99) ", wantID: "star99", wantNickname: "별빛 소녀"},
		{label: "Kim, Jr(kim)", wantID: "kim", wantNickname: "Kim, Jr"},
		{label: "a(b)(c)", wantID: "b", wantNickname: "a"},
		{label: "(anon)", wantID: "anon", wantNickname: ""},
		{label: "no account here", wantID: "no_account_here", wantNickname: "no account here"},
		{label: "tab\tand  spaces", wantID: "tab_and_spaces", wantNickname: "tab\tand  spaces"},
		{label: "unclosed(paren", wantID: "unclosed(paren", wantNickname: "unclosed(paren"},
		{label: "empty()", wantID: "empty()", wantNickname: "empty()"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			id, nickname := Resolve(tt.label)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantNickname, nickname)
		})
	}
}

func TestResolve_Deterministic(t *testing.T) {
	for _, label := range []string{"Alice(u1)", "Bob Smith", "  x  "} {
		id1, nick1 := Resolve(label)
		id2, nick2 := Resolve(label)
		assert.Equal(t, id1, id2)
		assert.Equal(t, nick1, nick2)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate("u1"))
	assert.NoError(t, Validate("Bob_Smith"))
	assert.NoError(t, Validate("_"))
	assert.NoError(t, Validate(" "))
	assert.ErrorIs(t, Validate(""), common.ErrEmptyDonorID)
}
