package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonor_AddNickname(t *testing.T) {
	d := NewDonor("hong")

	d.AddNickname("홍길동")
	d.AddNickname("길동이")
	d.AddNickname("홍길동")

	assert.Equal(t, []string{"홍길동", "길동이"}, d.Nicknames)
	assert.Equal(t, "홍길동", d.PrimaryNickname())
	assert.Equal(t, "홍길동(hong)", d.DisplayLabel())
	assert.Equal(t, []string{"길동이"}, d.AlternateNicknames())
}

func TestDonor_NoNicknames(t *testing.T) {
	d := NewDonor("ghost")

	assert.Empty(t, d.PrimaryNickname())
	assert.Equal(t, "(ghost)", d.DisplayLabel())
	assert.Nil(t, d.AlternateNicknames())
}
