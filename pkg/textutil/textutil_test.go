package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autopecaspro/gestor-api/pkg/textutil"
)

func TestFoldAccents(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Orçamento", "Orcamento"},
		{"ignição", "ignicao"},
		{"CONCLUÍDA", "CONCLUIDA"},
		{"sem acento", "sem acento"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, textutil.FoldAccents(tt.in))
	}
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" fr-1020 ", "FR-1020"},
		{"abç123", "ABC123"},
		{"abc1d23", "ABC1D23"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, textutil.NormalizeCode(tt.in))
	}
}
