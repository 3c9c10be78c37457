package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessingErrorMessage(t *testing.T) {
	err := Parse("read report.csv", stderrors.New("unexpected EOF"))
	assert.Equal(t, "PARSE: read report.csv: unexpected EOF", err.Error())

	bare := New(CodeGate, "column count not between 6 and 9", nil)
	assert.Equal(t, "GATE_REJECTED: column count not between 6 and 9", bare.Error())
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := os.ErrNotExist
	err := Config("stat input directory", cause)

	require.True(t, stderrors.Is(err, os.ErrNotExist))

	var pe *ProcessingError
	require.True(t, stderrors.As(fmt.Errorf("merge dna: %w", err), &pe))
	assert.Equal(t, CodeConfig, pe.Code)
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"config", Config("load", nil), CodeConfig},
		{"persist wrapped", fmt.Errorf("save: %w", Persist("write csv", os.ErrPermission)), CodePersist},
		{"plain error", stderrors.New("boom"), Code("")},
		{"nil", nil, Code("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}

func TestIsConfig(t *testing.T) {
	assert.True(t, IsConfig(Config("bad dir", nil)))
	assert.False(t, IsConfig(Parse("bad csv", nil)))
	assert.False(t, IsConfig(nil))
}
