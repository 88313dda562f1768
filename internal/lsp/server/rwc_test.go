package server

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closableBuffer struct {
	strings.Builder
	closed bool
}

func (b *closableBuffer) Close() error {
	b.closed = true
	return nil
}

func TestStdioPipePassesThroughBothEnds(t *testing.T) {
	out := &closableBuffer{}
	pipe := &stdioPipe{
		in:  io.NopCloser(strings.NewReader("request")),
		out: out,
	}

	got, err := io.ReadAll(pipe)
	require.NoError(t, err)
	assert.Equal(t, "request", string(got))

	_, err = pipe.Write([]byte("response"))
	require.NoError(t, err)
	assert.Equal(t, "response", out.String())

	require.NoError(t, pipe.Close())
	assert.True(t, out.closed)
}

func TestNewStdRWCIsAStreamTransport(t *testing.T) {
	var rwc io.ReadWriteCloser = NewStdRWC()
	assert.NotNil(t, rwc)
}
