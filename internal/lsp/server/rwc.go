package server

import (
	"io"
	"os"
)

// stdioPipe joins the process's stdin and stdout into the single
// io.ReadWriteCloser the jsonrpc2 buffered stream consumes. The LSP client
// owns both ends, so closing the pipe closes both.
type stdioPipe struct {
	in  io.ReadCloser
	out io.WriteCloser
}

// NewStdRWC returns the stdio transport for the diagnostics server.
func NewStdRWC() io.ReadWriteCloser {
	return &stdioPipe{in: os.Stdin, out: os.Stdout}
}

func (p *stdioPipe) Read(b []byte) (int, error)  { return p.in.Read(b) }
func (p *stdioPipe) Write(b []byte) (int, error) { return p.out.Write(b) }

func (p *stdioPipe) Close() error {
	if err := p.in.Close(); err != nil {
		return err
	}
	return p.out.Close()
}
