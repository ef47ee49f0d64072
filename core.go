package main

import (
	"errors"
	"fmt"
	"io"
	"net"

	"plj/types"

	"golang.org/x/exp/slog"
)

// listenAddr is every interface, port 8000. It is not configurable.
const listenAddr = ":8000"

func listen(addr string) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, types.Wrap(types.ErrBind, err)
	}
	return listener, nil
}

// serve is a single worker: one connection is read to its end before the next
// Accept, later clients wait in the kernel backlog. It returns only on failure.
func serve(listener net.Listener, buf *types.ReceiveBuffer, out io.Writer, log *slog.Logger) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			return types.Wrap(types.ErrAccept, err)
		}
		remote := conn.RemoteAddr().String()
		log.Info("new connection", slog.String("remote", remote))

		err = readConn(conn, buf, out)
		conn.Close()
		if err != nil {
			return err
		}
		log.Info("connection closed by peer", slog.String("remote", remote))
	}
}

// readConn reports and prints every read until the peer closes its side.
// Bytes that arrive together with an error are printed before the error is handled.
func readConn(conn io.Reader, buf *types.ReceiveBuffer, out io.Writer) error {
	for {
		n, err := buf.Fill(conn)
		if n > 0 || err == nil {
			if _, werr := fmt.Fprintf(out, "Bytes Read: %d\n", n); werr != nil {
				return types.Wrap(types.ErrOutput, werr)
			}
			if werr := buf.Drain(out); werr != nil {
				return types.Wrap(types.ErrOutput, werr)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			buf.Clear()
			return types.Wrap(types.ErrRead, err)
		}
	}
}
