package main

import (
	"io"
	"net"
	"os"

	"golang.org/x/exp/slog"
)

// Sends standard input to a local server, then half-closes so the server sees end-of-stream.
func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	conn, err := net.Dial("tcp", "localhost:8000")
	if err != nil {
		log.Error("dial failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer conn.Close()

	n, err := io.Copy(conn, os.Stdin)
	if err != nil {
		log.Error("send failed", slog.Int64("sent", n), slog.Any("error", err))
		conn.Close()
		os.Exit(1)
	}

	if tcp, ok := conn.(*net.TCPConn); ok {
		tcp.CloseWrite()
	}
	log.Info("sent", slog.Int64("bytes", n))
}
