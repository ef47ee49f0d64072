package main

import (
	"os"

	"plj/types"

	"golang.org/x/exp/slog"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	buf := types.NewReceiveBuffer()

	listener, err := listen(listenAddr)
	if err != nil {
		log.Error("server failed to start", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("Server started. Listening on port 8000...", slog.String("addr", listener.Addr().String()))

	// the listener lives as long as the process; serve only comes back with an error
	if err := serve(listener, buf, os.Stdout, log); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
