// farmstub runs the in-memory farm backend for local development.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/NirunaShyamal/farm-sub001/internal/stub"
)

func main() {
	var (
		addr   = flag.String("addr", ":5000", "Listen address")
		seeded = flag.Bool("seed", true, "Start with fixture data")
	)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	server := stub.NewServer(*seeded)
	slog.Info("farmstub listening", "addr", *addr, "seeded", *seeded)

	if err := http.ListenAndServe(*addr, server.Router()); err != nil {
		fmt.Fprintf(os.Stderr, "farmstub: %v\n", err)
		os.Exit(1)
	}
}
