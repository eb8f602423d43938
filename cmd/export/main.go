// Package main pre-renders the site into a static directory.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	exportcmd "github.com/louisbranch/buildspace/internal/cmd/export"
	"github.com/louisbranch/buildspace/internal/platform/config"
)

func main() {
	log.SetPrefix("[EXPORT] ")
	cfg, err := exportcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := exportcmd.Run(ctx, cfg); err != nil {
		config.Exitf("export: %v", err)
	}
}
