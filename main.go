package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"magicbook/internal/commands"
)

func main() {
	// Cancel on interrupt so the program and the content watcher shut down
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := commands.New().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
