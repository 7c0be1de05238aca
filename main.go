package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BerryBytes/ccactl/cmd/root"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.RootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
