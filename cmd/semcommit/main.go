package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grovetools/semcommit/cli"
	"github.com/grovetools/semcommit/cmd"
)

func main() {
	cli.InitColor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		code := cli.NewErrorHandler(os.Stderr, verbose).Handle(err)
		stop()
		os.Exit(code)
	}
}
