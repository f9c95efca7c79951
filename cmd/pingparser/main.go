package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
)

func main() {
	// Interrupts end the process quietly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	fd := os.Stdin.Fd()
	piped := !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)

	code := run(ctx, os.Args[1:], streams{
		in:     os.Stdin,
		piped:  piped,
		out:    os.Stdout,
		errOut: os.Stderr,
	})
	stop()
	os.Exit(code)
}
