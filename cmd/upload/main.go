package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"certidao-widget/internal/clipboard"
	"certidao-widget/internal/config"
	"certidao-widget/internal/domain"
	"certidao-widget/internal/widget"

	"github.com/joho/godotenv"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  upload [-pick] [-copy] <file.pdf>

Sends a certificate to the report server and prints the report.

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	pick := flag.Bool("pick", false, "select the file as the picker does (no type check)")
	copyReport := flag.Bool("copy", false, "copy the rendered report to the clipboard")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: .env file could not be loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, flag.Arg(0), *pick, *copyReport, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run drives the controller the way a user would: select, submit, copy.
func run(ctx context.Context, path string, pick, copyReport bool, stdout, stderr io.Writer) int {
	cfg := config.NewConfig()
	container := config.NewContainer(cfg, stderr, widget.NewWriterNotifier(stderr), clipboard.NewSystem())
	ctrl := container.Controller

	file, err := selectPath(path, pick)
	if err != nil {
		fmt.Fprintf(stderr, "upload: %v\n", err)
		return 1
	}

	if pick {
		err = ctrl.Pick(file)
	} else {
		err = ctrl.Drop(file)
	}
	if err != nil {
		return 1
	}

	if err := ctrl.Submit(ctx); err != nil {
		return 1
	}

	state := ctrl.State()
	printView(stdout, state.Result)

	if copyReport {
		if _, err := ctrl.Copy(ctx); err != nil {
			// Clipboard failures stay silent for the user; exit status tells scripts.
			return 3
		}
	}
	return 0
}

func printView(w io.Writer, view *domain.View) {
	if view == nil {
		return
	}
	for _, c := range view.Cards {
		fmt.Fprintln(w, c.Text)
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Download: %s\n", view.Download.Href)
}
