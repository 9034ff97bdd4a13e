// Command docdecode answers questions about an uploaded document using a
// multimodal model. "serve" runs the web form and JSON API; "ask" answers a
// single question for a local file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/Protocol-Lattice/docdecode/pkg/config"
	"github.com/Protocol-Lattice/docdecode/pkg/logger"
	"github.com/Protocol-Lattice/docdecode/pkg/models"
	"github.com/Protocol-Lattice/docdecode/pkg/responder"
	"github.com/Protocol-Lattice/docdecode/pkg/server"
	"github.com/Protocol-Lattice/docdecode/pkg/upload"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n  docdecode serve [flags]\n  docdecode ask -file <path> -question <text> [flags]\n")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx, os.Args[2:])
	case "ask":
		err = runAsk(ctx, os.Args[2:], os.Stdout, os.Stderr)
	case "-h", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// commonFlags are shared by every subcommand.
type commonFlags struct {
	configPath string
	provider   string
	model      string
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "docdecode.yaml", "Optional YAML config file")
	fs.StringVar(&f.provider, "provider", "", "Model provider: gemini|openai|anthropic|ollama|dummy")
	fs.StringVar(&f.model, "model", "", "Model ID (provider default if empty)")
}

// app is the wired pipeline.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	model     models.Model
	ingestor  *upload.Ingestor
	responder *responder.Responder
}

// setup loads config and wires the pipeline. Logs go to logOut.
func setup(ctx context.Context, f commonFlags, logOut io.Writer) (*app, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	cfg.Override(f.provider, f.model)

	log := logger.Init(logOut, logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	model, err := models.NewLLMProvider(ctx, models.Options{
		Provider: cfg.Model.Provider,
		Model:    cfg.Model.Name,
		APIKey:   cfg.Model.APIKey,
		Host:     cfg.Model.Host,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Model.APIKey == "" && cfg.NeedsAPIKey() {
		log.Warn("no API key configured; model calls may fail", "provider", model.Name())
	}

	ing := upload.NewDefaultIngestor()
	ing.MaxBytes = cfg.MaxUploadBytes()
	ing.Logger = log
	if cfg.Upload.Redact {
		ing.Redactor = upload.NewDefaultRedactor()
	}

	return &app{
		cfg:       cfg,
		log:       log,
		model:     model,
		ingestor:  ing,
		responder: responder.New(model, log),
	}, nil
}

func (a *app) Close() {
	if c, ok := a.model.(io.Closer); ok {
		if err := c.Close(); err != nil {
			a.log.Warn("close model", "error", err)
		}
	}
}

func runServe(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	addr := fs.String("addr", "", "Listen address (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := setup(ctx, common, os.Stdout)
	if err != nil {
		return err
	}
	defer a.Close()

	if *addr != "" {
		a.cfg.Server.Addr = *addr
	}

	h := server.NewHandler(a.ingestor, a.responder, a.log)
	e := server.New(h, server.Options{MaxUploadBytes: a.cfg.MaxUploadBytes(), Logger: a.log})

	a.log.Info("listening",
		"addr", a.cfg.Server.Addr,
		"provider", a.model.Name(),
		"model", a.cfg.Model.Name,
	)
	return server.ListenAndServe(ctx, e, a.cfg.Server.Addr)
}

// runAsk prints only the answer to stdout; logs go to stderr.
func runAsk(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ask", flag.ContinueOnError)
	var common commonFlags
	common.register(fs)
	file := fs.String("file", "", "Document to ask about")
	question := fs.String("question", "", "Question about the document")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return errors.New(server.MsgMissingFile)
	}
	if *question == "" {
		return errors.New(server.MsgMissingQuestion)
	}

	a, err := setup(ctx, common, stderr)
	if err != nil {
		return err
	}
	defer a.Close()

	return ask(ctx, a.ingestor, a.responder, *file, *question, stdout)
}

// ask answers one question for the file at path and writes the answer to out.
func ask(ctx context.Context, ing *upload.Ingestor, resp *responder.Responder, path, question string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	payload, err := ing.IngestReader(filepath.Base(path), f)
	if err != nil {
		return err
	}

	res := resp.Answer(ctx, payload, question)
	if !res.OK() {
		return res.Err
	}
	_, err = fmt.Fprintln(out, res.Text)
	return err
}
