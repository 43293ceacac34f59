package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/Nityom/ai-pdf-assistant/fs"
	"github.com/Nityom/ai-pdf-assistant/gemini"
	"github.com/Nityom/ai-pdf-assistant/goquery"
	assistanthttp "github.com/Nityom/ai-pdf-assistant/http"
	"github.com/Nityom/ai-pdf-assistant/ingest"
	"github.com/Nityom/ai-pdf-assistant/pdf"
	"github.com/Nityom/ai-pdf-assistant/pdfcpu"
	assistantslog "github.com/Nityom/ai-pdf-assistant/slog"
	"google.golang.org/genai"
)

func main() {
	// Cooperative stop: an interrupt cancels the context, which the chat
	// loop honors between questions. A stage already in flight runs to
	// completion or failure first.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// downloadRPS limits downloads to one request per second per domain.
const downloadRPS = 1.0

// Main represents the program.
type Main struct {
	// Document store directory. Set before calling Run().
	Dir string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Dir: defaultDir(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pdfassistant"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pdfassistant --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	store, err := fs.NewStore(m.Dir)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set PDF_DIR to use a different store directory")
		return fmt.Errorf("failed to open document store at %q: %w", m.Dir, err)
	}
	loggingStore := assistantslog.NewLoggingStore(store, logger)

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	downloader := assistanthttp.NewDownloader(loggingStore,
		assistanthttp.WithDomainLimiter(assistanthttp.NewDomainLimiter(downloadRPS)),
	)

	deps.Logger = logger
	deps.Session = &ingest.Session{
		Discoverer: goquery.NewDiscoverer(assistanthttp.NewFetcher()),
		Downloader: assistantslog.NewLoggingDownloader(downloader, logger),
		Merger:     assistantslog.NewLoggingMerger(pdfcpu.NewMerger(loggingStore), logger),
		Extractor:  pdf.NewExtractor(),
		Asker:      gemini.NewAsker(client, cli.Model),
		Logger:     logger,
	}

	return kongCtx.Run(deps)
}

func defaultDir() string {
	if dir := os.Getenv("PDF_DIR"); dir != "" {
		return dir
	}
	return "pdfs"
}
