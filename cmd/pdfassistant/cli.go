package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/Nityom/ai-pdf-assistant/ingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Session *ingest.Session
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run   RunCmd   `cmd:"" help:"Ingest a page's PDF links and answer one question"`
	Chat  ChatCmd  `cmd:"" help:"Ingest a page's PDF links and answer questions interactively"`
	Serve ServeCmd `cmd:"" help:"Serve a web form for ingestion and questions"`

	Model   string `help:"Gemini model to use" default:"gemini-1.5-flash"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	URL      string `arg:"" help:"Page to scan for PDF links"`
	Question string `arg:"" help:"Question to ask about the documents"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	URL string `arg:"" help:"Page to scan for PDF links"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:"localhost:8080" help:"Listen address"`
}
