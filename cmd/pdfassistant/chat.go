package main

import (
	"bufio"
	"fmt"
	"strings"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
)

// Run executes the chat command.
func (c *ChatCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Ingesting %s\n", c.URL)

	result, err := deps.Session.RunIngestion(deps.Ctx, c.URL, printProgress(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "ingestion failed: %s\n", pdfassistant.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Ready: %d bytes of text from %d documents. Ask a question, or \"quit\" to stop.\n",
		result.ContextBytes, result.Merged)

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		// Stop is cooperative: checked between a completed answer and the
		// next question, never mid-stage.
		if deps.Ctx.Err() != nil {
			return nil
		}

		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		if question == "quit" || question == "exit" {
			return nil
		}

		fmt.Fprintln(deps.Stdout, deps.Session.Ask(deps.Ctx, question))
	}
}
