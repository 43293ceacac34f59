package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	pdfassistant "github.com/Nityom/ai-pdf-assistant"
	"github.com/Nityom/ai-pdf-assistant/ingest"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := &http.Server{
		Addr:    c.Addr,
		Handler: NewHandler(deps.Session),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	fmt.Fprintf(deps.Stdout, "Listening on http://%s\n", c.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-deps.Ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Handler is the web form front end. It treats the session as an opaque
// synchronous API plus its ready flag; all pipeline behavior lives in the
// session.
type Handler struct {
	session *ingest.Session
	mux     *http.ServeMux
}

// NewHandler creates a Handler for the given session.
func NewHandler(session *ingest.Session) *Handler {
	h := &Handler{
		session: session,
		mux:     http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /{$}", h.handleIndex)
	h.mux.HandleFunc("POST /ingest", h.handleIngest)
	h.mux.HandleFunc("POST /ask", h.handleAsk)
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// pageData feeds the page template.
type pageData struct {
	Ready  bool
	Status string
	Answer string
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.render(w, pageData{Ready: h.session.Ready()})
}

func (h *Handler) handleIngest(w http.ResponseWriter, r *http.Request) {
	url := r.FormValue("url")
	if url == "" {
		h.render(w, pageData{Ready: h.session.Ready(), Status: "A page URL is required."})
		return
	}

	result, err := h.session.RunIngestion(r.Context(), url, nil)
	if err != nil {
		h.render(w, pageData{Status: "Ingestion failed: " + pdfassistant.ErrorMessage(err)})
		return
	}

	h.render(w, pageData{
		Ready: true,
		Status: fmt.Sprintf("Extracted %d bytes of text from %d documents. Ask away.",
			result.ContextBytes, result.Merged),
	})
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	question := r.FormValue("question")
	h.render(w, pageData{
		Ready:  h.session.Ready(),
		Answer: h.session.Ask(r.Context(), question),
	})
}

func (h *Handler) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><title>PDF Question Assistant</title></head>
<body>
<h1>PDF Question Assistant</h1>
{{if .Status}}<p>{{.Status}}</p>{{end}}
<form method="post" action="/ingest">
<input type="text" name="url" placeholder="Page URL with PDF links" size="60">
<button type="submit">Ingest</button>
</form>
{{if .Ready}}
<form method="post" action="/ask">
<input type="text" name="question" placeholder="Your question" size="60">
<button type="submit">Ask</button>
</form>
{{end}}
{{if .Answer}}<h2>Answer</h2><p>{{.Answer}}</p>{{end}}
</body>
</html>
`))
