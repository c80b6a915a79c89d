// Package server hosts the Monte Carlo validator's live dashboard: a
// single page, pushed to over one websocket per client, showing each
// board state's empirical landing frequency against the Markov engine's
// analytic stationary distribution as the simulation runs.
package server

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"monopolycore/board"
	"monopolycore/internal/montecarlo"
	"monopolycore/markov"
	"monopolycore/server/dashboard"
	"monopolycore/server/fastview"
)

// Server serves the dashboard page and fans its updates out to one
// websocket per connected client, via fastview.NewClient.
type Server struct {
	addr       string
	dash       *dashboard.Dashboard
	lastResult *montecarlo.Result
}

// NewServer builds the dashboard and the server around it. initial is
// passed as the page template's data on each page load; the page's
// templates do not read it, so the bars start empty and fill in from live
// updates. results is the stream of progress snapshots the simulation
// pushes as it runs.
func NewServer(
	ctx context.Context,
	addr string,
	b *board.Board,
	policy markov.JailPolicy,
	stationary []float64,
	initial *montecarlo.Result,
	results <-chan *montecarlo.Result,
) (*Server, error) {
	dash := dashboard.New(ctx, b, policy, stationary, results)

	return &Server{
		addr:       addr,
		dash:       dash,
		lastResult: initial,
	}, nil
}

// Serve blocks, serving the dashboard page and websocket endpoint.
func (s *Server) Serve() error {
	r := mux.NewRouter()
	r.HandleFunc("/", s.serveIndex).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.serveWebsocket)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	if err := http.ListenAndServe(s.addr, r); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// serveWebsocket upgrades the connection and runs the generic fastview
// publisher against the dashboard's update stream until the client
// disconnects.
func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	cli, err := fastview.NewClient(s.dash.Updates(), w, r)
	if err != nil {
		log.Println("websocket upgrade:", err)
		return
	}
	if err := cli.Sync(); err != nil {
		log.Println("websocket sync:", err)
	}
}

// serveIndex renders the dashboard page.
func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	if err := renderTemplate(w, s.dash, s.lastResult); err != nil {
		_, _ = w.Write([]byte(err.Error()))
	}
}

func renderTemplate(w io.Writer, vc fastview.ViewComponent, data interface{}) error {
	t := template.New("index.html")
	tname, err := vc.Parse(t)
	if err != nil {
		return err
	}
	if _, err := t.Parse(`{{ template "` + tname + `" . }}`); err != nil {
		return err
	}
	return t.Execute(w, data)
}
