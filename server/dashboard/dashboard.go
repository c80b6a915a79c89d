// Package dashboard builds the Monte Carlo validator's single web page:
// the live bar chart of empirical-vs-stationary landing frequencies, and
// the channel wiring that pushes updates to it as the simulation runs.
// Adapted from the racetrack trainer's root view; the view composition,
// fan-in, and throttling machinery carries over unchanged, only the
// concrete view (board_view.BoardView instead of a grid of RL value
// cells) and the data model (Monte Carlo results instead of RL states)
// are domain-specific.
package dashboard

import (
	"context"
	"html/template"
	"log"
	"time"

	channerics "github.com/niceyeti/channerics/channels"

	"monopolycore/board"
	"monopolycore/internal/montecarlo"
	"monopolycore/markov"
	"monopolycore/server/board_view"
	"monopolycore/server/fastview"
)

// Dashboard is the main page's index.html: the container for the board
// view, and the wiring for its update channel.
type Dashboard struct {
	views   []fastview.ViewComponent
	updates <-chan []fastview.EleUpdate
}

// New builds the dashboard's view and its channel wiring. results is the
// stream of Monte Carlo progress snapshots the simulation pushes as it
// runs; stationary is the analytic distribution each snapshot is compared
// against.
func New(
	ctx context.Context,
	b *board.Board,
	policy markov.JailPolicy,
	stationary []float64,
	results <-chan *montecarlo.Result,
) *Dashboard {
	n := policy.NumStates()

	views, err := fastview.NewViewBuilder[*montecarlo.Result, []board_view.SquareView]().
		WithContext(ctx).
		WithModel(results, func(r *montecarlo.Result) []board_view.SquareView {
			return board_view.Convert(b, r, stationary)
		}).
		WithView(func(done <-chan struct{}, models <-chan []board_view.SquareView) fastview.ViewComponent {
			return board_view.NewBoardView(done, n, models)
		}).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	return &Dashboard{
		views:   views,
		updates: fanIn(ctx.Done(), views),
	}
}

// Updates returns the main ele-update channel for the dashboard.
func (d *Dashboard) Updates() <-chan []fastview.EleUpdate {
	return d.updates
}

// Parse builds the main page's template, with websocket bootstrap code.
func (d *Dashboard) Parse(parent *template.Template) (name string, err error) {
	viewTemplates := make([]string, 0, len(d.views))
	for _, vc := range d.views {
		tname, parseErr := vc.Parse(parent)
		if parseErr != nil {
			return "", parseErr
		}
		viewTemplates = append(viewTemplates, tname)
	}

	var bodySpec string
	for _, tname := range viewTemplates {
		bodySpec += `{{ template "` + tname + `" . }}`
	}

	name = "mainpage"
	indexTemplate := `
	{{ define "` + name + `" }}
	<!DOCTYPE html>
	<html>
		<head>
			<link rel="icon" href="data:,">
			<title>Monopoly Monte Carlo validator</title>
			<script>
				const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
				ws.onopen = function () { console.log("websocket opened") };
				ws.onerror = function (event) { console.log("websocket error: ", event) };
				ws.onmessage = function (event) {
					const items = JSON.parse(event.data)
					for (const update of items) {
						const ele = document.getElementById(update.EleId)
						if (!ele) { continue }
						for (const op of update.Ops) {
							if (op.Key === "textContent") {
								ele.textContent = op.Value;
							} else {
								ele.setAttribute(op.Key, op.Value)
							}
						}
					}
				}
			</script>
		</head>
		<body style="background:#000;">
		` + bodySpec + `
		</body></html>
	{{ end }}
	`
	_, err = parent.Parse(indexTemplate)
	return
}

// fanIn aggregates the views' ele-update channels into a single,
// throttled channel.
func fanIn(done <-chan struct{}, views []fastview.ViewComponent) <-chan []fastview.EleUpdate {
	inputs := make([]<-chan []fastview.EleUpdate, len(views))
	for i, view := range views {
		inputs[i] = view.Updates()
	}
	return batchify(done, channerics.Merge(done, inputs...), time.Millisecond*100)
}

// batchify batches updates within rate before sending, overwriting
// previously received values for the same ele-id so only the latest value
// per element is sent.
func batchify(done <-chan struct{}, source <-chan []fastview.EleUpdate, rate time.Duration) <-chan []fastview.EleUpdate {
	output := make(chan []fastview.EleUpdate)

	go func() {
		defer close(output)

		data := map[string]fastview.EleUpdate{}
		last := time.Now()
		for updates := range channerics.OrDone(done, source) {
			for _, update := range updates {
				data[update.EleId] = update
			}

			if time.Since(last) > rate && len(updates) > 0 {
				select {
				case output <- slicedVals(data):
					data = map[string]fastview.EleUpdate{}
					last = time.Now()
				case <-done:
					return
				}
			}
		}
	}()

	return output
}

func slicedVals[T1 comparable, T2 any](mp map[T1]T2) (sliced []T2) {
	for _, v := range mp {
		sliced = append(sliced, v)
	}
	return
}
