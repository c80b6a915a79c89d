// Package board_view renders the Monte Carlo dashboard's single view: one
// bar per board state, comparing its empirical landing frequency against
// the Markov engine's analytic stationary probability. It replaces the
// isometric racetrack value-function view this package was adapted from,
// whose projection math assumed an x/y grid a 40-square board doesn't have.
package board_view

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	channerics "github.com/niceyeti/channerics/channels"

	"monopolycore/internal/montecarlo"
	"monopolycore/markov"
	"monopolycore/server/fastview"
)

// SquareView is one state's view model: a board square, or (under the Stay
// jail policy) one of the two synthetic jail-residency states.
type SquareView struct {
	Index        int
	Name         string
	Frequency    float64
	Stationary   float64
	DivergencePP float64
}

// stateName resolves a state index's display name, covering the synthetic
// Stay-policy jail-residency states BuildTransitions introduces beyond
// board.NumSquares.
func stateName(b boardLike, idx int) string {
	if idx < len(b.SquareNames()) {
		return b.SquareNames()[idx]
	}
	switch idx {
	case markov.StayJailTurn2:
		return "In Jail (turn 2)"
	case markov.StayJailTurn3:
		return "In Jail (turn 3)"
	default:
		return fmt.Sprintf("state-%d", idx)
	}
}

// boardLike is the minimal surface Convert needs, kept narrow so this
// package doesn't have to import board directly for a single method call.
type boardLike interface {
	SquareNames() []string
}

// Convert builds the per-state view models for one Monte Carlo result,
// pairing its empirical frequencies with the corresponding analytic
// stationary distribution.
func Convert(b boardLike, result *montecarlo.Result, stationary []float64) []SquareView {
	freq := result.Frequencies()
	out := make([]SquareView, len(freq))
	for i := range freq {
		d := (freq[i] - stationary[i]) * 100
		out[i] = SquareView{
			Index:        i,
			Name:         stateName(b, i),
			Frequency:    freq[i],
			Stationary:   stationary[i],
			DivergencePP: d,
		}
	}
	return out
}

// BoardView is the dashboard's single fastview.ViewComponent: one SVG bar
// per state, its height tracking the empirical frequency and its fill
// tracking the divergence from the analytic stationary probability.
type BoardView struct {
	id      string
	n       int
	updates <-chan []fastview.EleUpdate
}

const (
	barWidth    = 14
	barGap      = 2
	chartHeight = 240
)

// NewBoardView builds the view. n is the number of states (bars) the chart
// will hold; it must match the length of every []SquareView the models
// channel later delivers.
func NewBoardView(done <-chan struct{}, n int, models <-chan []SquareView) *BoardView {
	bv := &BoardView{id: "boardview", n: n}
	bv.updates = channerics.Convert(done, models, bv.onUpdate)
	return bv
}

func (bv *BoardView) Updates() <-chan []fastview.EleUpdate {
	return bv.updates
}

func (bv *BoardView) onUpdate(squares []SquareView) []fastview.EleUpdate {
	maxFreq := 0.0
	for _, sq := range squares {
		maxFreq = math.Max(maxFreq, sq.Frequency)
	}
	if maxFreq == 0 {
		maxFreq = 1
	}

	ops := make([]fastview.EleUpdate, 0, len(squares))
	for _, sq := range squares {
		height := int(chartHeight * sq.Frequency / maxFreq)
		ops = append(ops, fastview.EleUpdate{
			EleId: fmt.Sprintf("bar-%d", sq.Index),
			Ops: []fastview.Op{
				{Key: "height", Value: fmt.Sprintf("%d", height)},
				{Key: "y", Value: fmt.Sprintf("%d", chartHeight-height)},
				{Key: "fill", Value: divergenceFill(sq.DivergencePP)},
			},
		})
		ops = append(ops, fastview.EleUpdate{
			EleId: fmt.Sprintf("label-%d", sq.Index),
			Ops: []fastview.Op{
				{Key: "textContent", Value: fmt.Sprintf("%s: %.3f%% (stationary %.3f%%, %+.3fpp)", sq.Name, sq.Frequency*100, sq.Stationary*100, sq.DivergencePP)},
			},
		})
	}
	return ops
}

// divergenceFill shades green within the engine's Monte-Carlo agreement
// bound and red beyond it.
func divergenceFill(pp float64) string {
	if pp < 0 {
		pp = -pp
	}
	if pp <= montecarlo.DivergenceBoundPP {
		return "seagreen"
	}
	return "firebrick"
}

// Parse builds the chart's static SVG skeleton: one <rect>/<text> pair per
// state, updated in place by the EleUpdate stream thereafter.
func (bv *BoardView) Parse(t *template.Template) (name string, err error) {
	name = bv.id

	var bars strings.Builder
	for i := 0; i < bv.n; i++ {
		x := i * (barWidth + barGap)
		fmt.Fprintf(&bars,
			`<rect id="bar-%d" x="%d" y="%d" width="%d" height="0" fill="seagreen" />`+"\n",
			i, x, chartHeight, barWidth)
	}

	var labels strings.Builder
	for i := 0; i < bv.n; i++ {
		fmt.Fprintf(&labels, `<div id="label-%d" class="legend"></div>`+"\n", i)
	}

	_, err = t.Parse(`{{ define "` + name + `" }}
		<div style="padding:20px;">
			<svg id="` + bv.id + `" xmlns="http://www.w3.org/2000/svg"
				width="` + fmt.Sprintf("%d", bv.n*(barWidth+barGap)) + `" height="` + fmt.Sprintf("%d", chartHeight) + `"
				style="background:#111;">
				` + bars.String() + `
			</svg>
			<div id="legend-container" style="font-family:monospace;color:#ccc;">
				` + labels.String() + `
			</div>
		</div>
	{{ end }}`)
	return
}
