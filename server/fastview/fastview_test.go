package fastview_test

import (
	"fmt"
	"html/template"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"monopolycore/board"
	"monopolycore/internal/montecarlo"
	"monopolycore/server/board_view"
	"monopolycore/server/fastview"
)

// echoView is a minimal fastview.ViewComponent used to check the
// builder's channel wiring in isolation, without pulling in a real
// domain view.
type echoView struct {
	updates chan []fastview.EleUpdate
}

func newEchoView(done <-chan struct{}, input <-chan string) fastview.ViewComponent {
	updates := make(chan []fastview.EleUpdate)
	go func() {
		for datum := range input {
			select {
			case updates <- []fastview.EleUpdate{{EleId: datum, Ops: []fastview.Op{{Key: "textContent", Value: datum}}}}:
			case <-done:
				return
			}
		}
	}()
	return &echoView{updates: updates}
}

func (ev *echoView) Parse(t *template.Template) (name string, err error) { return }

func (ev *echoView) Updates() <-chan []fastview.EleUpdate { return ev.updates }

func TestViewBuilderBasicWiring(t *testing.T) {
	Convey("Given a builder wired from ints to a stringified echo view", t, func() {
		input := make(chan int)
		views, err := fastview.NewViewBuilder[int, string]().
			WithModel(input, func(x int) string { return fmt.Sprintf("state-%d", x) }).
			WithView(func(done <-chan struct{}, models <-chan string) fastview.ViewComponent { return newEchoView(done, models) }).
			Build()
		So(err, ShouldBeNil)
		So(len(views), ShouldEqual, 1)

		Convey("A value sent on the model channel reaches the view's update stream", func() {
			go func() { input <- 30 }()

			update := <-views[0].Updates()
			So(len(update), ShouldEqual, 1)
			So(update[0].EleId, ShouldEqual, "state-30")
		})
	})
}

// TestViewBuilderWiresBoardView exercises the builder the way
// server/dashboard actually constructs it: a Monte Carlo result stream
// converted into board_view.SquareView models and fed to a real
// board_view.BoardView, not a test fixture.
func TestViewBuilderWiresBoardView(t *testing.T) {
	b := board.New()
	n := board.NumSquares

	Convey("Given a ViewBuilder wired to a BoardView over a Monte Carlo result stream", t, func() {
		results := make(chan *montecarlo.Result)
		stationary := make([]float64, n)
		stationary[5] = 0.1

		views, err := fastview.NewViewBuilder[*montecarlo.Result, []board_view.SquareView]().
			WithModel(results, func(r *montecarlo.Result) []board_view.SquareView {
				return board_view.Convert(b, r, stationary)
			}).
			WithView(func(done <-chan struct{}, models <-chan []board_view.SquareView) fastview.ViewComponent {
				return board_view.NewBoardView(done, n, models)
			}).
			Build()
		So(err, ShouldBeNil)
		So(len(views), ShouldEqual, 1)

		Convey("Pushing a snapshot emits a bar update for the square that was landed on", func() {
			counts := make([]int64, n)
			counts[5] = 10
			go func() {
				results <- &montecarlo.Result{TotalTurns: 10, Counts: counts}
			}()

			update := <-views[0].Updates()

			found := false
			for _, u := range update {
				if u.EleId == "bar-5" {
					found = true
				}
			}
			So(found, ShouldBeTrue)
		})
	})
}
