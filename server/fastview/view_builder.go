package fastview

import (
	"context"
	"errors"

	channerics "github.com/niceyeti/channerics/channels"
)

// ViewBuilder wires one data-model stream to one or more views that share
// a common view-model, converted from the data model once and broadcast
// to every view. server/dashboard uses this to turn a single stream of
// Monte Carlo results into the board's rendered view without each view
// needing its own conversion logic.
type ViewBuilder[DataModel any, ViewModel any] struct {
	model    <-chan DataModel
	convert  func(DataModel) ViewModel
	builders []ViewBuilderFunc[ViewModel]
	done     <-chan struct{} // nil is fine; Build never blocks waiting on it.
}

// NewViewBuilder returns an empty builder for the given data-model and
// view-model types. Callers configure it with WithModel and one or more
// WithView calls before calling Build.
func NewViewBuilder[DataModel any, ViewModel any]() *ViewBuilder[DataModel, ViewModel] {
	return &ViewBuilder[DataModel, ViewModel]{}
}

// WithModel sets the source channel of data models and the function that
// converts each one to the view-model every registered view consumes.
func (vb *ViewBuilder[DataModel, ViewModel]) WithModel(
	input <-chan DataModel,
	convert func(DataModel) ViewModel,
) *ViewBuilder[DataModel, ViewModel] {
	vb.model = input
	vb.convert = convert
	return vb
}

// ViewBuilderFunc constructs a ViewComponent from its own view-model
// channel and a done channel for teardown.
type ViewBuilderFunc[ViewModel any] func(<-chan struct{}, <-chan ViewModel) ViewComponent

// WithView registers one more view to build. Views are returned from
// Build in the order they were registered, each reading its own branch of
// the broadcast view-model stream.
func (vb *ViewBuilder[DataModel, ViewModel]) WithView(
	builderFn ViewBuilderFunc[ViewModel],
) *ViewBuilder[DataModel, ViewModel] {
	vb.builders = append(vb.builders, builderFn)
	return vb
}

// WithContext ties every channel Build wires up to ctx's lifetime: once
// ctx is cancelled, the conversion and broadcast stages stop forwarding
// and the views' own goroutines see their done channel close.
func (vb *ViewBuilder[DataModel, ViewModel]) WithContext(
	ctx context.Context,
) *ViewBuilder[DataModel, ViewModel] {
	vb.done = ctx.Done()
	return vb
}

// ErrNoViews is returned by Build when no WithView call registered a view.
var ErrNoViews error = errors.New("no views to build: WithView must be called")

// ErrNoModel is returned by Build when WithModel was never called.
var ErrNoModel error = errors.New("no model specified: WithModel must be called")

// Build converts the model stream, broadcasts it to every registered
// view builder, and returns the constructed views in registration order.
func (vb *ViewBuilder[DataModel, ViewModel]) Build() (views []ViewComponent, err error) {
	if len(vb.builders) == 0 {
		return nil, ErrNoViews
	}
	if vb.convert == nil {
		return nil, ErrNoModel
	}

	viewModels := channerics.Convert(vb.done, vb.model, vb.convert)
	branches := channerics.Broadcast(vb.done, viewModels, len(vb.builders))
	for i, build := range vb.builders {
		views = append(views, build(vb.done, branches[i]))
	}
	return
}
