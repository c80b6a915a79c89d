// Package fastview provides the dashboard's view-composition and
// websocket-publishing machinery: ViewComponent and its EleUpdate wire
// format, ViewBuilder for composing data-model streams into one or more
// views, and client for pushing their updates to a connected browser tab.
package fastview

import "html/template"

// ViewComponent is one independently-updating piece of the dashboard page:
// it contributes a named template to the page's template set and emits a
// stream of element-level updates to be pushed to connected clients.
type ViewComponent interface {
	// Parse adds this view's template(s) to t and returns the name of the
	// template the page should invoke to render it.
	Parse(t *template.Template) (name string, err error)
	// Updates streams batches of element updates for this view for as long
	// as its source data keeps producing them.
	Updates() <-chan []EleUpdate
}

// EleUpdate is a batch of attribute changes to apply to a single DOM
// element, keyed by its id in the rendered page.
type EleUpdate struct {
	EleId string
	Ops   []Op
}

// Op is one attribute-or-style assignment within an EleUpdate.
type Op struct {
	Key   string
	Value string
}
