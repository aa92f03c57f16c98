package router

import (
	"io"
	"log/slog"
)

// TransitionFunc is called after every route change.
type TransitionFunc func(from, to Route)

// Router owns the current route and the back stack. It is not safe for
// concurrent use; all transitions happen on the UI goroutine.
type Router struct {
	current   Route
	resume    any
	stack     *Stack
	listeners []TransitionFunc
	logger    *slog.Logger
}

// New creates a router positioned at the list route.
func New(logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Router{
		current: List(),
		stack:   NewStack(),
		logger:  logger,
	}
}

// Start moves the router to a deep-link route before the first frame.
// A detail start route gets the list route underneath it so back still works.
func (r *Router) Start(route Route) {
	r.stack = NewStack()
	r.resume = nil
	if route.Screen == ScreenDetail {
		r.stack.Push(List(), nil)
	}
	r.move(route)
}

// Current returns the active route.
func (r *Router) Current() Route {
	return r.current
}

// OnTransition registers a listener for route changes.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.listeners = append(r.listeners, fn)
	return r
}

// Remember attaches resume state to the current route. It is stored on the
// stack when navigating forward and handed back by Resume after returning.
func (r *Router) Remember(resume any) {
	r.resume = resume
}

// Resume returns the state attached to the current route, if any.
func (r *Router) Resume() any {
	return r.resume
}

// NavigateToDetail shows the profile with the given id. From the list the
// list is kept on the stack; from a detail the current detail is replaced.
func (r *Router) NavigateToDetail(id int) {
	if r.current.Screen == ScreenList {
		r.stack.Push(r.current, r.resume)
	}
	r.resume = nil
	r.move(Detail(id))
}

// CanGoBack reports whether NavigateBack has anywhere to go.
func (r *Router) CanGoBack() bool {
	return !r.stack.IsEmpty()
}

// NavigateBack returns to the previous route. On the root it does nothing.
func (r *Router) NavigateBack() {
	entry := r.stack.Pop()
	if entry == nil {
		r.logger.Debug("back requested on root route", "route", r.current.String())
		return
	}
	r.resume = entry.Resume
	r.move(entry.Route)
}

func (r *Router) move(to Route) {
	from := r.current
	r.current = to

	r.logger.Debug("route transition", "from", from.String(), "to", to.String(), "depth", r.stack.Len())

	for _, fn := range r.listeners {
		fn(from, to)
	}
}
