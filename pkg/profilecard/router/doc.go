// Package router holds navigation state for the two-screen flow.
//
// There are exactly two destinations, the profile list and the detail screen
// for one profile id. Screens never see the Router itself; they get a narrow
// handle with NavigateToDetail and NavigateBack, and the render loop reads
// Current on every frame to decide what to draw.
//
// # Basic Usage
//
//	r := router.New(logger)
//	r.OnTransition(func(from, to router.Route) {
//	    logger.Info("navigated", "from", from, "to", to)
//	})
//
//	r.Remember(ListResume{Focus: 3})   // list screen saves its position
//	r.NavigateToDetail(7)             // list -> detail/7
//	r.NavigateBack()                  // detail/7 -> list
//	resume := r.Resume().(ListResume) // Focus == 3 again
//
// # Deep Links
//
// Routes print and parse as "list" and "detail/{id}". ParseRoute rejects
// anything else, including negative or non-numeric ids, with ErrInvalidRoute.
// Start positions the router at a parsed route; a detail start route keeps the
// list underneath it so back behaves the same as after a tap.
//
// # Resume State
//
// Resume state (scroll offset, focused row) is attached to the current route
// with Remember, pushed with it on forward navigation and restored on back.
// Screens without position state never call Remember.
package router
