package router

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRoute is returned by ParseRoute for unknown names and bad ids.
var ErrInvalidRoute = errors.New("invalid route")

// Screen identifies one of the two destinations in the route table.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
)

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Route is a destination plus its parameter. ID is only meaningful for ScreenDetail.
type Route struct {
	Screen Screen
	ID     int
}

// List is the root route.
func List() Route {
	return Route{Screen: ScreenList}
}

// Detail is the route for the profile with the given id.
func Detail(id int) Route {
	return Route{Screen: ScreenDetail, ID: id}
}

// String renders the deep-link form: "list" or "detail/{id}".
func (r Route) String() string {
	if r.Screen == ScreenDetail {
		return "detail/" + strconv.Itoa(r.ID)
	}
	return r.Screen.String()
}

// ParseRoute parses the deep-link form produced by Route.String.
func ParseRoute(s string) (Route, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")

	if s == "list" || s == "" {
		return List(), nil
	}

	rest, ok := strings.CutPrefix(s, "detail/")
	if !ok {
		return Route{}, fmt.Errorf("%w: %q", ErrInvalidRoute, s)
	}

	id, err := strconv.Atoi(rest)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %q: id is not an integer", ErrInvalidRoute, s)
	}
	if id < 0 {
		return Route{}, fmt.Errorf("%w: %q: id is negative", ErrInvalidRoute, s)
	}

	return Detail(id), nil
}
