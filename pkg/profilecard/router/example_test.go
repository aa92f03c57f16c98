package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/profilecard/pkg/profilecard/router"
)

type listResume struct {
	Focus  int
	Scroll int32
}

// Example demonstrates the list -> detail -> back flow.
func Example() {
	r := router.New(nil)

	r.OnTransition(func(from, to router.Route) {
		fmt.Printf("%s -> %s\n", from, to)
	})

	fmt.Println("start:", r.Current())
	r.NavigateToDetail(0)
	r.NavigateBack()
	fmt.Println("can go back:", r.CanGoBack())

	// Output:
	// start: list
	// list -> detail/0
	// detail/0 -> list
	// can go back: false
}

// Example_resume demonstrates restoring the list position after back navigation.
func Example_resume() {
	r := router.New(nil)

	r.Remember(listResume{Focus: 2, Scroll: 180})
	r.NavigateToDetail(2)
	fmt.Println("detail resume is nil:", r.Resume() == nil)

	r.NavigateBack()
	resume := r.Resume().(listResume)
	fmt.Printf("focus=%d scroll=%d\n", resume.Focus, resume.Scroll)

	// Output:
	// detail resume is nil: true
	// focus=2 scroll=180
}

// Example_deepLink demonstrates starting on a detail route.
func Example_deepLink() {
	route, err := router.ParseRoute("detail/4")
	if err != nil {
		fmt.Println(err)
		return
	}

	r := router.New(nil)
	r.Start(route)
	fmt.Println(r.Current())

	r.NavigateBack()
	fmt.Println(r.Current())

	_, err = router.ParseRoute("detail/-1")
	fmt.Println(err)

	// Output:
	// detail/4
	// list
	// invalid route: "detail/-1": id is negative
}
