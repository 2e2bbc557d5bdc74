package engine

import (
	"log"
	"runtime/debug"
)

// Go runs fn in a new goroutine with panic recovery
// A recovered panic is logged with its stack and reported to onPanic, which may be nil
func Go(logger *log.Logger, fn func(), onPanic func(any)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if logger != nil {
					logger.Printf("panic in render goroutine: %v\n%s", r, debug.Stack())
				}
				if onPanic != nil {
					onPanic(r)
				}
			}
		}()
		fn()
	}()
}
