package assert

import "fmt"

// T panics with a formatted message if check is false.
// Used for programmer errors like passing an unknown enum value.
func T(check bool, msg string, args ...any) {

	if check {
		return
	}

	panic(fmt.Sprintf("assert failed: "+msg, args...))
}
