package config

import (
	"fmt"
	"io"
	"os"
)

// Exit reports err as "<program>: <err>" on stderr and terminates with status 1.
func Exit(program string, err error) {
	os.Exit(report(os.Stderr, program, err))
}

func report(w io.Writer, program string, err error) int {
	fmt.Fprintf(w, "%s: %v\n", program, err)
	return 1
}
