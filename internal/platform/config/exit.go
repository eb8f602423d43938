package config

import (
	"fmt"
	"io"
	"log"
	"os"
)

var (
	exitWriter io.Writer = os.Stderr
	exitFunc             = os.Exit
)

// Exitf reports a fatal startup error with the command's log prefix and
// exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitWriter, "%s%s\n", log.Prefix(), fmt.Sprintf(format, args...))
	exitFunc(1)
}
