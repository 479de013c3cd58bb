// Package debugx provides debug logging that is disabled unless explicitly
// enabled through the environment.
package debugx

import (
	"log"

	"github.com/egdaemon/permute/internal/envx"
)

const env = "PERMUTE_DEBUG"

func enabled() bool {
	return envx.Boolean(false, env)
}

func Println(args ...any) {
	if !enabled() {
		return
	}

	log.Println(args...)
}

func Printf(format string, args ...any) {
	if !enabled() {
		return
	}

	log.Printf(format, args...)
}
