// Command gradebook grades scores and adds integers, either locally or through
// Temporal workflows, and runs the Temporal worker that serves those workflows.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
