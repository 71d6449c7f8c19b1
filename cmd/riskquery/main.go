// riskquery is a terminal client for the trip risk analytics API. It
// renders the same formatted values the dashboard shows, either as
// bordered tables or as JSON for scripting.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
