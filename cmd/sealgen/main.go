// Command sealgen generates the geometry of standard and custom mechanical
// seals: O-rings, radial shaft seals, V-rings and bonded (Usit) rings.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
