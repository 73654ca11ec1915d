// Package main is the entry point for the glassyclock desktop clock.
package main

import "os"

func main() {
	os.Exit(Execute())
}
