// Command roadpath answers single-source shortest-distance queries over a road
// network, serves them over HTTP, and generates random networks.
//
//	roadpath query --input roads.txt --source Dhaka
//	roadpath serve --input roads.yaml --format yaml
//	roadpath generate --cities 8 --density 0.5 --seed 7
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "roadpath:", err)
		os.Exit(1)
	}
}
