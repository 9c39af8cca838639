// Command heapsort reads newline separated values and prints them in order by draining them through a binary heap.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
