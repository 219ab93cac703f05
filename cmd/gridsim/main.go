// Command gridsim samples synthetic bus signals with a collector and prints
// the recorded rows as CSV.
package main

import "github.com/griddyn/griddyn/cmd/gridsim/cmd"

func main() {
	cmd.Execute()
}
