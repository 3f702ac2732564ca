package main

import (
	"github.com/SweetiePi/bioncd-hackseq/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
