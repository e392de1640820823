package main

import (
	"github.com/stellarsec/netscope/cmd"
)

func main() {
	cmd.Execute()
}
