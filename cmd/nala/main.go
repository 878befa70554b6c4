package main

import (
	"github.com/nala-lang/nala/cmd/nala/cmd"
)

func main() {
	cmd.Execute()
}
