package main

import (
	"github.com/geange/fsmbin/internal/cmd"
)

func main() {
	cmd.Execute()
}
