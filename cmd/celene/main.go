package main

import (
	_ "github.com/volkovasystems/celene/cmd" // for other commands

	"github.com/volkovasystems/celene/cmd/root"
)

func main() {
	root.Execute()
}
