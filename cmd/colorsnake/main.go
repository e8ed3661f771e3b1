package main

import (
	"github.com/battlesnakeio/colorsnake/cmd/colorsnake/commands"
)

func main() {
	commands.Execute()
}
