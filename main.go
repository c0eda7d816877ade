package main

import (
	"github.com/go-imsto/dimstat/cmd"
)

func main() {
	cmd.Main()
}
