package main

import (
	"jwwconv/cli"
)

func main() {
	cli.Start()
}
