package main

import (
	"github.com/docsurf/docsurf/internal/cli"
)

func main() {
	cli.Execute()
}
