package main

import (
	"github.com/mchmarny/cookbook/pkg/cli"
)

func main() {
	cli.Execute()
}
