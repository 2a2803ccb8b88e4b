package main

import (
	"github.com/haulpath/tripplan/internal/adapters/cli"
)

func main() {
	cli.Execute()
}
