package main

import "github.com/depscope/depscope/internal/cli"

func main() {
	cli.Execute()
}
