package main

import "github.com/ecortina/srcmeta/internal/cli"

func main() {
	cli.Execute()
}
