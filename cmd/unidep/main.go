package main

import "unidep/internal/cli"

func main() {
	cli.Execute()
}
