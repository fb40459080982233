package main

import "rickdex/internal/cli"

func main() {
	cli.Execute()
}
