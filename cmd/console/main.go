package main

import "github.com/kcaldas/console/cmd/cli"

func main() {
	cli.Execute()
}
