package main

import "github.com/AntonStoeckl/solid-principles-go/internal/cli"

func main() {
	cli.Execute()
}
