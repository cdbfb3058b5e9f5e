package main

import "github.com/nfrund/specboard/cmd/specboard/cmd"

func main() {
	cmd.Execute()
}
