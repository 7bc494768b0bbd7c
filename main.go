package main

import "github.com/streamhaven/catalogd/cmd"

func main() {
	cmd.Execute()
}
