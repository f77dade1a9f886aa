package main

import "github.com/papapumpkin/averse/cmd"

func main() {
	cmd.Execute()
}
