package main

import "dhctl/cmd"

func main() {
	cmd.Execute()
}
