package main

import "glowutt/cmd"

func main() {
	cmd.Execute()
}
