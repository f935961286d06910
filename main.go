package main

import "github.com/blogem/editpilot/cmd"

func main() {
	cmd.Execute()
}
