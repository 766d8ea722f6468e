package main

import "github.com/mx-space/blog/cmd/blogctl/commands"

func main() {
	commands.Execute()
}
