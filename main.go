package main

import "clitemplate/cmd"

// Version can be set during build with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
