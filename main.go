// Package main is the entry point for the linemap CLI.
package main

import "github.com/mouse-blink/linemap/cmd"

func main() {
	cmd.Execute()
}
