package main

import "github.com/whattopick/wtp/cmd"

func main() {
	cmd.Execute()
}
