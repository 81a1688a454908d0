package main

import "github.com/soneyama/gud/cmd"

func main() {
	cmd.Execute()
}
