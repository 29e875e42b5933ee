package main

import "camorg/cmd/camorg-cli/cmd"

func main() {
	cmd.Execute()
}
