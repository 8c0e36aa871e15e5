package main

import "github.com/audiomath/melfeat/cmd"

func main() {
	cmd.Execute()
}
