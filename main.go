package main

import "github.com/mouse-blink/goreg/cmd"

func main() {
	cmd.Execute()
}
