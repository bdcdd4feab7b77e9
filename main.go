package main

import "promptcanvas/easel/cmd"

func main() {
	cmd.Execute()
}
