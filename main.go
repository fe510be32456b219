package main

import "pragyan-remote/cmd"

func main() {
	cmd.Execute()
}
