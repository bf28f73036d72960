package main

import "ytthumb/cmd"

func main() {
	cmd.Execute()
}
