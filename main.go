package main

import "autoscan/cmd"

func main() {
	cmd.Execute()
}
