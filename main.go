package main

import "exclusion-screener/cmd"

func main() {
	cmd.Execute()
}
