package main

import "qoipnm/cmd"

func main() {
	cmd.Execute()
}
