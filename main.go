package main

import "github.com/pitchcraft/pitchsmoke/cmd"

func main() {
	cmd.Execute()
}
