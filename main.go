package main

import "github.com/evoljewels/evolcli/cmd"

func main() {
	cmd.Execute()
}
