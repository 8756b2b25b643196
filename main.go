package main

import "github.com/hance08/optbank/cmd"

func main() {
	cmd.Execute()
}
