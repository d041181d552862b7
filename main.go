package main

import "github.com/gofvm/advect/cmd"

func main() {
	cmd.Execute()
}
