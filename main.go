package main

import "github.com/seipan/bst/cmd"

func main() {
	cmd.Execute()
}
