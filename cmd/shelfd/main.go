package main

import "github.com/shelfd-io/shelfd/cmd"

func main() {
	cmd.Execute()
}
