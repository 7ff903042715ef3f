package main

import "github.com/firetools/gozone/cmd"

func main() {
	cmd.Execute()
}
