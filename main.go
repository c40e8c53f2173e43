package main

import "github.com/ross-spencer/whatsmapper/internal/cmd"

func main() {
	cmd.Execute()
}
