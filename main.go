package main

import "github.com/dotcommander/boxplanner/cmd"

func main() {
	cmd.Execute()
}
