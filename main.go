package main

import "github.com/brk3/weekly-habits/cmd"

func main() {
	cmd.Execute()
}
