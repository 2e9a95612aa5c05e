package main

import "github.com/unitime/unitime/cmd"

func main() {
	cmd.Execute()
}
