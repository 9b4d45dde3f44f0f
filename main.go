package main

import "github.com/elliopitas/MNER/cmd"

func main() {
	cmd.Execute()
}
