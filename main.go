package main

import "github.com/kdstools/kdsbeam/cmd"

func main() {
	cmd.Execute()
}
