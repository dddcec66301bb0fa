package main

import "github.com/iksnae/power-annotate/cmd"

func main() {
	cmd.Execute()
}
