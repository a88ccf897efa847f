package main

import "github.com/gizmo3030/awakening-data/cmd"

func main() {
	cmd.Execute()
}
