package main

import "github.com/tempuslabs/globre/cmd"

func main() {
	cmd.Execute()
}
