package main

import "github.com/structcode/gosect/cmd"

func main() {
	cmd.Execute()
}
