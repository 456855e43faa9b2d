package main

import "github.com/yakumocabin/color-change-program/cmd"

func main() {
	cmd.Execute()
}
