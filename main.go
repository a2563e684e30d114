package main

import "vlint/cmd"

func main() {
	cmd.Execute()
}
