package main

import "bookbrick/cmd"

func main() {
	cmd.Execute()
}
