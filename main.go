package main

import "github.com/iksnae/ticket-desk/cmd"

func main() {
	cmd.Execute()
}
