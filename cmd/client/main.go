package main

import "qure/cmd/client/cmd"

func main() {
	cmd.Execute()
}
