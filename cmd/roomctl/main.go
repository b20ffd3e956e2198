package main

import "github.com/inamate/roomplanner/cmd/roomctl/cmd"

func main() {
	cmd.Execute()
}
