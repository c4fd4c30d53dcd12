package main

import "github.com/hojung1231/nestegg/cmd"

func main() {
	cmd.Execute()
}
