package main

import "github.com/theirongolddev/perdiem/cmd"

func main() {
	cmd.Execute()
}
