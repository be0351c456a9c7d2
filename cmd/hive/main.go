package main

import "github.com/nfrund/hive/cmd/hive/cmd"

func main() {
	cmd.Execute()
}
