package main

import "github.com/LeJamon/goKurdBase/internal/cli"

func main() {
	cli.Execute()
}
