package main

import "github.com/llehouerou/lfmbrowse/internal/cli"

func main() {
	cli.Execute()
}
