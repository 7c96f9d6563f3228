package main

import "github.com/goliatone/go-certform/cmd/certform/cmd"

func main() {
	cmd.Execute()
}
