package main

import "github.com/clinovahq/clinova_backend/cmd"

func main() {
	cmd.Execute()
}
