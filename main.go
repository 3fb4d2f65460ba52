/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>

*/
package main

import (
	"github.com/kajvans/goreleaser-rust/cmd"
)

func main() {
	cmd.Execute()
}
