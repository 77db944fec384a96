/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/fitwire/cmd/fitwire/cmd"

func main() {
	cmd.Execute()
}
