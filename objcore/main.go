// Package main provides the objcore command-line tool.
package main

import "github.com/sarchlab/objcore/objcore/cmd"

func main() {
	cmd.Execute()
}
