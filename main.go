package main

import "github.com/oshokin/httpfmt/cmd"

func main() {
	cmd.Execute()
}
