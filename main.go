package main

import "github.com/securecheck/sslcheck-cli/cmd"

func main() {
	cmd.Execute()
}
