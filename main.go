package main

import "github.com/yellomango9/it-mgmt-tool/cmd"

func main() {
	cmd.Execute()
}
