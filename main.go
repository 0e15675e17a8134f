package main

import "github.com/CooperTran2196/scenetree/cmd"

func main() {
	cmd.Execute()
}
