package main

import "github.com/Xiaoy312/sap-hr-cli/cmd"

func main() {
	cmd.Execute()
}
