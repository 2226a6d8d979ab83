// Command neurots synthesizes neuronal morphologies.
package main

import "github.com/jacquemi-bbp/NeuroTS/cmd"

func main() {
	cmd.Execute()
}
