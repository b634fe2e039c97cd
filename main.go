package main

import "photo_editor/cmd"

func main() {
	cmd.Execute()
}
