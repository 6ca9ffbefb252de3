package main

import "github.com/mouse-blink/wle-js-upgrade/cmd"

func main() {
	cmd.Execute()
}
