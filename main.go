package main

import "nathanbeddoewebdev/registrar/cmd"

func main() {
	cmd.Execute()
}
