package main

import "github.com/DGHeroin/SysInfo/cmd"

func main() {
	cmd.Run()
}
