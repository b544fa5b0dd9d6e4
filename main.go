package main

import "github.com/yevmiyelerim/yev/cmd"

func main() {
	cmd.Execute()
}
