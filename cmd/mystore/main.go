package main

import "github.com/yungbote/mystore-backend/cmd/mystore/commands"

func main() {
	commands.Execute()
}
