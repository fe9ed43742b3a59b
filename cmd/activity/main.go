package main

import "github.com/Egor213/CodeActivity/internal/app"

func main() {
	app.Run()
}
