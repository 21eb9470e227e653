package main

import "github.com/byten0kami/Neon-sub001/cmd/neon/root"

func main() {
	root.Execute()
}
