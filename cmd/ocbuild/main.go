package main

import "github.com/outofforest/ocbuild"

func main() {
	ocbuild.Main()
}
