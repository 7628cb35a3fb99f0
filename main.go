package main

import (
	"github.com/glentakahashi/spt-pityloot/cmd/app"
)

func main() {
	app.Run()
}
