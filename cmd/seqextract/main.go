// cmd/seqextract/main.go
package main

import (
	"seqextract/internal/app"
	"seqextract/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
