// Package main implements the command line client of the verified store.
//
//  go run mod.go --server 127.0.0.1:3322 safe-set name alice
//  go run mod.go --server 127.0.0.1:3322 --cache roots.db safe-get name
//  go run mod.go --config client.yml root
//
package main

import (
	"os"

	"go.dedis.ch/veristore/cli/app"
)

func main() {
	err := app.NewApp().Run(os.Args)
	if err != nil {
		panic(err)
	}
}
