//go:build ignore

package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

//go:generate go run generate.go

func main() {
	err := entc.Generate(
		"./schema",
		&gen.Config{
			Target:  "../../gen/ent",
			Package: "github.com/nota-music/nota-pipeline/gen/ent",
			Schema:  "github.com/nota-music/nota-pipeline/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
