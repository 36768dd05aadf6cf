package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/invopop/jsonschema"

	"github.com/translint/translint/pkg/config"
)

var outFile = flag.String("o", "schema.json", "Output file for the generated schema")

func main() {
	flag.Parse()

	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: false,
	}

	// Paths are relative to pkg/config, where go:generate runs.
	for _, pkg := range []string{
		"../../pkg/config",
		"../../pkg/filetype",
		"../../pkg/rules",
		"../../api/v1beta1",
	} {
		err := r.AddGoComments("github.com/translint/translint", pkg)
		if err != nil {
			log.Fatalf("add comments for %s: %v", pkg, err)
		}
	}

	js := r.Reflect(config.New())

	jsData, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		log.Fatalf("generate JSON schema: %v", err)
	}

	err = os.WriteFile(*outFile, jsData, 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
