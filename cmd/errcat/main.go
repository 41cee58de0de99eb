// Command errcat browses and validates the error catalogue.
//
//	errcat list --band query
//	errcat lookup 1510 -o json
//	errcat format ERROR_QUERY_COLLECTION_NAME_INVALID foo
//	errcat validate --file candidate.yaml
package main

import (
	"fmt"
	"os"

	"github.com/StricklySoft/errcatalog/internal/cli"
	"github.com/StricklySoft/errcatalog/pkg/registry"
)

var version = "dev"

func main() {
	if err := cli.NewRootCmd(registry.Default(), version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
