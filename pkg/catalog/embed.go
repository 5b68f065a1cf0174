package catalog

import (
	_ "embed"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

var builtin = mustParse(embeddedCatalog)

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		// The embedded document ships with the binary; failing to parse it is
		// a build defect, not a runtime condition.
		panic(err)
	}
	return c
}

// Default returns the catalog bundled with the module.
func Default() *Catalog {
	return builtin
}
