package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/integrity-lab/talos/pkg/domain/types"
	"github.com/integrity-lab/talos/pkg/service/catalog"
)

// Catalog holds configuration for the replacement cost catalog
type Catalog struct {
	path string
}

// costEntry is one [[cost]] block of the catalog override file
type costEntry struct {
	Type string `toml:"type"`
	Min  int64  `toml:"min"`
	Max  int64  `toml:"max"`
}

type catalogFile struct {
	Costs []costEntry `toml:"cost"`
}

// Flags returns CLI flags for catalog configuration
func (x *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "cost-catalog",
			Usage:       "Path to a TOML file overriding the replacement cost ranges",
			Sources:     cli.EnvVars("TALOS_COST_CATALOG"),
			Destination: &x.path,
		},
	}
}

// Configure returns the cost catalog: the built-in one when no override
// file is configured, otherwise the validated file contents.
func (x *Catalog) Configure() (*catalog.Catalog, error) {
	if x.path == "" {
		return catalog.Default(), nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(x.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read cost catalog file", goerr.V("path", x.path))
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse cost catalog TOML", goerr.V("path", x.path))
	}
	if len(file.Costs) == 0 {
		return nil, goerr.New("cost catalog file has no [[cost]] entries", goerr.V("path", x.path))
	}

	ranges := make(map[types.EquipmentType]catalog.Range, len(file.Costs))
	for _, entry := range file.Costs {
		eqType, err := types.ParseEquipmentType(entry.Type)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid equipment type in cost catalog", goerr.V("path", x.path))
		}
		if _, ok := ranges[eqType]; ok {
			return nil, goerr.New("duplicate equipment type in cost catalog",
				goerr.V("path", x.path), goerr.V("type", eqType))
		}
		ranges[eqType] = catalog.Range{MinUSD: entry.Min, MaxUSD: entry.Max}
	}

	c, err := catalog.New(ranges)
	if err != nil {
		return nil, goerr.Wrap(err, "cost catalog validation failed", goerr.V("path", x.path))
	}

	return c, nil
}
