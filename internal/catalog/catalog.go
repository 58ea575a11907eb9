// Package catalog holds the static game definitions: biomes, buildings,
// units and the technology graph. A Catalog is read-only after Load.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embedded []byte

// rawCatalog is the on-disk layout of catalog.yaml.
type rawCatalog struct {
	Biomes    []Biome    `yaml:"biomes"`
	Buildings []Building `yaml:"buildings"`
	Units     []Unit     `yaml:"units"`
	Techs     []Tech     `yaml:"techs"`
}

// Catalog indexes the static definitions. Maps inside returned definitions
// are shared and must be treated as read-only.
type Catalog struct {
	biomes    map[BiomeID]Biome
	buildings map[BuildingID]Building
	units     map[UnitID]Unit
	techs     map[TechID]Tech

	biomeOrder    []BiomeID
	buildingOrder []BuildingID
	unitOrder     []UnitID
	techOrder     []TechID
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog built from the embedded definitions.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(bytes.NewReader(embedded))
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded definitions are invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load parses and validates a catalog document.
func Load(r io.Reader) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		biomes:    make(map[BiomeID]Biome, len(raw.Biomes)),
		buildings: make(map[BuildingID]Building, len(raw.Buildings)),
		units:     make(map[UnitID]Unit, len(raw.Units)),
		techs:     make(map[TechID]Tech, len(raw.Techs)),
	}

	for _, b := range raw.Biomes {
		if _, dup := c.biomes[b.ID]; dup {
			return nil, fmt.Errorf("duplicate biome %q", b.ID)
		}
		c.biomes[b.ID] = b
		c.biomeOrder = append(c.biomeOrder, b.ID)
	}
	for _, b := range raw.Buildings {
		if _, dup := c.buildings[b.ID]; dup {
			return nil, fmt.Errorf("duplicate building %q", b.ID)
		}
		c.buildings[b.ID] = b
		c.buildingOrder = append(c.buildingOrder, b.ID)
	}
	for _, u := range raw.Units {
		if _, dup := c.units[u.ID]; dup {
			return nil, fmt.Errorf("duplicate unit %q", u.ID)
		}
		c.units[u.ID] = u
		c.unitOrder = append(c.unitOrder, u.ID)
	}
	for _, t := range raw.Techs {
		if _, dup := c.techs[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tech %q", t.ID)
		}
		c.techs[t.ID] = t
		c.techOrder = append(c.techOrder, t.ID)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate checks cross references between definitions.
func (c *Catalog) validate() error {
	for _, id := range c.techOrder {
		for _, pre := range c.techs[id].Prerequisites {
			if _, ok := c.techs[pre]; !ok {
				return fmt.Errorf("tech %q: unknown prerequisite %q", id, pre)
			}
		}
		for _, u := range c.techs[id].Effects.UnlockUnits {
			if _, ok := c.units[u]; !ok {
				return fmt.Errorf("tech %q: unlocks unknown unit %q", id, u)
			}
		}
	}
	for _, id := range c.unitOrder {
		u := c.units[id]
		if u.TechRequired != "" {
			if _, ok := c.techs[u.TechRequired]; !ok {
				return fmt.Errorf("unit %q: unknown required tech %q", id, u.TechRequired)
			}
		}
		for biome := range u.TerrainBonuses {
			if _, ok := c.biomes[biome]; !ok {
				return fmt.Errorf("unit %q: terrain bonus for unknown biome %q", id, biome)
			}
		}
	}
	return nil
}

// Biome returns a biome definition.
func (c *Catalog) Biome(id BiomeID) (Biome, bool) {
	b, ok := c.biomes[id]
	return b, ok
}

// Building returns a building definition.
func (c *Catalog) Building(id BuildingID) (Building, bool) {
	b, ok := c.buildings[id]
	return b, ok
}

// Unit returns a unit definition.
func (c *Catalog) Unit(id UnitID) (Unit, bool) {
	u, ok := c.units[id]
	return u, ok
}

// Tech returns a technology definition.
func (c *Catalog) Tech(id TechID) (Tech, bool) {
	t, ok := c.techs[id]
	return t, ok
}

// BiomeIDs returns biome ids in definition order.
func (c *Catalog) BiomeIDs() []BiomeID {
	return append([]BiomeID(nil), c.biomeOrder...)
}

// BuildingIDs returns building ids in definition order.
func (c *Catalog) BuildingIDs() []BuildingID {
	return append([]BuildingID(nil), c.buildingOrder...)
}

// UnitIDs returns unit ids in definition order.
func (c *Catalog) UnitIDs() []UnitID {
	return append([]UnitID(nil), c.unitOrder...)
}

// TechIDs returns tech ids in definition order.
func (c *Catalog) TechIDs() []TechID {
	return append([]TechID(nil), c.techOrder...)
}
