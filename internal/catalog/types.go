package catalog

// ResourceType names one of the six national resources.
type ResourceType string

const (
	ResourceMoney          ResourceType = "money"
	ResourceFood           ResourceType = "food"
	ResourceOil            ResourceType = "oil"
	ResourceEnergy         ResourceType = "energy"
	ResourcePopulation     ResourceType = "population"
	ResourceResearchPoints ResourceType = "researchPoints"
)

// Yield is a sparse set of per-turn resource amounts.
type Yield map[ResourceType]float64

// BiomeID identifies a terrain type.
type BiomeID string

const (
	BiomePlains   BiomeID = "plains"
	BiomeForest   BiomeID = "forest"
	BiomeDesert   BiomeID = "desert"
	BiomeMountain BiomeID = "mountain"
	BiomeSnow     BiomeID = "snow"
	BiomeOcean    BiomeID = "ocean"
	BiomeCity     BiomeID = "city"
)

// Biome describes a terrain type.
type Biome struct {
	ID       BiomeID `yaml:"id" json:"id"`
	Defense  float64 `yaml:"defense" json:"defense"`     // Percentage
	MoveCost int     `yaml:"move_cost" json:"moveCost"` // Movement points to enter
	Color    string  `yaml:"color" json:"color"`
	Symbol   string  `yaml:"symbol" json:"symbol"`
}

// BuildingID identifies a building type.
type BuildingID string

const (
	BuildingFarm       BuildingID = "farm"
	BuildingFactory    BuildingID = "factory"
	BuildingOilWell    BuildingID = "oilWell"
	BuildingPowerPlant BuildingID = "powerPlant"
	BuildingLab        BuildingID = "lab"
	BuildingBarracks   BuildingID = "barracks"
	BuildingBunker     BuildingID = "bunker"
)

// Building describes a building type.
type Building struct {
	ID          BuildingID `yaml:"id" json:"id"`
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description" json:"description"`
	Cost        float64    `yaml:"cost" json:"cost"`
	Output      Yield      `yaml:"output" json:"output"`
	Upkeep      Yield      `yaml:"upkeep" json:"upkeep"`
}

// UnitID identifies a military unit type.
type UnitID string

const (
	UnitSoldier    UnitID = "soldier"
	UnitTank       UnitID = "tank"
	UnitArtillery  UnitID = "artillery"
	UnitHelicopter UnitID = "helicopter"
	UnitJet        UnitID = "jet"
	UnitBomber     UnitID = "bomber"
	UnitDestroyer  UnitID = "destroyer"
	UnitSub        UnitID = "sub"
	UnitCarrier    UnitID = "carrier"
	UnitSAM        UnitID = "sam"
	UnitNuke       UnitID = "nuke"
)

// UnitCategory groups units for upkeep and display.
type UnitCategory string

const (
	CategoryInfantry UnitCategory = "infantry"
	CategoryArmor    UnitCategory = "armor"
	CategoryAir      UnitCategory = "air"
	CategoryNavy     UnitCategory = "navy"
	CategoryMissile  UnitCategory = "missile"
	CategoryDefense  UnitCategory = "defense"
)

// Unit describes a military unit type.
type Unit struct {
	ID             UnitID              `yaml:"id" json:"id"`
	Name           string              `yaml:"name" json:"name"`
	Category       UnitCategory        `yaml:"category" json:"category"`
	Cost           float64             `yaml:"cost" json:"cost"`
	Upkeep         float64             `yaml:"upkeep" json:"upkeep"` // Money per turn
	Attack         float64             `yaml:"attack" json:"attack"`
	Defense        float64             `yaml:"defense" json:"defense"`
	Movement       int                 `yaml:"movement" json:"movement"`
	TechRequired   TechID              `yaml:"tech_required,omitempty" json:"techRequired,omitempty"`
	TerrainBonuses map[BiomeID]float64 `yaml:"terrain_bonuses,omitempty" json:"terrainBonuses,omitempty"`
}

// TerrainMultiplier returns the combat multiplier for fighting on a biome.
func (u Unit) TerrainMultiplier(biome BiomeID) float64 {
	if m, ok := u.TerrainBonuses[biome]; ok {
		return m
	}
	return 1
}

// TechID identifies a technology.
type TechID string

// TechEffects lists what a technology grants once researched.
type TechEffects struct {
	ResourceMultiplier map[ResourceType]float64 `yaml:"resource_multiplier,omitempty" json:"resourceMultiplier,omitempty"`
	CombatBonus        float64                  `yaml:"combat_bonus,omitempty" json:"combatBonus,omitempty"`
	UnlockUnits        []UnitID                 `yaml:"unlock_units,omitempty" json:"unlockUnits,omitempty"`
	UnlockBuildings    []BuildingID             `yaml:"unlock_buildings,omitempty" json:"unlockBuildings,omitempty"`
}

// Layout is a presentation hint for drawing the tech tree (percent coordinates).
type Layout struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Tech describes a technology in the research graph.
type Tech struct {
	ID            TechID      `yaml:"id" json:"id"`
	Name          string      `yaml:"name" json:"name"`
	Description   string      `yaml:"description" json:"description"`
	Cost          float64     `yaml:"cost" json:"cost"` // Research points
	Prerequisites []TechID    `yaml:"prerequisites" json:"prerequisites"`
	Effects       TechEffects `yaml:"effects" json:"effects"`
	Layout        Layout      `yaml:"layout" json:"layout"`
}
