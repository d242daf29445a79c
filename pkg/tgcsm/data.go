package tgcsm

// HexRecord is one row of the scenario map table.
type HexRecord struct {
	ID             string
	Name           string
	Terrain        TerrainType
	IsPort         bool
	PortName       string
	IsAirfield     bool
	AirfieldName   string
	IsVictoryPoint bool
	InitialOwner   Faction
}

// Equipment is one row of the equipment catalog.
type Equipment struct {
	ID                 string
	Faction            Faction
	Name               string
	Class              string
	MainGunMM          int
	HasATGM            bool
	ArmorRating        int
	EngineHP           int
	WeightTonnes       float64
	MaxSpeedKPH        int
	AmphibiousSpeedKPH int
	LiftCost           int
}

// TemplateEntry is one equipment line of a battalion template.
type TemplateEntry struct {
	EquipmentID string
	Quantity    int
}

// BattalionTemplate defines a battalion category and its equipment
// composition. Templates with no equipment rely on per-type default
// combat values.
type BattalionTemplate struct {
	ID        string
	Faction   Faction
	Type      UnitType
	Equipment []TemplateEntry
}

// UnitRecord is one row of an order of battle. Records with an empty
// Location start in the faction's reinforcement pool.
type UnitRecord struct {
	ID              string
	Faction         Faction
	Brigade         string
	TemplateID      string
	InitialStrength int
	Location        string
	IsReserve       bool
	LiftCost        int
}

// TerrainModifier holds the movement and defense factors of a terrain
// type.
type TerrainModifier struct {
	MoveCost          float64
	DefenseMultiplier float64
}

// CombatTable is the combat results table: five roll bands by five odds
// columns of result-code strings.
type CombatTable [5][5]string

// Scenario bundles the read-only reference data a game is built from.
// Build one with DefaultScenario and pass it to NewEngine; the engine
// never mutates it.
type Scenario struct {
	Hexes       []HexRecord
	Equipment   map[string]Equipment
	Templates   map[string]BattalionTemplate
	DefenderOOB []UnitRecord
	InvaderPool []UnitRecord
	Terrain     map[TerrainType]TerrainModifier
	CRT         CombatTable
}

// HexIDs returns the map's hex IDs in record order.
func (sc *Scenario) HexIDs() []string {
	ids := make([]string, len(sc.Hexes))
	for i, h := range sc.Hexes {
		ids[i] = h.ID
	}
	return ids
}

// TerrainModifierFor returns the modifiers for a terrain type, falling
// back to neutral factors for unknown terrain.
func (sc *Scenario) TerrainModifierFor(t TerrainType) TerrainModifier {
	if m, ok := sc.Terrain[t]; ok {
		return m
	}
	return TerrainModifier{MoveCost: 1.0, DefenseMultiplier: 1.0}
}

// WithBeachhead flips the initial owner of the named hexes to the
// invader. The stock map starts entirely defender-owned, which leaves
// the invader with no legal landing hex; scenarios that want an
// established beachhead apply this before NewEngine.
func (sc *Scenario) WithBeachhead(hexIDs ...string) *Scenario {
	want := make(map[string]bool, len(hexIDs))
	for _, id := range hexIDs {
		want[id] = true
	}
	for i := range sc.Hexes {
		if want[sc.Hexes[i].ID] {
			sc.Hexes[i].InitialOwner = PLA
		}
	}
	return sc
}

// DefaultScenario builds the stock Taiwan campaign: a 10x13 offset hex
// map, both orders of battle, the equipment catalog and the combat
// results table.
func DefaultScenario() *Scenario {
	sc := &Scenario{
		Hexes:     defaultHexes(),
		Equipment: make(map[string]Equipment, len(defaultEquipment)),
		Templates: make(map[string]BattalionTemplate, len(defaultTemplates)),
		Terrain: map[TerrainType]TerrainModifier{
			TerrainPlains:        {MoveCost: 1.0, DefenseMultiplier: 1.0},
			TerrainHills:         {MoveCost: 2.0, DefenseMultiplier: 1.5},
			TerrainMountain:      {MoveCost: 4.0, DefenseMultiplier: 1.8},
			TerrainUrban:         {MoveCost: 2.0, DefenseMultiplier: 2.0},
			TerrainForest:        {MoveCost: 1.5, DefenseMultiplier: 1.3},
			TerrainRiverCrossing: {MoveCost: 3.0, DefenseMultiplier: 1.1},
			TerrainCoastal:       {MoveCost: 1.0, DefenseMultiplier: 1.0},
			TerrainOcean:         {MoveCost: 99.0, DefenseMultiplier: 1.0},
		},
		CRT: defaultCRT,
	}
	for _, eq := range defaultEquipment {
		sc.Equipment[eq.ID] = eq
	}
	for _, t := range defaultTemplates {
		sc.Templates[t.ID] = t
	}
	sc.DefenderOOB = append(sc.DefenderOOB, defaultDefenderOOB...)
	sc.InvaderPool = append(sc.InvaderPool, defaultInvaderPool...)
	return sc
}

// defaultHexes returns the stock map. Records without an explicit owner
// default to the defender.
func defaultHexes() []HexRecord {
	hexes := []HexRecord{
		{ID: "A1", Name: "North Coast", Terrain: TerrainCoastal},
		{ID: "A2", Name: "North Coast", Terrain: TerrainCoastal},
		{ID: "A3", Name: "North Hills", Terrain: TerrainHills},
		{ID: "A4", Name: "North Hills", Terrain: TerrainHills},
		{ID: "A5", Name: "North Mountains", Terrain: TerrainMountain},
		{ID: "A6", Name: "North Mountains", Terrain: TerrainMountain},
		{ID: "A7", Name: "North Mountains", Terrain: TerrainMountain},
		{ID: "A8", Name: "Yilan Plain", Terrain: TerrainPlains, IsAirfield: true, AirfieldName: "Ilan Airport"},
		{ID: "A9", Name: "Keelung", Terrain: TerrainUrban, IsPort: true, PortName: "Port of Keelung"},
		{ID: "A10", Name: "Taipei", Terrain: TerrainUrban, IsPort: true, PortName: "Port of Taipei", IsAirfield: true, AirfieldName: "Taipei Songshan Airport", IsVictoryPoint: true},
		{ID: "A11", Name: "New Taipei", Terrain: TerrainUrban},
		{ID: "A12", Name: "Matsu Islands", Terrain: TerrainCoastal, IsPort: true, PortName: "Fuao Harbor", IsAirfield: true, AirfieldName: "Matsu Beigan Airport"},
		{ID: "A13", Name: "Kinmen Islands", Terrain: TerrainCoastal, IsPort: true, PortName: "Shuitou Pier", IsAirfield: true, AirfieldName: "Kinmen Airport"},
		{ID: "B1", Name: "West Coast", Terrain: TerrainCoastal},
		{ID: "B2", Name: "West Coast", Terrain: TerrainCoastal},
		{ID: "B3", Name: "Hsinchu Hills", Terrain: TerrainHills},
		{ID: "B4", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "B5", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "B6", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "B7", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "B8", Name: "Yilan", Terrain: TerrainUrban},
		{ID: "B9", Name: "Taipei Basin", Terrain: TerrainPlains},
		{ID: "B10", Name: "Taoyuan", Terrain: TerrainPlains, IsAirfield: true, AirfieldName: "Taiwan Taoyuan Intl Airport"},
		{ID: "B11", Name: "Linkou Plateau", Terrain: TerrainHills},
		{ID: "B12", Name: "North Coast", Terrain: TerrainCoastal},
		{ID: "B13", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "C1", Name: "Penghu Channel", Terrain: TerrainOcean},
		{ID: "C2", Name: "West Coast", Terrain: TerrainCoastal},
		{ID: "C3", Name: "Miaoli Hills", Terrain: TerrainHills},
		{ID: "C4", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "C5", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "C6", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "C7", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "C8", Name: "East Mountains", Terrain: TerrainMountain},
		{ID: "C9", Name: "Hualien Valley", Terrain: TerrainPlains},
		{ID: "C10", Name: "Hsinchu", Terrain: TerrainUrban, IsAirfield: true, AirfieldName: "Hsinchu AB"},
		{ID: "C11", Name: "Taoyuan Plateau", Terrain: TerrainHills},
		{ID: "C12", Name: "West Coast", Terrain: TerrainCoastal},
		{ID: "C13", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "D1", Name: "Penghu Channel", Terrain: TerrainOcean},
		{ID: "D2", Name: "West Coast", Terrain: TerrainCoastal, IsPort: true, PortName: "Port of Taichung"},
		{ID: "D3", Name: "Taichung Basin", Terrain: TerrainPlains},
		{ID: "D4", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "D5", Name: "Taichung", Terrain: TerrainUrban, IsAirfield: true, AirfieldName: "Taichung Intl Airport"},
		{ID: "D6", Name: "Central Mt.", Terrain: TerrainMountain},
		{ID: "D7", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "D8", Name: "East Mountains", Terrain: TerrainMountain},
		{ID: "D9", Name: "East Rift Valley", Terrain: TerrainPlains},
		{ID: "D10", Name: "Changhua", Terrain: TerrainPlains},
		{ID: "D11", Name: "Yunlin", Terrain: TerrainPlains},
		{ID: "D12", Name: "West Coast", Terrain: TerrainCoastal},
		{ID: "D13", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "E1", Name: "Penghu Islands", Terrain: TerrainCoastal, IsPort: true, PortName: "Magong Harbor", IsAirfield: true, AirfieldName: "Penghu Airport"},
		{ID: "E2", Name: "West Coast", Terrain: TerrainCoastal},
		{ID: "E3", Name: "Chiayi Hills", Terrain: TerrainHills},
		{ID: "E4", Name: "Alishan", Terrain: TerrainMountain},
		{ID: "E5", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "E6", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "E7", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "E8", Name: "East Mountains", Terrain: TerrainMountain},
		{ID: "E9", Name: "East Coast", Terrain: TerrainCoastal},
		{ID: "E10", Name: "Chiayi", Terrain: TerrainUrban, IsAirfield: true, AirfieldName: "Chiayi Airport"},
		{ID: "E11", Name: "Tainan Plains", Terrain: TerrainPlains},
		{ID: "E12", Name: "West Coast", Terrain: TerrainCoastal},
		{ID: "E13", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "F1", Name: "Taiwan Strait", Terrain: TerrainOcean},
		{ID: "F2", Name: "Anping", Terrain: TerrainCoastal, IsPort: true, PortName: "Port of Anping"},
		{ID: "F3", Name: "Tainan", Terrain: TerrainUrban, IsAirfield: true, AirfieldName: "Tainan Airport"},
		{ID: "F4", Name: "Zhuoshui River", Terrain: TerrainRiverCrossing},
		{ID: "F5", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "F6", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "F7", Name: "Central Mountains", Terrain: TerrainMountain},
		{ID: "F8", Name: "East Mountains", Terrain: TerrainMountain},
		{ID: "F9", Name: "East Coast", Terrain: TerrainCoastal},
		{ID: "F10", Name: "Tainan County", Terrain: TerrainPlains},
		{ID: "F11", Name: "Kaohsiung Plains", Terrain: TerrainPlains},
		{ID: "F12", Name: "West Coast", Terrain: TerrainCoastal},
		{ID: "F13", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "G1", Name: "Taiwan Strait", Terrain: TerrainOcean},
		{ID: "G2", Name: "Kaohsiung", Terrain: TerrainUrban, IsPort: true, PortName: "Port of Kaohsiung", IsAirfield: true, AirfieldName: "Kaohsiung Intl Airport"},
		{ID: "G3", Name: "Fengshan", Terrain: TerrainUrban},
		{ID: "G4", Name: "Pingtung Plains", Terrain: TerrainPlains},
		{ID: "G5", Name: "South Mountains", Terrain: TerrainMountain},
		{ID: "G6", Name: "South Mountains", Terrain: TerrainMountain},
		{ID: "G7", Name: "South Mountains", Terrain: TerrainMountain},
		{ID: "G8", Name: "Taitung Coast", Terrain: TerrainCoastal},
		{ID: "G9", Name: "Taitung", Terrain: TerrainUrban, IsAirfield: true, AirfieldName: "Taitung Airport"},
		{ID: "G10", Name: "Green Island", Terrain: TerrainCoastal, IsAirfield: true, AirfieldName: "Lyudao Airport"},
		{ID: "G11", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "G12", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "G13", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "H1", Name: "Taiwan Strait", Terrain: TerrainOcean},
		{ID: "H2", Name: "South Coast", Terrain: TerrainCoastal},
		{ID: "H3", Name: "Pingtung", Terrain: TerrainUrban, IsAirfield: true, AirfieldName: "Pingtung South AB"},
		{ID: "H4", Name: "South Mountains", Terrain: TerrainMountain},
		{ID: "H5", Name: "South Mountains", Terrain: TerrainMountain},
		{ID: "H6", Name: "South Mountains", Terrain: TerrainMountain},
		{ID: "H7", Name: "East Coast", Terrain: TerrainCoastal},
		{ID: "H8", Name: "East Coast", Terrain: TerrainCoastal},
		{ID: "H9", Name: "Hualien", Terrain: TerrainUrban, IsPort: true, PortName: "Port of Hualien", IsAirfield: true, AirfieldName: "Hualien AB"},
		{ID: "H10", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "H11", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "H12", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "H13", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "I1", Name: "Bashi Channel", Terrain: TerrainOcean},
		{ID: "I2", Name: "Hengchun Peninsula", Terrain: TerrainCoastal, IsAirfield: true, AirfieldName: "Hengchun Airport"},
		{ID: "I3", Name: "Kenting", Terrain: TerrainHills},
		{ID: "I4", Name: "South Mountains", Terrain: TerrainMountain},
		{ID: "I5", Name: "South Mountains", Terrain: TerrainMountain},
		{ID: "I6", Name: "East Coast", Terrain: TerrainCoastal},
		{ID: "I7", Name: "East Coast", Terrain: TerrainCoastal},
		{ID: "I8", Name: "East Coast", Terrain: TerrainCoastal},
		{ID: "I9", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "I10", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "I11", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "I12", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "I13", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "J1", Name: "Bashi Channel", Terrain: TerrainOcean},
		{ID: "J2", Name: "South Cape", Terrain: TerrainCoastal},
		{ID: "J3", Name: "Orchid Island", Terrain: TerrainCoastal, IsAirfield: true, AirfieldName: "Lanyu Airport"},
		{ID: "J4", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "J5", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "J6", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "J7", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "J8", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "J9", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "J10", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "J11", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "J12", Name: "Offshore", Terrain: TerrainOcean},
		{ID: "J13", Name: "Offshore", Terrain: TerrainOcean},
	}
	for i := range hexes {
		if hexes[i].InitialOwner == NoFaction {
			hexes[i].InitialOwner = ROC
		}
	}
	return hexes
}

var defaultEquipment = []Equipment{
	{ID: "PLA_ZTZ99A", Faction: PLA, Name: "Type 99A", Class: "MBT", MainGunMM: 125, HasATGM: true, ArmorRating: 9, EngineHP: 1500, WeightTonnes: 55, MaxSpeedKPH: 76, LiftCost: 10},
	{ID: "PLA_ZBD04A", Faction: PLA, Name: "Type 04A", Class: "IFV", MainGunMM: 100, HasATGM: true, ArmorRating: 6, EngineHP: 670, WeightTonnes: 24, MaxSpeedKPH: 75, AmphibiousSpeedKPH: 8, LiftCost: 5},
	{ID: "PLA_ZTD05", Faction: PLA, Name: "Type 05", Class: "Amphibious_Assault_Gun", MainGunMM: 105, HasATGM: true, ArmorRating: 5, EngineHP: 1475, WeightTonnes: 26.5, MaxSpeedKPH: 65, AmphibiousSpeedKPH: 28, LiftCost: 6},
	{ID: "PLA_ZBD05", Faction: PLA, Name: "Type 05", Class: "Amphibious_IFV", MainGunMM: 30, HasATGM: true, ArmorRating: 4, EngineHP: 1475, WeightTonnes: 26.5, MaxSpeedKPH: 65, AmphibiousSpeedKPH: 28, LiftCost: 6},
	{ID: "PLA_PLZ07", Faction: PLA, Name: "Type 07", Class: "SPH", MainGunMM: 122, ArmorRating: 3, EngineHP: 600, WeightTonnes: 22, MaxSpeedKPH: 65, AmphibiousSpeedKPH: 6, LiftCost: 5},
	{ID: "PLA_PHZ11", Faction: PLA, Name: "Type 11", Class: "MLRS", MainGunMM: 122, ArmorRating: 3, EngineHP: 450, WeightTonnes: 20, MaxSpeedKPH: 90, LiftCost: 4},
	{ID: "ROC_M60A3", Faction: ROC, Name: "M60A3 TTS", Class: "MBT", MainGunMM: 105, ArmorRating: 6, EngineHP: 750, WeightTonnes: 54.6, MaxSpeedKPH: 48},
	{ID: "ROC_CM11", Faction: ROC, Name: "CM-11 Brave Tiger", Class: "MBT", MainGunMM: 105, ArmorRating: 7, EngineHP: 750, WeightTonnes: 50, MaxSpeedKPH: 48},
	{ID: "ROC_CM34", Faction: ROC, Name: "CM-34 Clouded Leopard", Class: "IFV", MainGunMM: 30, ArmorRating: 5, EngineHP: 450, WeightTonnes: 24, MaxSpeedKPH: 120},
	{ID: "ROC_M109A5", Faction: ROC, Name: "M109A5", Class: "SPH", MainGunMM: 155, ArmorRating: 2, EngineHP: 440, WeightTonnes: 29, MaxSpeedKPH: 56},
	{ID: "ROC_M110A2", Faction: ROC, Name: "M110A2", Class: "SPH", MainGunMM: 203, ArmorRating: 1, EngineHP: 405, WeightTonnes: 28, MaxSpeedKPH: 55},
}

var defaultTemplates = []BattalionTemplate{
	{ID: "PLA_AMPH_ARM_BN", Faction: PLA, Type: Armor, Equipment: []TemplateEntry{
		{EquipmentID: "PLA_ZTD05", Quantity: 31},
		{EquipmentID: "PLA_ZBD05", Quantity: 10},
	}},
	{ID: "PLA_AMPH_MECH_BN", Faction: PLA, Type: Mechanized, Equipment: []TemplateEntry{
		{EquipmentID: "PLA_ZBD05", Quantity: 42},
	}},
	{ID: "PLA_ARTY_SPH_BN", Faction: PLA, Type: Artillery, Equipment: []TemplateEntry{
		{EquipmentID: "PLA_PLZ07", Quantity: 18},
	}},
	{ID: "PLA_ARTY_MLRS_BN", Faction: PLA, Type: Artillery, Equipment: []TemplateEntry{
		{EquipmentID: "PLA_PHZ11", Quantity: 18},
	}},
	{ID: "PLA_AIRBORNE_BN", Faction: PLA, Type: Infantry},
	{ID: "PLA_ENGINEER_BN", Faction: PLA, Type: Engineer},
	{ID: "PLA_ATTACK_HELO_BN", Faction: PLA, Type: AttackHelo},
	{ID: "ROC_ARM_BN_M60", Faction: ROC, Type: Armor, Equipment: []TemplateEntry{
		{EquipmentID: "ROC_M60A3", Quantity: 44},
	}},
	{ID: "ROC_ARM_BN_CM11", Faction: ROC, Type: Armor, Equipment: []TemplateEntry{
		{EquipmentID: "ROC_CM11", Quantity: 44},
	}},
	{ID: "ROC_MECH_BN_CM34", Faction: ROC, Type: Mechanized, Equipment: []TemplateEntry{
		{EquipmentID: "ROC_CM34", Quantity: 42},
	}},
	{ID: "ROC_INF_BN", Faction: ROC, Type: Infantry},
	{ID: "ROC_ARTY_BN_155", Faction: ROC, Type: Artillery, Equipment: []TemplateEntry{
		{EquipmentID: "ROC_M109A5", Quantity: 18},
	}},
	{ID: "ROC_ARTY_BN_203", Faction: ROC, Type: Artillery, Equipment: []TemplateEntry{
		{EquipmentID: "ROC_M110A2", Quantity: 18},
	}},
}

var defaultInvaderPool = []UnitRecord{
	{ID: "PLA_AMPH_1_BN1", Faction: PLA, Brigade: "1st Amphibious Brigade", TemplateID: "PLA_AMPH_ARM_BN", InitialStrength: 100, LiftCost: 80},
	{ID: "PLA_AMPH_1_BN2", Faction: PLA, Brigade: "1st Amphibious Brigade", TemplateID: "PLA_AMPH_MECH_BN", InitialStrength: 100, LiftCost: 40},
	{ID: "PLA_AMPH_1_BN3", Faction: PLA, Brigade: "1st Amphibious Brigade", TemplateID: "PLA_AMPH_MECH_BN", InitialStrength: 100, LiftCost: 40},
	{ID: "PLA_AMPH_2_BN1", Faction: PLA, Brigade: "2nd Amphibious Brigade", TemplateID: "PLA_AMPH_ARM_BN", InitialStrength: 100, LiftCost: 80},
	{ID: "PLA_AMPH_2_BN2", Faction: PLA, Brigade: "2nd Amphibious Brigade", TemplateID: "PLA_AMPH_MECH_BN", InitialStrength: 100, LiftCost: 40},
	{ID: "PLA_AMPH_2_BN3", Faction: PLA, Brigade: "2nd Amphibious Brigade", TemplateID: "PLA_AMPH_MECH_BN", InitialStrength: 100, LiftCost: 40},
	{ID: "PLA_ARTY_BN1", Faction: PLA, Brigade: "Artillery Regiment", TemplateID: "PLA_ARTY_SPH_BN", InitialStrength: 100, LiftCost: 30},
	{ID: "PLA_ARTY_BN2", Faction: PLA, Brigade: "Artillery Regiment", TemplateID: "PLA_ARTY_MLRS_BN", InitialStrength: 100, LiftCost: 25},
	{ID: "PLA_AIRBORNE_BN1", Faction: PLA, Brigade: "Airborne Division", TemplateID: "PLA_AIRBORNE_BN", InitialStrength: 100, LiftCost: 20},
	{ID: "PLA_AIRBORNE_BN2", Faction: PLA, Brigade: "Airborne Division", TemplateID: "PLA_AIRBORNE_BN", InitialStrength: 100, LiftCost: 20},
	{ID: "PLA_ENGINEER_BN1", Faction: PLA, Brigade: "Engineer Regiment", TemplateID: "PLA_ENGINEER_BN", InitialStrength: 100, LiftCost: 15},
	{ID: "PLA_HELO_BN1", Faction: PLA, Brigade: "Army Aviation Brigade", TemplateID: "PLA_ATTACK_HELO_BN", InitialStrength: 100, LiftCost: 35},
}

var defaultDefenderOOB = []UnitRecord{
	{ID: "ROC_ARM_542_BN1", Faction: ROC, Brigade: "542nd Armor Brigade", TemplateID: "ROC_ARM_BN_CM11", InitialStrength: 100, Location: "B10"},
	{ID: "ROC_ARM_542_BN2", Faction: ROC, Brigade: "542nd Armor Brigade", TemplateID: "ROC_ARM_BN_M60", InitialStrength: 100, Location: "B10"},
	{ID: "ROC_ARM_586_BN1", Faction: ROC, Brigade: "586th Armor Brigade", TemplateID: "ROC_ARM_BN_CM11", InitialStrength: 100, Location: "D5"},
	{ID: "ROC_MECH_BN1", Faction: ROC, Brigade: "Mechanized Infantry", TemplateID: "ROC_MECH_BN_CM34", InitialStrength: 100, Location: "A10"},
	{ID: "ROC_MECH_BN2", Faction: ROC, Brigade: "Mechanized Infantry", TemplateID: "ROC_MECH_BN_CM34", InitialStrength: 100, Location: "E10"},
	{ID: "ROC_MECH_BN3", Faction: ROC, Brigade: "Mechanized Infantry", TemplateID: "ROC_MECH_BN_CM34", InitialStrength: 100, Location: "G2"},
	{ID: "ROC_INF_BN1", Faction: ROC, Brigade: "Regular Infantry", TemplateID: "ROC_INF_BN", InitialStrength: 100, Location: "C10"},
	{ID: "ROC_INF_BN2", Faction: ROC, Brigade: "Regular Infantry", TemplateID: "ROC_INF_BN", InitialStrength: 100, Location: "F3"},
	{ID: "ROC_INF_BN3", Faction: ROC, Brigade: "Regular Infantry", TemplateID: "ROC_INF_BN", InitialStrength: 100, Location: "H9"},
	{ID: "ROC_INF_R_TPE1", Faction: ROC, Brigade: "Reserve Infantry", TemplateID: "ROC_INF_BN", InitialStrength: 80, Location: "A10", IsReserve: true},
	{ID: "ROC_INF_R_TPE2", Faction: ROC, Brigade: "Reserve Infantry", TemplateID: "ROC_INF_BN", InitialStrength: 80, Location: "A11", IsReserve: true},
	{ID: "ROC_INF_R_TYN", Faction: ROC, Brigade: "Reserve Infantry", TemplateID: "ROC_INF_BN", InitialStrength: 80, Location: "B10", IsReserve: true},
	{ID: "ROC_INF_R_TCG1", Faction: ROC, Brigade: "Reserve Infantry", TemplateID: "ROC_INF_BN", InitialStrength: 80, Location: "D5", IsReserve: true},
	{ID: "ROC_INF_R_TCG2", Faction: ROC, Brigade: "Reserve Infantry", TemplateID: "ROC_INF_BN", InitialStrength: 80, Location: "E5", IsReserve: true},
	{ID: "ROC_INF_R_TNN", Faction: ROC, Brigade: "Reserve Infantry", TemplateID: "ROC_INF_BN", InitialStrength: 80, Location: "F3", IsReserve: true},
	{ID: "ROC_INF_R_KHH1", Faction: ROC, Brigade: "Reserve Infantry", TemplateID: "ROC_INF_BN", InitialStrength: 80, Location: "G2", IsReserve: true},
	{ID: "ROC_INF_R_KHH2", Faction: ROC, Brigade: "Reserve Infantry", TemplateID: "ROC_INF_BN", InitialStrength: 80, Location: "G3", IsReserve: true},
	{ID: "ROC_INF_R_PTG", Faction: ROC, Brigade: "Reserve Infantry", TemplateID: "ROC_INF_BN", InitialStrength: 80, Location: "H3", IsReserve: true},
	{ID: "ROC_ARTY_BN1", Faction: ROC, Brigade: "Artillery Command", TemplateID: "ROC_ARTY_BN_155", InitialStrength: 100, Location: "C11"},
	{ID: "ROC_ARTY_BN2", Faction: ROC, Brigade: "Artillery Command", TemplateID: "ROC_ARTY_BN_203", InitialStrength: 100, Location: "E11"},
}

// Columns: 1:2, 1:1, 2:1, 3:1, 4:1+. Rows: d20 bands 1-5, 6-10, 11-15,
// 16-19, 20.
var defaultCRT = CombatTable{
	{"A-30/D-0", "A-20/D-10", "A-10/D-20", "A-10/D-30", "A-0/D-30"},
	{"A-20/D-0", "A-10/D-10", "A-10/D-20_DR", "A-10/D-20_DR", "A-0/D-20_DR"},
	{"A-10/D-0", "A-10/D-10_DR", "A-0/D-30_DR", "A-0/D-40_DR", "A-0/D-50_DR"},
	{"A-10/D-0_AR", "A-0/D-20_DR", "A-0/D-40_DR", "A-0/D-50_DR", "A-0/D-60_DR"},
	{"A-0/D-0_AX", "A-0/D-30_DX", "A-0/D-50_DX", "A-0/D-60_DX", "A-0/D-70_DX"},
}
