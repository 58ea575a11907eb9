package game

import "global-conflict/internal/catalog"

// CommandType discriminates the command union.
type CommandType string

const (
	CmdAdvanceTurn     CommandType = "next_turn"
	CmdBuildBuilding   CommandType = "build_building"
	CmdRecruitUnit     CommandType = "recruit_unit"
	CmdRecruitGeneral  CommandType = "recruit_general"
	CmdCreateArmy      CommandType = "create_army"
	CmdMoveArmy        CommandType = "move_army"
	CmdStartResearch   CommandType = "start_research"
	CmdSelectTile      CommandType = "select_tile"
	CmdSelectArmy      CommandType = "select_army"
	CmdSelectNation    CommandType = "select_country"
	CmdDismissMessage  CommandType = "dismiss_message"
	CmdOpenModal       CommandType = "open_modal"
	CmdCloseModal      CommandType = "close_modal"
	CmdDiplomacyAction CommandType = "diplomacy_action"
	CmdSendSpy         CommandType = "send_spy"
)

// Command is one player or AI action. Each variant carries exactly the
// fields it needs.
type Command interface {
	Type() CommandType
}

// AdvanceTurn ends the month for every nation.
type AdvanceTurn struct{}

// BuildBuilding buys Amount buildings.
type BuildBuilding struct {
	NationID   string             `json:"countryId"`
	BuildingID catalog.BuildingID `json:"buildingId"`
	Amount     int                `json:"amount"`
}

// RecruitUnit trains Amount units into the nation's reserves.
type RecruitUnit struct {
	NationID string         `json:"countryId"`
	UnitID   catalog.UnitID `json:"unitId"`
	Amount   int            `json:"amount"`
}

// RecruitGeneral hires a new general.
type RecruitGeneral struct {
	NationID string `json:"countryId"`
}

// CreateArmy forms an army from reserves under an available general.
type CreateArmy struct {
	NationID  string                 `json:"countryId"`
	GeneralID string                 `json:"generalId"`
	Units     map[catalog.UnitID]int `json:"units"`
	Location  string                 `json:"location"`
}

// MoveArmy moves an army one hex, attacking if the target is foreign.
type MoveArmy struct {
	ArmyID       string `json:"armyId"`
	TargetTileID string `json:"targetTileId"`
}

// StartResearch switches the nation's current research.
type StartResearch struct {
	NationID string         `json:"countryId"`
	TechID   catalog.TechID `json:"techId"`
}

// SelectTile selects a tile. An empty id clears the selection.
type SelectTile struct {
	TileID string `json:"tileId"`
}

// SelectArmy selects an army. An empty id clears the selection.
type SelectArmy struct {
	ArmyID string `json:"armyId"`
}

// SelectNation selects a nation. An empty id clears the selection.
type SelectNation struct {
	NationID string `json:"countryId"`
}

// DismissMessage removes a message from the feed.
type DismissMessage struct {
	MessageID string `json:"messageId"`
}

// OpenModal shows a dialog.
type OpenModal struct {
	Content ModalContent `json:"content"`
}

// CloseModal hides the current dialog.
type CloseModal struct{}

// DiplomaticAction names an action in DiplomacyAction.
type DiplomaticAction string

const (
	ActionImproveRelations DiplomaticAction = "improve_relations"
	ActionTradeAgreement   DiplomaticAction = "trade_agreement"
	ActionAllianceOffer    DiplomaticAction = "alliance_offer"
	ActionDeclareWar       DiplomaticAction = "declare_war"
	ActionSendAid          DiplomaticAction = "send_aid"
	ActionDemandTribute    DiplomaticAction = "demand_tribute"
)

// DiplomacyAction is a diplomatic move by SourceID toward TargetID.
type DiplomacyAction struct {
	SourceID string           `json:"sourceId"`
	TargetID string           `json:"targetId"`
	Action   DiplomaticAction `json:"action"`
}

// SpyMission names a mission in SendSpy.
type SpyMission string

const (
	MissionGatherIntel      SpyMission = "gather_intel"
	MissionSabotageIndustry SpyMission = "sabotage_industry"
	MissionStealTech        SpyMission = "steal_tech"
	MissionInciteUnrest     SpyMission = "incite_unrest"
)

// SendSpy runs an espionage mission against TargetID.
type SendSpy struct {
	SourceID string     `json:"sourceId"`
	TargetID string     `json:"targetId"`
	Mission  SpyMission `json:"mission"`
}

func (AdvanceTurn) Type() CommandType     { return CmdAdvanceTurn }
func (BuildBuilding) Type() CommandType   { return CmdBuildBuilding }
func (RecruitUnit) Type() CommandType     { return CmdRecruitUnit }
func (RecruitGeneral) Type() CommandType  { return CmdRecruitGeneral }
func (CreateArmy) Type() CommandType      { return CmdCreateArmy }
func (MoveArmy) Type() CommandType        { return CmdMoveArmy }
func (StartResearch) Type() CommandType   { return CmdStartResearch }
func (SelectTile) Type() CommandType      { return CmdSelectTile }
func (SelectArmy) Type() CommandType      { return CmdSelectArmy }
func (SelectNation) Type() CommandType    { return CmdSelectNation }
func (DismissMessage) Type() CommandType  { return CmdDismissMessage }
func (OpenModal) Type() CommandType       { return CmdOpenModal }
func (CloseModal) Type() CommandType      { return CmdCloseModal }
func (DiplomacyAction) Type() CommandType { return CmdDiplomacyAction }
func (SendSpy) Type() CommandType         { return CmdSendSpy }
