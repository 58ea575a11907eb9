package protocol

import (
	"encoding/json"

	"global-conflict/internal/game"
)

// decoders maps each command type to a function that decodes its payload.
var decoders = map[game.CommandType]func(json.RawMessage) (game.Command, error){
	game.CmdAdvanceTurn:     decodeAs[game.AdvanceTurn],
	game.CmdBuildBuilding:   decodeAs[game.BuildBuilding],
	game.CmdRecruitUnit:     decodeAs[game.RecruitUnit],
	game.CmdRecruitGeneral:  decodeAs[game.RecruitGeneral],
	game.CmdCreateArmy:      decodeAs[game.CreateArmy],
	game.CmdMoveArmy:        decodeAs[game.MoveArmy],
	game.CmdStartResearch:   decodeAs[game.StartResearch],
	game.CmdSelectTile:      decodeAs[game.SelectTile],
	game.CmdSelectArmy:      decodeAs[game.SelectArmy],
	game.CmdSelectNation:    decodeAs[game.SelectNation],
	game.CmdDismissMessage:  decodeAs[game.DismissMessage],
	game.CmdOpenModal:       decodeAs[game.OpenModal],
	game.CmdCloseModal:      decodeAs[game.CloseModal],
	game.CmdDiplomacyAction: decodeAs[game.DiplomacyAction],
	game.CmdSendSpy:         decodeAs[game.SendSpy],
}

// decodeAs decodes a payload into a command value. An empty payload yields
// the zero value, so commands without fields may omit it.
func decodeAs[T game.Command](payload json.RawMessage) (game.Command, error) {
	var cmd T
	if len(payload) == 0 || string(payload) == "null" {
		return cmd, nil
	}
	if err := json.Unmarshal(payload, &cmd); err != nil {
		return nil, err
	}
	return cmd, nil
}

// CommandTypes returns every command type the codec understands.
func CommandTypes() []game.CommandType {
	out := make([]game.CommandType, 0, len(decoders))
	for t := range decoders {
		out = append(out, t)
	}
	return out
}
