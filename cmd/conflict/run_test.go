package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"global-conflict/internal/catalog"
	"global-conflict/internal/entropy"
	"global-conflict/internal/game"
	"global-conflict/internal/protocol"
	"global-conflict/pkg/maps"
)

const testScript = `# recruit, then a bad move, then a turn
{"type":"recruit_unit","id":"1","payload":{"countryId":"c_0","unitId":"soldier","amount":5}}

{"type":"move_army","id":"2","payload":{"armyId":"army_ghost","targetTileId":"1,0"}}
{"type":"next_turn","id":"3"}
`

func TestReplayScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(testScript), 0o644))

	state, err := maps.GenerateInitialState(0, maps.GeneratorOptions{Seed: 7})
	require.NoError(t, err)
	e := game.NewEngine(game.WithRand(entropy.NewSeeded(7)))

	var errOut bytes.Buffer
	next, err := replay(e, state, path, &errOut, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, 2, next.Turn)
	assert.Equal(t, 55, next.Nations["c_0"].Units[catalog.UnitSoldier])

	var reply protocol.Message
	require.NoError(t, json.Unmarshal(errOut.Bytes(), &reply))
	assert.Equal(t, protocol.TypeError, reply.Type)
	var payload protocol.ErrorPayload
	require.NoError(t, reply.ParsePayload(&payload))
	assert.Equal(t, protocol.ErrCodeUnknownEntity, payload.Code)
	assert.Equal(t, "2", payload.Command)
}

func TestReplayRejectsMalformedLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{\"type\":\"teleport\",\"id\":\"1\"}\n"), 0o644))

	state, err := maps.GenerateInitialState(0, maps.GeneratorOptions{Seed: 7})
	require.NoError(t, err)

	_, err = replay(game.NewEngine(), state, path, &bytes.Buffer{}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.jsonl:1")
	assert.ErrorIs(t, err, game.ErrUnknownCommand)
}

func TestPrintReport(t *testing.T) {
	state, err := maps.GenerateInitialState(0, maps.GeneratorOptions{Seed: 7})
	require.NoError(t, err)

	var out bytes.Buffer
	printReport(&out, catalog.Default(), state)
	report := out.String()

	assert.True(t, strings.HasPrefix(report, "Turn 1, January 2027\n"))
	assert.Contains(t, report, "United States (you)")
	assert.Regexp(t, `Money\s+3,300\s`, report)
	// Starting intel of 10 reveals nothing about rivals.
	assert.Contains(t, report, "China (intel 10%)")
	assert.Contains(t, report, "Treasury   ???")
	assert.Contains(t, report, "Global Conflict Imminent")
}

func TestPrintCatalog(t *testing.T) {
	var out bytes.Buffer
	printCatalog(&out, catalog.Default())

	assert.Contains(t, out.String(), "Research Lab")
	assert.Contains(t, out.String(), "$1,000,000")
	assert.Contains(t, out.String(), "after [ai_research, stealth_tech]")
}
