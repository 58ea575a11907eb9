// Package protocol defines the JSON envelope used to feed commands to the
// engine from scripts and other processes.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"global-conflict/internal/game"
)

// MessageType identifies the type of message. Command messages use the
// engine's command type strings.
type MessageType string

// System message types
const (
	TypeError MessageType = "error"
)

// Message is the envelope for all messages.
type Message struct {
	Type      MessageType     `json:"type"`
	ID        string          `json:"id"`
	Timestamp int64           `json:"timestamp,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// NewMessage creates a new message with the given type and payload.
func NewMessage(msgType MessageType, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:      msgType,
		ID:        uuid.New().String(),
		Timestamp: time.Now().UnixMilli(),
		Payload:   data,
	}, nil
}

// ParsePayload unmarshals the payload into the given type.
func (m *Message) ParsePayload(v interface{}) error {
	return json.Unmarshal(m.Payload, v)
}

// EncodeCommand wraps a command in an envelope.
func EncodeCommand(cmd game.Command) (*Message, error) {
	if _, ok := decoders[cmd.Type()]; !ok {
		return nil, fmt.Errorf("encode %s: %w", cmd.Type(), game.ErrUnknownCommand)
	}
	return NewMessage(MessageType(cmd.Type()), cmd)
}

// DecodeCommand extracts the command carried by an envelope.
func DecodeCommand(m *Message) (game.Command, error) {
	decode, ok := decoders[game.CommandType(m.Type)]
	if !ok {
		return nil, fmt.Errorf("decode %q: %w", m.Type, game.ErrUnknownCommand)
	}
	cmd, err := decode(m.Payload)
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", m.Type, err)
	}
	return cmd, nil
}

// ErrorCode represents an error type.
type ErrorCode string

const (
	ErrCodeUnknownEntity     ErrorCode = "unknown_entity"
	ErrCodeUnknownDefinition ErrorCode = "unknown_definition"
	ErrCodeReserveExceeded   ErrorCode = "reserve_exceeded"
	ErrCodeGeneralBusy       ErrorCode = "general_unavailable"
	ErrCodeInvalidAmount     ErrorCode = "invalid_amount"
	ErrCodeUnknownCommand    ErrorCode = "unknown_command"
	ErrCodeInternalError     ErrorCode = "internal_error"
)

// ErrorPayload is the payload for error messages.
type ErrorPayload struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Command string    `json:"command,omitempty"` // ID of the failed command message
}

// CodeFor classifies an engine error.
func CodeFor(err error) ErrorCode {
	switch {
	case errors.Is(err, game.ErrUnknownNation), errors.Is(err, game.ErrUnknownArmy),
		errors.Is(err, game.ErrUnknownGeneral), errors.Is(err, game.ErrUnknownTile):
		return ErrCodeUnknownEntity
	case errors.Is(err, game.ErrUnknownDefinition), errors.Is(err, game.ErrUnknownAction):
		return ErrCodeUnknownDefinition
	case errors.Is(err, game.ErrReserveExceeded):
		return ErrCodeReserveExceeded
	case errors.Is(err, game.ErrGeneralUnavailable):
		return ErrCodeGeneralBusy
	case errors.Is(err, game.ErrInvalidAmount), errors.Is(err, game.ErrEmptyArmy):
		return ErrCodeInvalidAmount
	case errors.Is(err, game.ErrUnknownCommand):
		return ErrCodeUnknownCommand
	default:
		return ErrCodeInternalError
	}
}

// NewErrorMessage builds an error envelope answering the command message
// with the given id.
func NewErrorMessage(commandID string, err error) (*Message, error) {
	return NewMessage(TypeError, ErrorPayload{
		Code:    CodeFor(err),
		Message: err.Error(),
		Command: commandID,
	})
}
