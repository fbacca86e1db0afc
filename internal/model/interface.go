package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Argument is a single input or output of an interface entry
type Argument struct {
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	InternalType string     `json:"internalType,omitempty"`
	Indexed      bool       `json:"indexed,omitempty"`
	Components   []Argument `json:"components,omitempty"`
}

// InterfaceEntry is one callable or event signature of a contract (an ABI entry)
type InterfaceEntry struct {
	Type            string     `json:"type"`
	Name            string     `json:"name,omitempty"`
	Inputs          []Argument `json:"inputs,omitempty"`
	Outputs         []Argument `json:"outputs,omitempty"`
	StateMutability string     `json:"stateMutability,omitempty"`
	Anonymous       bool       `json:"anonymous,omitempty"`
}

// InterfaceDefinition is the ordered list of entries a contract exposes
type InterfaceDefinition []InterfaceEntry

// DecodeInterface decodes a JSON ABI document
func DecodeInterface(raw []byte) (InterfaceDefinition, error) {
	var def InterfaceDefinition
	if err := json.Unmarshal(raw, &def); err != nil {
		return nil, fmt.Errorf("failed to decode interface definition: %w", err)
	}
	return def, nil
}

// Len returns the number of entries
func (d InterfaceDefinition) Len() int {
	return len(d)
}

// Functions returns the names of the function entries in declaration order
func (d InterfaceDefinition) Functions() []string {
	var names []string
	for _, e := range d {
		if e.Type == "function" {
			names = append(names, e.Name)
		}
	}
	return names
}

// Events returns the names of the event entries in declaration order
func (d InterfaceDefinition) Events() []string {
	var names []string
	for _, e := range d {
		if e.Type == "event" {
			names = append(names, e.Name)
		}
	}
	return names
}

// Parse converts the definition into a go-ethereum ABI, which validates every type string
func (d InterfaceDefinition) Parse() (abi.ABI, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to encode interface definition: %w", err)
	}
	parsed, err := abi.JSON(bytes.NewReader(raw))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("invalid interface definition: %w", err)
	}
	return parsed, nil
}

// Clone returns a deep copy
func (d InterfaceDefinition) Clone() InterfaceDefinition {
	if d == nil {
		return nil
	}
	out := make(InterfaceDefinition, len(d))
	for i, e := range d {
		out[i] = e
		out[i].Inputs = cloneArguments(e.Inputs)
		out[i].Outputs = cloneArguments(e.Outputs)
	}
	return out
}

func cloneArguments(args []Argument) []Argument {
	if args == nil {
		return nil
	}
	out := make([]Argument, len(args))
	for i, a := range args {
		out[i] = a
		out[i].Components = cloneArguments(a.Components)
	}
	return out
}
