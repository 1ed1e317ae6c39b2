package models

import (
	"encoding/json"
	"fmt"
)

// Frame is a window or display frame as the backend reports it. The
// backend speaks floats; pixel conversion happens on our side.
type Frame struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

// Window is one window record from a dump response.
type Window struct {
	ID       uint32 `json:"id"`
	AppClass string `json:"appClass"`
	Frame    *Frame `json:"frame"` // nil when the backend could not read geometry
	Visible  bool   `json:"visible"`
	Focused  bool   `json:"focused"`
}

// Display describes the logical screen the backend manages.
type Display struct {
	Frame Frame `json:"frame"`
}

// Dump is the full window-manager state for one invocation.
type Dump struct {
	Windows []Window `json:"windows"`
	Display Display  `json:"display"`
}

// ParseDump parses the dump result into a Dump struct
func ParseDump(result map[string]interface{}) (*Dump, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dump: %w", err)
	}

	var dump Dump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dump: %w", err)
	}

	return &dump, nil
}

// FormatFrame returns a formatted string representation of the window frame
func (w *Window) FormatFrame() string {
	if w.Frame == nil {
		return "-"
	}
	return fmt.Sprintf("%.0fx%.0f @ (%.0f, %.0f)", w.Frame.Width, w.Frame.Height, w.Frame.X, w.Frame.Y)
}
