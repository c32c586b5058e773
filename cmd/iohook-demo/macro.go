package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zhaoq-v/iohook"
)

// macroEvent is the YAML-friendly projection of a VirtualEvent recorded by
// `record` and replayed by `replay`. A flat struct with yaml tags is used
// instead of tagging internal/model.VirtualEvent directly, since the data
// model is shared with every platform backend and has no reason to carry a
// demo-only serialization format.
type macroEvent struct {
	Type    uint8  `yaml:"type"`
	DeltaMS int64  `yaml:"delta_ms"`
	Mask    uint16 `yaml:"mask"`

	KeyCode uint16 `yaml:"key_code,omitempty"`
	RawCode uint32 `yaml:"raw_code,omitempty"`
	KeyChar uint16 `yaml:"key_char,omitempty"`

	Button int   `yaml:"button,omitempty"`
	Clicks int   `yaml:"clicks,omitempty"`
	X      int16 `yaml:"x,omitempty"`
	Y      int16 `yaml:"y,omitempty"`

	WheelType      uint8 `yaml:"wheel_type,omitempty"`
	Rotation       int16 `yaml:"rotation,omitempty"`
	Delta          int16 `yaml:"delta,omitempty"`
	WheelDirection uint8 `yaml:"wheel_direction,omitempty"`
}

func toMacroEvent(ev *iohook.VirtualEvent, deltaMS int64) macroEvent {
	return macroEvent{
		Type:           uint8(ev.Type),
		DeltaMS:        deltaMS,
		Mask:           uint16(ev.Mask),
		KeyCode:        uint16(ev.KeyCode),
		RawCode:        ev.RawCode,
		KeyChar:        ev.KeyChar,
		Button:         ev.Button,
		Clicks:         ev.Clicks,
		X:              ev.X,
		Y:              ev.Y,
		WheelType:      uint8(ev.WheelType),
		Rotation:       ev.Rotation,
		Delta:          ev.Delta,
		WheelDirection: uint8(ev.WheelDirection),
	}
}

func (m macroEvent) toVirtualEvent() *iohook.VirtualEvent {
	return &iohook.VirtualEvent{
		Type:           iohook.EventType(m.Type),
		Mask:           iohook.ModifierMask(m.Mask),
		KeyCode:        iohook.VirtualCode(m.KeyCode),
		RawCode:        m.RawCode,
		KeyChar:        m.KeyChar,
		Button:         m.Button,
		Clicks:         m.Clicks,
		X:              m.X,
		Y:              m.Y,
		WheelType:      iohook.WheelType(m.WheelType),
		Rotation:       m.Rotation,
		Delta:          m.Delta,
		WheelDirection: iohook.WheelDirection(m.WheelDirection),
	}
}

func saveMacro(path string, events []macroEvent) error {
	data, err := yaml.Marshal(events)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func loadMacro(path string) ([]macroEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var events []macroEvent
	if err := yaml.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}
