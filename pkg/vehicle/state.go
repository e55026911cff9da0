package vehicle

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Position is the last location reported by the vehicle.
type Position struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Heading   *float64 `json:"heading"`
	Timestamp string   `json:"timestamp"`
}

// Status is a snapshot of the vehicle state. Fields the vehicle did not report are nil or empty.
type Status struct {
	Odometer               *float64          `json:"odometer"`
	TripMeter1             *float64          `json:"tripMeter1"`
	TripMeter2             *float64          `json:"tripMeter2"`
	DistanceToEmpty        *float64          `json:"distanceToEmpty"`
	FuelAmount             *float64          `json:"fuelAmount"`
	FuelAmountLevel        *float64          `json:"fuelAmountLevel"`
	AverageFuelConsumption *float64          `json:"averageFuelConsumption"`
	BatteryChargeLevel     *float64          `json:"batteryChargeLevel"`
	EngineRunning          *bool             `json:"engineRunning"`
	CarLocked              *bool             `json:"carLocked"`
	TailgateOpen           *bool             `json:"tailgateOpen"`
	SunroofOpen            *bool             `json:"sunroofOpen"`
	ServiceWarning         *string           `json:"serviceWarning"`
	WasherFluidLevel       *string           `json:"washerFluidLevel"`
	BrakeFluid             *string           `json:"brakeFluid"`
	Doors                  map[string]bool   `json:"doors"`
	Windows                map[string]bool   `json:"windows"`
	TyrePressure           map[string]string `json:"tyrePressure"`
	UpdatedAt              *string           `json:"updatedAt"`
	Position               *Position         `json:"position"`
}

// Attribute is a single rendered status value.
type Attribute struct {
	Name  string
	Value string
}

// Attributes renders every field of s, sorted by snake_case name. Missing values are rendered as
// "None", booleans as "True" or "False", and structured values as indented JSON. A reported empty
// string is rendered as an empty value.
func (s Status) Attributes() ([]Attribute, error) {
	encoded, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()
	var fields map[string]interface{}
	if err := decoder.Decode(&fields); err != nil {
		return nil, err
	}

	attributes := make([]Attribute, 0, len(fields))
	for name, value := range fields {
		rendered, err := renderValue(value)
		if err != nil {
			return nil, fmt.Errorf("error rendering %s: %w", name, err)
		}
		attributes = append(attributes, Attribute{Name: snakeCase(name), Value: rendered})
	}
	sort.Slice(attributes, func(i, j int) bool {
		return attributes[i].Name < attributes[j].Name
	})
	return attributes, nil
}

// Attributes renders the status retrieved by the most recent call to [Vehicle.Update].
func (v *Vehicle) Attributes() ([]Attribute, error) {
	status, err := v.Status()
	if err != nil {
		return nil, err
	}
	return status.Attributes()
}

func renderValue(value interface{}) (string, error) {
	switch value := value.(type) {
	case nil:
		return "None", nil
	case string:
		return value, nil
	case json.Number:
		return value.String(), nil
	case bool:
		if value {
			return "True", nil
		}
		return "False", nil
	default:
		encoded, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return "", err
		}
		return string(encoded), nil
	}
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
