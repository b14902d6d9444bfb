// Package config loads a beacon profile from a YAML file into a
// frame.BeaconConfig, grounded on
// doismellburning-samoyed/src/deviceid.go's gopkg.in/yaml.v3.Unmarshal
// use for device profile data (here given a concrete struct rather than
// a map[string]interface{}, since the beacon profile's shape is fixed).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/frame"
	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/position"
	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/rotatingfield"
)

// BeaconProfile is the on-disk YAML shape of a beacon configuration. It
// mirrors frame.BeaconConfig except that enums are strings and the ELT-DT
// UTC day/hour/minute inputs are absent (ToBeaconConfig leaves them zero);
// ToBeaconConfig converts it.
type BeaconProfile struct {
	BeaconType   string `yaml:"beacon_type"`
	CountryCode  int    `yaml:"country_code"`
	TACNumber    int    `yaml:"tac_number"`
	SerialNumber int    `yaml:"serial_number"`
	TestMode     string `yaml:"test_mode"`

	Position struct {
		Latitude  float64 `yaml:"latitude"`
		Longitude float64 `yaml:"longitude"`
		Altitude  float64 `yaml:"altitude"`
		Valid     bool    `yaml:"valid"`
	} `yaml:"position"`

	VesselID struct {
		MMSI            uint32 `yaml:"mmsi"`
		AircraftAddress uint32 `yaml:"aircraft_address"`
		AISIdentity     uint16 `yaml:"ais_identity"`
	} `yaml:"vessel_id"`

	RotatingField struct {
		Kind                     string `yaml:"kind"` // "", "g008", "elt-dt", "rls", "cancel"
		ElapsedActivationHours   int    `yaml:"elapsed_activation_hours"`
		MinutesSinceLastFix      int    `yaml:"minutes_since_last_fix"`
		RLSProviderID            uint8  `yaml:"rls_provider_id"`
		RLSPayload               uint64 `yaml:"rls_payload"`
		CancelDeactivationMethod uint8  `yaml:"cancel_deactivation_method"`
	} `yaml:"rotating_field"`
}

// Load reads and parses a beacon profile YAML file at path.
func Load(path string) (frame.BeaconConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return frame.BeaconConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var profile BeaconProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return frame.BeaconConfig{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return profile.ToBeaconConfig()
}

// ToBeaconConfig converts a parsed profile into a frame.BeaconConfig.
func (p BeaconProfile) ToBeaconConfig() (frame.BeaconConfig, error) {
	beaconType, err := parseBeaconType(p.BeaconType)
	if err != nil {
		return frame.BeaconConfig{}, err
	}

	config := frame.BeaconConfig{
		BeaconType:   beaconType,
		CountryCode:  p.CountryCode,
		TACNumber:    p.TACNumber,
		SerialNumber: p.SerialNumber,
		TestMode:     parseTestMode(p.TestMode),
		Position: position.Fix{
			Latitude:  p.Position.Latitude,
			Longitude: p.Position.Longitude,
			Altitude:  p.Position.Altitude,
			Valid:     p.Position.Valid,
		},
		VesselID: frame.VesselID{
			MMSI:            p.VesselID.MMSI,
			AircraftAddress: p.VesselID.AircraftAddress,
			AISIdentity:     p.VesselID.AISIdentity,
		},
		RotatingField: frame.RotatingFieldConfig{
			ElapsedActivationHours:   p.RotatingField.ElapsedActivationHours,
			MinutesSinceLastFix:      p.RotatingField.MinutesSinceLastFix,
			RLSProviderID:            p.RotatingField.RLSProviderID,
			RLSPayload:               p.RotatingField.RLSPayload,
			CancelDeactivationMethod: p.RotatingField.CancelDeactivationMethod,
		},
	}

	if kind, ok := parseRotatingFieldKind(p.RotatingField.Kind); ok {
		config.RotatingField.KindOverride = &kind
	}

	return config, nil
}

func parseBeaconType(s string) (frame.BeaconType, error) {
	switch s {
	case "epirb", "":
		return frame.BeaconEPIRB, nil
	case "plb":
		return frame.BeaconPLB, nil
	case "elt":
		return frame.BeaconELT, nil
	case "elt-dt":
		return frame.BeaconELTDT, nil
	default:
		return 0, fmt.Errorf("config: unknown beacon_type %q", s)
	}
}

func parseTestMode(s string) frame.TestMode {
	if s == "test" {
		return frame.Test
	}
	return frame.Exercise
}

func parseRotatingFieldKind(s string) (rotatingfield.Kind, bool) {
	switch s {
	case "rls":
		return rotatingfield.KindRLS, true
	case "cancel":
		return rotatingfield.KindCancel, true
	case "g008":
		return rotatingfield.KindG008, true
	case "elt-dt":
		return rotatingfield.KindELTDT, true
	default:
		return 0, false
	}
}
