package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/frame"
)

const sampleYAML = `
beacon_type: epirb
country_code: 227
tac_number: 1234
serial_number: 13398
test_mode: test
position:
  latitude: 43.2
  longitude: 5.4
  valid: true
vessel_id:
  mmsi: 123456789
rotating_field:
  kind: g008
  elapsed_activation_hours: 5
`

func TestLoadParsesProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beacon.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	config, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, frame.BeaconEPIRB, config.BeaconType)
	assert.Equal(t, 227, config.CountryCode)
	assert.Equal(t, frame.Test, config.TestMode)
	assert.True(t, config.Position.Valid)
	assert.Equal(t, uint32(123456789), config.VesselID.MMSI)
	assert.NotNil(t, config.RotatingField.KindOverride)
}

func TestLoadRejectsUnknownBeaconType(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "beacon.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("beacon_type: bogus\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/beacon.yaml")
	assert.Error(t, err)
}
