// Package frame assembles the 252-bit T.018 logical frame from a beacon
// configuration: the information block (spec.md §4.4), its BCH(250,202)
// parity (via pkg/t018/bch), and the rotating-field slot (via
// pkg/t018/rotatingfield).
//
// FrameBuilder takes a logrus.FieldLogger the way pkg/caster.NewCaster
// does, rather than reaching for a package-level logger.
package frame

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/bch"
	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/bitfield"
	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/corestate"
	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/errs"
	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/position"
	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/prn"
	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/rotatingfield"
)

// BeaconType selects the beacon class, which drives the vessel-ID layout
// and the rotating-field kind default (spec.md §3, §4.4).
type BeaconType int

const (
	BeaconEPIRB BeaconType = iota
	BeaconPLB
	BeaconELT
	BeaconELTDT
)

// TestMode selects the beacon's operating mode (spec.md §3).
type TestMode int

const (
	Exercise TestMode = iota
	Test
)

// VesselID carries the beacon-type-specific identity fields that fill
// T.018 bits 94–137 (spec.md §4.4).
type VesselID struct {
	MMSI            uint32 // 30 bits, EPIRB
	AircraftAddress uint32 // 24 bits, ELT / ELT-DT
	AISIdentity     uint16 // 14 bits, EPIRB-AIS; 0 when unused
}

// RotatingFieldConfig carries the per-kind inputs the rotating-field slot
// needs (spec.md §4.5). KindOverride selects RLS or CANCEL explicitly;
// left nil, the kind defaults to G008 (or ELT-DT when BeaconType is
// BeaconELTDT) per spec.md §4.4's "Rotating-field kind choice".
type RotatingFieldConfig struct {
	KindOverride *rotatingfield.Kind

	// G008 inputs.
	ElapsedActivationHours int
	MinutesSinceLastFix    int

	// ELT-DT inputs: current wall time, supplied by the caller (spec.md
	// §6: "Current wall time ... only when RotatingField kind = ELT-DT").
	UTCDay, UTCHour, UTCMinute int

	// RLS inputs.
	RLSProviderID uint8
	RLSPayload    uint64

	// CANCEL inputs.
	CancelDeactivationMethod uint8
}

// BeaconConfig is the immutable input to FrameBuilder.Build (spec.md §3).
type BeaconConfig struct {
	BeaconType    BeaconType
	CountryCode   int // [0, 1023]
	TACNumber     int // [0, 65535]
	SerialNumber  int // [0, 16383]
	TestMode      TestMode
	Position      position.Fix
	VesselID      VesselID
	RotatingField RotatingFieldConfig
}

func (c BeaconConfig) validate() error {
	if c.BeaconType < BeaconEPIRB || c.BeaconType > BeaconELTDT {
		return fmt.Errorf("%w: beacon_type=%d", errs.ErrConfigOutOfRange, c.BeaconType)
	}
	if c.TestMode < Exercise || c.TestMode > Test {
		return fmt.Errorf("%w: test_mode=%d", errs.ErrConfigOutOfRange, c.TestMode)
	}
	if c.CountryCode < 0 || c.CountryCode > 1023 {
		return fmt.Errorf("%w: country_code=%d", errs.ErrConfigOutOfRange, c.CountryCode)
	}
	if c.TACNumber < 0 || c.TACNumber > 65535 {
		return fmt.Errorf("%w: tac_number=%d", errs.ErrConfigOutOfRange, c.TACNumber)
	}
	if c.SerialNumber < 0 || c.SerialNumber > 16383 {
		return fmt.Errorf("%w: serial_number=%d", errs.ErrConfigOutOfRange, c.SerialNumber)
	}
	if c.VesselID.MMSI >= 1<<30 {
		return fmt.Errorf("%w: mmsi=%d", errs.ErrConfigOutOfRange, c.VesselID.MMSI)
	}
	if c.VesselID.AircraftAddress >= 1<<24 {
		return fmt.Errorf("%w: aircraft_address=%d", errs.ErrConfigOutOfRange, c.VesselID.AircraftAddress)
	}
	if c.VesselID.AISIdentity >= 1<<14 {
		return fmt.Errorf("%w: ais_identity=%d", errs.ErrConfigOutOfRange, c.VesselID.AISIdentity)
	}
	return c.Position.Validate()
}

// Frame is the 252-bit T.018 logical frame, one bit per byte (spec.md §3).
type Frame [252]byte

// bits returns a bitfield.Bits view over f, for the packing helpers.
func (f *Frame) bits() bitfield.Bits { return bitfield.Bits(f[:]) }

const (
	infoBits       = bch.InfoBits // 202
	parityBits     = bch.ParityBits
	headerBits     = 2
	infoFrameStart = headerBits
)

// FrameBuilder assembles frames from a BeaconConfig. It is a plain struct,
// not a package singleton: create one per process and reuse it across
// bursts.
type FrameBuilder struct {
	log logrus.FieldLogger
}

// NewFrameBuilder constructs a FrameBuilder. logger must not be nil; pass
// logrus.StandardLogger() if the caller has no preference.
//
// Construction runs the PRN self-check (spec.md §4.3, §5): the core is a
// hard gate on it and must refuse to produce any burst — frame or
// modulated waveform — when the LFSR output does not match the T.018
// Table 2.2 reference vector.
func NewFrameBuilder(logger logrus.FieldLogger) (*FrameBuilder, error) {
	if err := prn.SelfCheck(); err != nil {
		return nil, err
	}
	return &FrameBuilder{log: logger}, nil
}

// Build assembles one 252-bit frame from config, consuming and advancing
// state's burst counter (spec.md §4.4). It validates config first
// (errs.ErrConfigOutOfRange on any field out of range) and verifies its
// own BCH parity before returning (errs.ErrBchInvariantBroken on failure —
// an encoder bug, never expected to trigger).
func (fb *FrameBuilder) Build(config BeaconConfig, state *corestate.State) (Frame, error) {
	if err := config.validate(); err != nil {
		return Frame{}, err
	}

	burstCounter, correlationID := state.NextBurst()
	log := fb.log.WithFields(logrus.Fields{
		"correlation_id": correlationID,
		"burst_counter":  burstCounter,
		"beacon_type":    config.BeaconType,
	})

	info := make(bitfield.Bits, infoBits)
	fb.writeIdentity(info, config)
	fb.writeTestProtocolAndPosition(info, config)
	fb.writeVesselID(info, config)
	fb.writeSpare(info)
	fb.writeRotatingField(info, config, burstCounter)

	parity := bch.Compute(toInts(info))

	var frame Frame
	frame.bits()[0] = headerBit(config.TestMode)
	frame.bits()[1] = 0
	copy(frame.bits()[infoFrameStart:infoFrameStart+infoBits], info)
	for i, p := range parity {
		frame.bits()[infoFrameStart+infoBits+i] = byte(p)
	}

	if !bch.Verify(toInts(info), parity) {
		return Frame{}, errs.ErrBchInvariantBroken
	}

	log.Debug("frame built")
	return frame, nil
}

func headerBit(mode TestMode) byte {
	if mode == Test {
		return 1
	}
	return 0
}

// writeIdentity fills T.018 bits 1..42 (TAC, serial, country code, homing
// status, RLS capability — position and test-protocol flag are written
// separately by writeTestProtocolAndPosition).
func (fb *FrameBuilder) writeIdentity(info bitfield.Bits, config BeaconConfig) {
	tac := config.TACNumber
	if config.TestMode == Test {
		tac = 9999
	}
	bitfield.SetUint(info, 0, 16, uint64(tac))
	bitfield.SetUint(info, 16, 14, uint64(config.SerialNumber)&0x3FFF)
	bitfield.SetUint(info, 30, 10, uint64(config.CountryCode))
	bitfield.SetUint(info, 40, 1, 0) // homing-device status
	bitfield.SetUint(info, 41, 1, 1) // RLS capability
}

// writeTestProtocolAndPosition fills T.018 bits 43..90: the test-protocol
// flag and the 47-bit PositionCodec output.
func (fb *FrameBuilder) writeTestProtocolAndPosition(info bitfield.Bits, config BeaconConfig) {
	var flag uint64
	if config.TestMode == Test {
		flag = 1
	}
	bitfield.SetUint(info, 42, 1, flag)

	enc := position.Encode(config.Position)
	bitfield.SetUint(info, 43, 23, enc.Latitude)
	bitfield.SetUint(info, 66, 24, enc.Longitude)
}

// writeVesselID fills T.018 bits 91..140: vessel-ID type, vessel ID,
// EPIRB-AIS identity, and the beacon-type ordinal.
func (fb *FrameBuilder) writeVesselID(info bitfield.Bits, config BeaconConfig) {
	var vesselType uint64
	var vesselID uint64

	switch config.BeaconType {
	case BeaconEPIRB:
		vesselType = 1
		vesselID = uint64(config.VesselID.MMSI)
	case BeaconELT, BeaconELTDT:
		vesselType = 2
		vesselID = uint64(config.VesselID.AircraftAddress)
	default: // BeaconPLB
		vesselType = 0
		vesselID = 0
	}

	bitfield.SetUint(info, 90, 3, vesselType)
	bitfield.SetUint(info, 93, 30, vesselID)
	bitfield.SetUint(info, 123, 14, uint64(config.VesselID.AISIdentity))
	bitfield.SetUint(info, 137, 3, uint64(config.BeaconType))
}

// writeSpare fills the 14-bit all-ones spare field, T.018 bits 141..154
// (spec.md §3 invariant).
func (fb *FrameBuilder) writeSpare(info bitfield.Bits) {
	bitfield.SetAllOnes(info, 140, 14)
}

// writeRotatingField selects the rotating-field variant (spec.md §4.4
// "Rotating-field kind choice") and fills T.018 bits 155..202.
func (fb *FrameBuilder) writeRotatingField(info bitfield.Bits, config BeaconConfig, burstCounter uint32) {
	kind := rotatingfield.KindG008
	if config.BeaconType == BeaconELTDT {
		kind = rotatingfield.KindELTDT
	}
	if config.RotatingField.KindOverride != nil {
		kind = *config.RotatingField.KindOverride
	}

	altitudeCode := position.EncodeAltitude(config.Position.Altitude)

	var slot bitfield.Bits
	switch kind {
	case rotatingfield.KindELTDT:
		slot = rotatingfield.EncodeELTDT(rotatingfield.ELTDTInput{
			Day:          config.RotatingField.UTCDay,
			Hour:         config.RotatingField.UTCHour,
			Minute:       config.RotatingField.UTCMinute,
			AltitudeCode: int(altitudeCode),
		})
	case rotatingfield.KindRLS:
		slot = rotatingfield.EncodeRLS(rotatingfield.RLSInput{
			ProviderID: config.RotatingField.RLSProviderID,
			Payload:    config.RotatingField.RLSPayload,
		})
	case rotatingfield.KindCancel:
		slot = rotatingfield.EncodeCancel(rotatingfield.CancelInput{
			DeactivationMethod: config.RotatingField.CancelDeactivationMethod,
		})
	default: // rotatingfield.KindG008
		slot = rotatingfield.EncodeG008(rotatingfield.G008Input{
			ElapsedActivationHours: config.RotatingField.ElapsedActivationHours,
			MinutesSinceLastFix:    config.RotatingField.MinutesSinceLastFix,
			AltitudeCode:           int(altitudeCode),
			TestMode:               config.TestMode == Test,
			BurstCounter:           burstCounter,
		})
	}

	copy(info[154:202], slot)
}

func toInts(b bitfield.Bits) []int {
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}
