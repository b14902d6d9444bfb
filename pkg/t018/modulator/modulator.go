// Package modulator implements the OQPSK chip-to-sample modulator
// (spec.md §4.6): spreading the frame's bits with the PRN generator,
// applying the mandated Tc/2 offset between I and Q, pulse-shaping each
// chip, and assembling the normalized, rotated complex baseband waveform.
package modulator

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/errs"
	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/frame"
	"github.com/moricef/ARM-SARSAT-SGB/pkg/t018/prn"
)

const (
	// ChipRate is the DSSS chip rate in chips/second (spec.md §4.6).
	ChipRate = 38400

	// MinSPS is the lowest oversampling factor spec.md §4.6 permits.
	MinSPS = 8

	// chipsPerBit is the number of PRN chips spreading each data bit
	// (spec.md §1, §4.6).
	chipsPerBit = 256

	// preambleBits is the preamble width. spec.md §4.6 names a 50-bit
	// preamble in prose but also requires exactly 300 total transmitted
	// bits and exactly 150 bits per channel after the even/odd split;
	// those two tested invariants only balance against the 252-bit frame
	// when the preamble is 48 bits (252+48=300). See DESIGN.md.
	preambleBits = 48

	// totalBits is the preamble plus frame bit count fed to the channel
	// splitter (spec.md §4.6: "Total transmitted bits = 300").
	totalBits = preambleBits + 252

	// bitsPerChannel is the per-channel bit count after the even/odd
	// split (spec.md §4.6).
	bitsPerChannel = totalBits / 2

	// chipsPerChannel is the per-channel chip count the PRN generator
	// produces for one burst.
	chipsPerChannel = bitsPerChannel * chipsPerBit
)

// PulseShape weights the sps samples a single chip expands into. Sample
// returns the pulse value at offset n within a chip's [0, sps) window.
// spec.md §9 leaves RRC shaping optional and undefined; this interface
// exists so a caller can supply one without changing OqpskModulator,
// but only HalfSinePulse ships here (spec.md §9: "the reference leaves
// RRC disabled").
type PulseShape interface {
	Sample(n, sps int) float64
}

// HalfSinePulse is the half-sine pulse spec.md §4.6 mandates:
// p[n] = sin(pi*n/sps).
type HalfSinePulse struct{}

func (HalfSinePulse) Sample(n, sps int) float64 {
	return math.Sin(math.Pi * float64(n) / float64(sps))
}

// Preamble returns the all-zero preamble bit sequence prepended to the
// frame before the channel split (spec.md §4.6, resolving §9's open
// question: all-zeros per T.018 §2.2.4).
func Preamble() []byte {
	return make([]byte, preambleBits)
}

// OqpskModulator turns a 252-bit frame into a complex baseband waveform.
type OqpskModulator struct {
	log   logrus.FieldLogger
	pulse PulseShape
}

// NewOqpskModulator constructs a modulator using HalfSinePulse. Pass a
// different PulseShape via WithPulseShape if a caller ever wires in an
// RRC shaper.
//
// Construction runs the PRN self-check (spec.md §4.3, §5): the core is a
// hard gate on it and must refuse to produce any burst when the LFSR
// output does not match the T.018 Table 2.2 reference vector.
func NewOqpskModulator(logger logrus.FieldLogger) (*OqpskModulator, error) {
	if err := prn.SelfCheck(); err != nil {
		return nil, err
	}
	return &OqpskModulator{log: logger, pulse: HalfSinePulse{}}, nil
}

// WithPulseShape overrides the modulator's pulse shape, returning m for
// chaining.
func (m *OqpskModulator) WithPulseShape(p PulseShape) *OqpskModulator {
	m.pulse = p
	return m
}

// SampleCount returns the exact number of complex samples Modulate
// produces for the given sps (spec.md §4.6: N = 38400 * sps).
func SampleCount(sps int) int {
	return ChipRate * sps
}

// Modulate spreads, offset-keys, and pulse-shapes f into buf, returning
// the number of complex samples written. buf must have length at least
// SampleCount(sps); otherwise Modulate returns errs.ErrBufferTooSmall
// before writing anything (spec.md §7).
func (m *OqpskModulator) Modulate(f frame.Frame, sps int, buf []complex64) (int, error) {
	if sps < MinSPS {
		return 0, fmt.Errorf("%w: sps=%d below minimum %d", errs.ErrConfigOutOfRange, sps, MinSPS)
	}
	n := SampleCount(sps)
	if len(buf) < n {
		return 0, fmt.Errorf("%w: need %d samples, got buffer of %d", errs.ErrBufferTooSmall, n, len(buf))
	}

	bits := transmittedBits(f)
	iBits, qBits := splitChannels(bits)

	iChips := spread(iBits, prn.NewGenerator(prn.ModeNormal, prn.ChannelI))
	qChips := spread(qBits, prn.NewGenerator(prn.ModeNormal, prn.ChannelQ))

	qDelay := sps / 2
	const invSqrt2 = 0.70710678118654752440
	rotCos, rotSin := invSqrt2, invSqrt2 // exp(j*pi/4)

	for i := 0; i < n; i++ {
		iVal := m.sampleAt(iChips, i, sps, 0)
		qVal := m.sampleAt(qChips, i, sps, qDelay)

		// 1. power normalization by 1/sqrt(2).
		iVal *= invSqrt2
		qVal *= invSqrt2

		// 2. constellation rotation by exp(j*pi/4).
		rotI := iVal*rotCos - qVal*rotSin
		rotQ := iVal*rotSin + qVal*rotCos

		buf[i] = complex(float32(rotI), float32(rotQ))
	}

	m.log.WithFields(logrus.Fields{"sps": sps, "samples": n}).Debug("frame modulated")
	return n, nil
}

// sampleAt computes one channel's pulse-shaped sample value at global
// buffer index n, with the channel's stream shifted earlier by delay
// samples (spec.md §4.6's OQPSK offset: delay=0 for I, delay=sps/2 for
// Q). Chip indices that fall outside the channel's chip stream — which
// only happens for Q at the trailing edge, per spec.md §4.6's "allowed
// up to the buffer limit" — contribute silence.
func (m *OqpskModulator) sampleAt(chips []int8, n, sps, delay int) float64 {
	shifted := n + delay
	chipIndex := shifted / sps
	offset := shifted % sps
	if chipIndex >= len(chips) {
		return 0
	}
	return float64(chips[chipIndex]) * m.pulse.Sample(offset, sps)
}

// transmittedBits prepends the preamble to the frame, as 0/1 bytes.
func transmittedBits(f frame.Frame) []byte {
	bits := make([]byte, 0, totalBits)
	bits = append(bits, Preamble()...)
	bits = append(bits, f[:]...)
	return bits
}

// splitChannels demultiplexes bits by position parity: even indices feed
// I, odd indices feed Q (spec.md §4.6).
func splitChannels(bits []byte) (iBits, qBits []byte) {
	iBits = make([]byte, 0, bitsPerChannel)
	qBits = make([]byte, 0, bitsPerChannel)
	for i, b := range bits {
		if i%2 == 0 {
			iBits = append(iBits, b)
		} else {
			qBits = append(qBits, b)
		}
	}
	return iBits, qBits
}

// spread pulls 256 chips per data bit from gen and negates the run when
// the bit is 1 (spec.md §4.6, resolving §9's spreading-polarity note:
// "bit = 1 inverts PRN, bit = 0 preserves it").
func spread(bits []byte, gen *prn.Generator) []int8 {
	chips := make([]int8, 0, len(bits)*chipsPerBit)
	for _, b := range bits {
		run := gen.Generate(chipsPerBit)
		if b == 1 {
			for i, c := range run {
				run[i] = -c
			}
		}
		chips = append(chips, run...)
	}
	return chips
}
