package it87

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeVoltageBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		raw    uint8
		scale  Scale
		wantMV int16
	}{
		{"zero count x1", 0, scale1, 0},
		{"zero count x4", 0, scale4, 0},
		{"full scale x1", 255, scale1, 4080},
		{"full scale x1.68", 255, scale168, 6854},
		{"full scale x4", 255, scale4, 16320},
		{"mid scale x1", 128, scale1, 2048},
		{"truncation x1.68", 1, scale168, 26}, // 16*1.68 = 26.88
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantMV, decodeVoltage(tt.raw, tt.scale))
		})
	}
}

func TestDecodeTemperatureSigned(t *testing.T) {
	assert.Equal(t, int16(0), decodeTemperature(0x00))
	assert.Equal(t, int16(127), decodeTemperature(0x7F))
	assert.Equal(t, int16(-128), decodeTemperature(0x80))
	assert.Equal(t, int16(-1), decodeTemperature(0xFF))
	assert.Equal(t, int16(42), decodeTemperature(42))
}

func TestDecodeFan8(t *testing.T) {
	tests := []struct {
		name    string
		count   uint8
		wantRPM int
	}{
		{"no pulses sentinel", 255, 0},
		{"spin-up count clamped", 0, 4440},
		{"spin-up count clamped", 1, 4440},
		{"typical count", 152, 4440},
		{"lowest unclamped count", 2, 337500},
		{"slow fan", 250, 2700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRPM, decodeFan8(tt.count))
		})
	}
}

func TestDecodeFan16(t *testing.T) {
	tests := []struct {
		name    string
		count   uint16
		wantRPM int
	}{
		{"stalled", 0, 0},
		{"low byte sentinel", 0x00FF, 0},
		{"all ones sentinel", 0xFFFF, 0},
		{"500 rpm", 1350, 500},
		{"fast fan", 225, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRPM, decodeFan16(tt.count))
		})
	}
}

func TestClampRPM(t *testing.T) {
	assert.Equal(t, int16(32767), clampRPM(337500))
	assert.Equal(t, int16(4440), clampRPM(4440))
	assert.Equal(t, int16(0), clampRPM(0))
}

func TestProfilesAreComplete(t *testing.T) {
	for id, p := range profiles {
		assert.Equal(t, Variant(id), p.Variant)
		assert.Equal(t, 9, p.VoltageChannels)
		assert.Equal(t, 3, p.TempChannels)
		if p.WideFanCounters {
			assert.Equal(t, 5, p.FanChannels)
		} else {
			assert.Equal(t, 3, p.FanChannels)
		}
	}
}
