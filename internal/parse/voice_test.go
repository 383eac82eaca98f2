package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var voiceNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func TestParseVoiceCommand_FullSentence(t *testing.T) {
	cmd := parseVoiceCommandAt("Adicionar 5 kg de leite com validade em 3 dias", voiceNow)

	assert.Equal(t, "Leite", cmd.Name)
	assert.Equal(t, "5", cmd.Quantity)
	assert.Equal(t, "kg", cmd.Unit)
	if assert.NotNil(t, cmd.ExpiryDays) {
		assert.Equal(t, 3, *cmd.ExpiryDays)
	}
	assert.Equal(t, "2026-03-13", cmd.ExpiryDate)
}

func TestParseVoiceCommand_Units(t *testing.T) {
	cases := []struct {
		text     string
		quantity string
		unit     string
	}{
		{"adicionar 2 litros de leite", "2", "L"},
		{"adicionar 500 ml de natas", "500", "ml"},
		{"adicionar 3 unidades de iogurte", "3", "un"},
		{"adicionar 4 peças de fruta", "4", "un"},
		{"adicionar 2 pacotes de arroz", "2", "un"},
		{"adicionar 1,5 kg de farinha", "1.5", "kg"},
	}
	for _, tc := range cases {
		cmd := parseVoiceCommandAt(tc.text, voiceNow)
		assert.Equal(t, tc.quantity, cmd.Quantity, tc.text)
		assert.Equal(t, tc.unit, cmd.Unit, tc.text)
	}
}

func TestParseVoiceCommand_BareNumberDefaultsToUnits(t *testing.T) {
	cmd := parseVoiceCommandAt("3 ovos", voiceNow)
	assert.Equal(t, "3", cmd.Quantity)
	assert.Equal(t, "un", cmd.Unit)
	assert.Equal(t, "Ovos", cmd.Name)
}

func TestParseVoiceCommand_RelativeDays(t *testing.T) {
	hoje := parseVoiceCommandAt("adicionar leite válido hoje", voiceNow)
	if assert.NotNil(t, hoje.ExpiryDays) {
		assert.Equal(t, 0, *hoje.ExpiryDays)
	}
	assert.Equal(t, "2026-03-10", hoje.ExpiryDate)

	amanha := parseVoiceCommandAt("adicionar leite válido amanhã", voiceNow)
	if assert.NotNil(t, amanha.ExpiryDays) {
		assert.Equal(t, 1, *amanha.ExpiryDays)
	}
	assert.Equal(t, "2026-03-11", amanha.ExpiryDate)
}

func TestParseVoiceCommand_DaysOutOfRangeIgnored(t *testing.T) {
	cmd := parseVoiceCommandAt("adicionar leite com validade em 400 dias", voiceNow)
	assert.Nil(t, cmd.ExpiryDays)
	assert.Empty(t, cmd.ExpiryDate)
}

func TestParseVoiceCommand_CategoryAndHomemade(t *testing.T) {
	cmd := parseVoiceCommandAt("adicionar sopa caseiro congelado", voiceNow)
	assert.True(t, cmd.Homemade)
	assert.Equal(t, "Congelados", cmd.Category)
	assert.Equal(t, "Sopa", cmd.Name)
}

func TestParseVoiceCommand_NoQuantity(t *testing.T) {
	cmd := parseVoiceCommandAt("adicionar queijo da serra", voiceNow)
	assert.Empty(t, cmd.Quantity)
	assert.Empty(t, cmd.Unit)
	assert.Equal(t, "Queijo Da Serra", cmd.Name)
}
