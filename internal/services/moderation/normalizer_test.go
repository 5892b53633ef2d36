package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeASCII_FullwidthLetters(t *testing.T) {
	assert.Equal(t, "FICHA CRIMINAL", NormalizeASCII("ＦＩＣＨＡ ＣＲＩＭＩＮＡＬ"))
	assert.Equal(t, "abc123", NormalizeASCII("ａｂｃ１２３"))
}

func TestNormalizeASCII_MathematicalBold(t *testing.T) {
	assert.Equal(t, "FICHA CRIMINAL", NormalizeASCII("𝐅𝐈𝐂𝐇𝐀 𝐂𝐑𝐈𝐌𝐈𝐍𝐀𝐋"))
	assert.Equal(t, "abc", NormalizeASCII("𝐚𝐛𝐜"))
	assert.Equal(t, "0123456789", NormalizeASCII("𝟎𝟏𝟐𝟑𝟒𝟓𝟔𝟕𝟖𝟗"))
}

func TestNormalizeASCII_PlainTextUnchanged(t *testing.T) {
	for _, s := range []string{
		"",
		"ficha criminal",
		"Prisão efetuada, ficha criminal anexada!",
		"русский текст",
		"日本語のテキスト",
	} {
		assert.Equal(t, s, NormalizeASCII(s))
	}
}

func TestNormalizeASCII_Idempotent(t *testing.T) {
	inputs := []string{
		"ＦＩＣＨＡ ＣＲＩＭＩＮＡＬ",
		"𝐅𝐈𝐂𝐇𝐀 𝐂𝐑𝐈𝐌𝐈𝐍𝐀𝐋",
		"mixed ＡＢＣ and 𝐱𝐲𝐳 and plain",
		"pontuação: !@#$%&*()",
	}
	for _, s := range inputs {
		once := NormalizeASCII(s)
		assert.Equal(t, once, NormalizeASCII(once))
	}
}
