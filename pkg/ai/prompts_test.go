package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripFences(t *testing.T) {
	raw := "```json\n[{\"cropName\":\"Wheat\"}]\n```"
	assert.Equal(t, `[{"cropName":"Wheat"}]`, stripFences(raw))

	plain := `[{"cropName":"Wheat"}]`
	assert.Equal(t, plain, stripFences(plain))
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Malayalam", languageName("ml"))
	assert.Equal(t, "Hindi", languageName("hi"))
	assert.Equal(t, "English", languageName("en"))
	assert.Equal(t, "English", languageName(""))
}

func TestChatSystemPromptEnforcesLanguage(t *testing.T) {
	assert.Contains(t, chatSystemPrompt("ta"), "Always respond in Tamil")
}

func TestMockRecommendationsAreValid(t *testing.T) {
	recs, err := NewMock().RecommendCrops(RecommendContext{City: "Nagpur", Language: "en"})
	assert.NoError(t, err)
	assert.Len(t, recs, 3)
	for _, r := range recs {
		assert.NotEmpty(t, r.CropName)
		assert.GreaterOrEqual(t, r.DurationDays, 1)
	}
}
