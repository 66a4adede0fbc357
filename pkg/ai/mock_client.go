// pkg/ai/mock_client.go

package ai

import (
	"fmt"
	"strings"

	"krishisakhi/entities"
)

// mockClient stands in when no LLM endpoint is configured. Responses are
// deterministic so the rest of the system stays exercisable offline.
type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) Chat(history []entities.ChatMessage, message, language, kbContext string) (string, error) {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "weather"):
		return "Check the dashboard forecast before irrigating; avoid spraying if rain is expected within 24 hours. 🌦️", nil
	case strings.Contains(lower, "price") || strings.Contains(lower, "mandi"):
		return "Mandi prices update daily on the dashboard. Compare modal prices across nearby markets before selling. 📈", nil
	default:
		return "For " + languageName(language) + " support and detailed advice, connect the advisor service. Meanwhile: inspect leaves for pests, keep soil moist but not waterlogged. 🌱", nil
	}
}

func (m *mockClient) AnalyzePlantImage(imageB64, mimeType, language, cropName string) (string, error) {
	crop := cropName
	if crop == "" {
		crop = "the crop"
	}
	return fmt.Sprintf("**Disease Name:** Unknown (offline)\n\n**Understanding the Issue:**\nThe advisor service is not configured, so %s could not be analyzed. Look for spots, wilting or chewed edges.\n\n**--- REMEDIES ---**\n\n**Organic Control:**\nSpray neem oil 5ml per litre of water in the evening.\n\n**Chemical Control:**\nConsult your local Krishi Vigyan Kendra before applying chemicals.", crop), nil
}

func (m *mockClient) AnalyzeSoilCard(imageB64, mimeType, language string) (string, error) {
	return "## Soil Card Summary\nAdvisor service not configured. Apply well-decomposed farmyard manure and re-test soil each season.", nil
}

func (m *mockClient) RecommendCrops(rc RecommendContext) ([]entities.CropRecommendation, error) {
	return []entities.CropRecommendation{
		{
			CropName:         "Wheat",
			SuitabilityScore: 86,
			Reason:           "Cool, dry conditions suit wheat sowing now.",
			DurationDays:     120,
			Timeline: []entities.TimelineEvent{
				{Day: 1, Time: "07:00 AM", Stage: "Land Preparation", Activity: "Plough and level field", Description: "Two ploughings followed by planking."},
				{Day: 3, Time: "08:00 AM", Stage: "Sowing", Activity: "Sow seeds", Description: "Drill seed at 100 kg/ha with 20 cm row spacing."},
				{Day: 21, Time: "07:00 AM", Stage: "Vegetative", Activity: "First irrigation", Description: "Irrigate at crown root initiation."},
				{Day: 40, EndDay: 45, Time: "09:00 AM", Stage: "Tillering", Activity: "Weed and top dress", Description: "Hand weed and apply urea 60 kg/ha."},
				{Day: 115, Time: "06:00 AM", Stage: "Maturity", Activity: "Harvest", Description: "Harvest when grains harden and straw yellows."},
			},
		},
		{
			CropName:         "Chickpea",
			SuitabilityScore: 78,
			Reason:           "Residual moisture is enough for a rabi pulse.",
			DurationDays:     100,
			Timeline: []entities.TimelineEvent{
				{Day: 1, Time: "08:00 AM", Stage: "Sowing", Activity: "Sow treated seed", Description: "Treat with Rhizobium culture before sowing."},
				{Day: 30, Time: "09:00 AM", Stage: "Vegetative", Activity: "Nip terminal buds", Description: "Encourages branching and pod set."},
				{Day: 95, Time: "07:00 AM", Stage: "Maturity", Activity: "Harvest", Description: "Pull plants when pods rattle."},
			},
		},
		{
			CropName:         "Mustard",
			SuitabilityScore: 72,
			Reason:           "Short-duration oilseed fits the remaining season window.",
			DurationDays:     110,
			Timeline: []entities.TimelineEvent{
				{Day: 1, Time: "08:00 AM", Stage: "Sowing", Activity: "Broadcast seed", Description: "Mix seed with sand for even spread."},
				{Day: 25, Time: "07:00 AM", Stage: "Vegetative", Activity: "Thin seedlings", Description: "Keep 10-15 cm between plants."},
				{Day: 105, Time: "06:00 AM", Stage: "Maturity", Activity: "Harvest", Description: "Cut when 75% pods turn yellow."},
			},
		},
	}, nil
}
