// pkg/ai/client.go

package ai

import "krishisakhi/entities"

// RecommendContext is the farm/weather snapshot the advisor reasons over.
type RecommendContext struct {
	City       string
	Soil       string
	Irrigation string
	FarmSize   string
	TempC      float64
	Condition  string
	Rainy      bool
	Month      string
	Language   string
}

type Client interface {
	// Chat answers one farmer question given prior conversation turns.
	Chat(history []entities.ChatMessage, message, language, kbContext string) (string, error)

	// AnalyzePlantImage diagnoses a crop photo (base64 + mime type).
	AnalyzePlantImage(imageB64, mimeType, language, cropName string) (string, error)

	// AnalyzeSoilCard summarizes a soil health card photo.
	AnalyzeSoilCard(imageB64, mimeType, language string) (string, error)

	// RecommendCrops proposes plan templates for the given context.
	RecommendCrops(rc RecommendContext) ([]entities.CropRecommendation, error)
}
