package ai

import (
	"fmt"
	"strings"
)

func languageName(code string) string {
	switch code {
	case "hi":
		return "Hindi"
	case "mr":
		return "Marathi"
	case "te":
		return "Telugu"
	case "ta":
		return "Tamil"
	case "kn":
		return "Kannada"
	case "ml":
		return "Malayalam"
	default:
		return "English"
	}
}

func chatSystemPrompt(language string) string {
	return fmt.Sprintf("You are Krishi Sakhi, an expert agricultural companion for Indian farmers. Answer questions about crops, pests, weather, and market prices simply and concisely. Keep answers under 100 words. Use emojis where helpful. IMPORTANT: Always respond in %s.", languageName(language))
}

func pestPrompt(language, cropName string) string {
	cropContext := ""
	if cropName != "" {
		cropContext = fmt.Sprintf(" The user identified this crop as: %s.", cropName)
	}
	return fmt.Sprintf(`Analyze this image.%s If it shows a plant, identify the crop and the disease/pest.
Provide a detailed and easy-to-understand report for a farmer. Explain the symptoms clearly so the farmer can understand the issue from a basic level.

Format exactly as follows. STRICTLY use bold **text** ONLY for the specific side headings listed below. Do NOT use bold for the content text.

**Disease Name:** [Name of disease/pest]

**Understanding the Issue:**
[Elaborate on the symptoms, visual signs, and why this happens in simple terms.]

**--- REMEDIES ---**

**Organic Control:**
[Detailed organic remedy steps.]

**Chemical Control:**
[Name of chemical. IMPORTANT: Specify exact dosage per 1 acre (e.g., Mix 200ml in 200L water for 1 acre).]

If it is not a plant, say 'Not a plant'.
Respond strictly in %s.`, cropContext, languageName(language))
}

func soilCardPrompt(language string) string {
	return fmt.Sprintf(`Analyze this Soil Health Card image. Extract key nutrient values (N, P, K, pH, OC) if visible.
Based on the values, provide a summary recommendation for fertilizer application and soil amendments.

Response Language: %s
Format: Markdown (Use headings).
Keep it simple for a farmer.`, languageName(language))
}

func recommendPrompt(rc RecommendContext) string {
	langName := languageName(rc.Language)
	rain := "No"
	if rc.Rainy {
		rain = "Yes"
	}
	return fmt.Sprintf(`Acting as an expert agronomist for a farm in %s (Soil: %s, Irrigation: %s, Farm size: %s, Month: %s).
Current weather: %.1f°C, %s, Rain: %s.

Suggest 3 most suitable crops to plant RIGHT NOW.

CRITICAL: All text content in the JSON (cropName, reason, stage, activity, description) MUST be translated to %s.

Return a JSON array with exactly this structure:
[
    {
        "cropName": "Name of crop in %s",
        "suitabilityScore": 85,
        "reason": "One sentence why this is good now in %s.",
        "durationDays": 120,
        "timeline": [
            { "day": 1, "time": "08:00 AM", "stage": "Stage Name", "activity": "Activity Name", "description": "Description" },
            { "day": 15, "time": "09:00 AM", "stage": "Stage Name", "activity": "Activity Name", "description": "Description" }
        ]
    }
]
Provide 5-6 key milestones per crop up to harvest; use "endDay" for activities repeating daily over a span.

IMPORTANT: Return ONLY the JSON string. Do not use markdown code blocks or explanations.`,
		rc.City, rc.Soil, rc.Irrigation, rc.FarmSize, rc.Month,
		rc.TempC, rc.Condition, rain, langName, langName, langName)
}

// stripFences removes markdown code fences some models wrap around JSON
// despite instructions.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
