package mandi

import "strings"

var indianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
	"Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
	"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
	"West Bengal", "Delhi", "Jammu and Kashmir", "Ladakh", "Puducherry",
}

// DetectState scans a free-text address for a known state name. Empty string
// when nothing matches.
func DetectState(address string) string {
	low := strings.ToLower(address)
	for _, s := range indianStates {
		if strings.Contains(low, strings.ToLower(s)) {
			return s
		}
	}
	return ""
}
