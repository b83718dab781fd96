package models

// ResumeFile is one uploaded document: raw bytes plus the name it was
// uploaded under. It is consumed once during a batch and discarded.
type ResumeFile struct {
	Filename string
	Data     []byte
}

// MatchResult is the canonical scoring record for a single resume.
// The JSON keys mirror the shape the model is instructed to return, so
// a genuine response and a backfilled one serialize identically.
type MatchResult struct {
	Name            string   `json:"Name"`
	Filename        string   `json:"Filename"`
	MatchPercentage int      `json:"MatchPercentage"`
	GlobalMatch     string   `json:"GlobalMatch"`
	MarketTier      string   `json:"MarketTier"`
	MatchedKeywords []string `json:"MatchedKeywords"`
	MissingKeywords []string `json:"MissingKeywords"`
	Summary         string   `json:"Summary"`
}

type AnalyzeResponse struct {
	BatchID  string        `json:"batch_id"`
	Results  []MatchResult `json:"results"`
	Warnings []string      `json:"warnings,omitempty"`
}
