package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildScoringPrompt creates the prompt for scoring one resume against the
// job description. Both inputs are embedded verbatim, whatever their size.
func (pb *PromptBuilder) BuildScoringPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`
You are a Senior Technical Recruiter for a top-tier tech company. Evaluate how well this resume fits the job description.

JOB DESCRIPTION:
%s

RESUME:
%s

INSTRUCTIONS:
1. Score the resume on a 0-100 scale based on actual skill alignment.
2. Do not inflate scores.
3. "GlobalMatch" should reflect market position based on typical applicants.
   Use exactly one: "Top 5%%", "Top 20%%", "Average", "Below Average".
4. "MarketTier" must be one of:
   "Tier 1 (Elite)", "Tier 2 (Strong)", "Tier 3 (Average)", "Tier 4 (Weak)".
5. Extract keywords from the JD and match them strictly. No guessing.
6. Identify missing skills that materially weaken the candidate.

OUTPUT:
Return ONLY valid JSON. No commentary.

{
  "Name": "Candidate Name",
  "MatchPercentage": 0,
  "GlobalMatch": "",
  "MarketTier": "",
  "MatchedKeywords": [],
  "MissingKeywords": [],
  "Summary": ""
}
`, jobDescription, resumeText)
}
