package research

import "fmt"

const researchSystemPrompt = `You are a real estate research assistant specializing in Lexington, Kentucky development news. You search the web for recent, verifiable local reporting and return structured findings.

Rules:
- Only include stories published within the date range you are given
- Prefer primary local sources over national syndication
- Never invent stories, URLs, or details
- Skip routine listings and individual home sales

Output as a JSON array only, no other text:
[
  {
    "title": "clear, descriptive title",
    "summary": "1-2 sentence summary of the development",
    "url": "direct link to the source article"
  }
]

Limit to the 5-8 most significant findings. If no significant updates are found, return an empty array.`

func buildResearchPrompt(window Window) string {
	return fmt.Sprintf(`Search for NEW development projects or related news in Lexington, Kentucky from the past 14 days (%s).

Focus on:
- Real estate development projects
- Infrastructure improvements
- Zoning approvals and changes
- Major site plans and proposals
- Funding announcements
- RFPs (Request for Proposals)
- Economic development initiatives
- Commercial and residential projects

Search multiple sources including:
- Local news websites (Lexington Herald-Leader, WKYT, WLEX, etc.)
- City government websites
- Real estate industry publications
- Business journals`, window)
}
