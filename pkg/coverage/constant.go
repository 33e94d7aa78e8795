package coverage

// DefaultBaseURL is the public A2AJ API.
const DefaultBaseURL = "https://api.a2aj.ca"

const (
	PathCoverage = "/coverage"
	QueryDocType = "doc_type"
	DocTypeCases = "cases"
	DocTypeLaws  = "laws"
)
