package extraction

import (
	"regexp"
	"strings"
)

// keywordPatterns is the fixed catalogue of technology and skill keywords,
// grouped by domain. Matching is whole-word and case-insensitive.
var keywordPatterns = []*regexp.Regexp{
	// Languages
	regexp.MustCompile(`(?i)\b(?:Python|Java|JavaScript|TypeScript|Go|Rust|C\+\+|Ruby|Scala|Kotlin)\b`),
	// Cloud / infrastructure
	regexp.MustCompile(`(?i)\b(?:AWS|Azure|GCP|Google Cloud|Kubernetes|Docker|Terraform)\b`),
	// Frameworks
	regexp.MustCompile(`(?i)\b(?:React|Angular|Vue|Next\.js|Node\.js|FastAPI|Django|Flask|Spring)\b`),
	// Datastores
	regexp.MustCompile(`(?i)\b(?:PostgreSQL|MySQL|MongoDB|Redis|DynamoDB|Elasticsearch)\b`),
	// Process / methodology
	regexp.MustCompile(`(?i)\b(?:CI/CD|DevOps|Agile|Scrum|Kanban)\b`),
	// Healthcare compliance
	regexp.MustCompile(`(?i)\b(?:HL7|FHIR|DICOM|HIPAA|SOC2|HITRUST|EHR|EMR)\b`),
	regexp.MustCompile(`(?i)\b(?:PHI|PII|FDA|CMS|ICD-10)\b`),
	// AI / ML
	regexp.MustCompile(`(?i)\b(?:AI|ML|NLP|LLM|GPT|machine learning|deep learning|neural network)\b`),
	regexp.MustCompile(`(?i)\b(?:TensorFlow|PyTorch|scikit-learn|LangChain)\b`),
	// Architecture and leadership
	regexp.MustCompile(`(?i)\b(?:microservices|scalability|architecture|system design)\b`),
	regexp.MustCompile(`(?i)\b(?:team building|mentoring|roadmap|OKR|KPI)\b`),
}

// ExtractKeywords collects every distinct keyword surface form found in the
// text. Deduplication is case-insensitive and keeps the first-seen casing.
func ExtractKeywords(text string) []string {
	seen := make(map[string]bool)
	keywords := []string{}

	for _, pattern := range keywordPatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			surface := strings.TrimSpace(match)
			key := strings.ToLower(surface)
			if !seen[key] {
				seen[key] = true
				keywords = append(keywords, surface)
			}
		}
	}
	return keywords
}
