package fields

// skillVocabulary is the fixed set of recognized technology and tool names.
// Matching is whole-token, so multi-word entries only hit when tokenization
// preserves them as a single token.
var skillVocabulary = map[string]struct{}{
	"python": {}, "java": {}, "javascript": {}, "typescript": {}, "html": {},
	"css": {}, "sql": {}, "nosql": {}, "react": {}, "angular": {}, "vue": {},
	"node.js": {}, "django": {}, "flask": {}, "express": {}, "spring": {},
	"docker": {}, "kubernetes": {}, "aws": {}, "azure": {}, "gcp": {},
	"git": {}, "agile": {}, "scrum": {}, "jira": {}, "jenkins": {},
	"ci/cd": {}, "rest api": {}, "graphql": {}, "mongodb": {}, "mysql": {},
	"postgresql": {}, "oracle": {}, "data analysis": {}, "machine learning": {},
	"deep learning": {}, "ai": {}, "nltk": {}, "pandas": {}, "numpy": {},
	"tensorflow": {}, "pytorch": {}, "keras": {}, "scikit-learn": {},
	"excel": {}, "powerpoint": {}, "word": {}, "tableau": {}, "power bi": {},
	"linux": {}, "windows": {}, "macos": {}, "networking": {}, "security": {},
}
