package constant

// Topic categories. Order matters: the intent classifier breaks score ties by
// picking the first maximal category in this order.
const (
	CategoryFees    = "fees"
	CategoryExams   = "exams"
	CategoryHostel  = "hostel"
	CategoryLibrary = "library"
	CategoryGeneral = "general"
)

// Categories is the closed set of topic labels, in classification order.
var Categories = []string{
	CategoryFees,
	CategoryExams,
	CategoryHostel,
	CategoryLibrary,
	CategoryGeneral,
}

// NormalizeCategory collapses anything outside the closed set to "general".
func NormalizeCategory(category string) string {
	for _, c := range Categories {
		if c == category {
			return c
		}
	}
	return CategoryGeneral
}

// IntentKeywords maps each category to its keyword set. Matching is done by
// substring, not token: "examination" matches the keyword "exam".
var IntentKeywords = map[string][]string{
	CategoryFees:    {"fee", "fees", "payment", "tuition", "cost", "scholarship", "financial", "charges", "dues", "refund"},
	CategoryExams:   {"exam", "examination", "test", "assessment", "schedule", "timetable", "result", "grade", "marks", "semester"},
	CategoryHostel:  {"hostel", "accommodation", "room", "mess", "warden", "dormitory", "residential", "lodging", "food"},
	CategoryLibrary: {"library", "book", "journal", "borrow", "return", "fine", "reading", "catalogue", "e-resource"},
	CategoryGeneral: {"contact", "office", "timing", "holiday", "calendar", "event", "admission", "course"},
}

// DocumentKeywords is used to auto-detect the category of an uploaded PDF when
// none is supplied. Counts full occurrences; threshold applied by the caller.
var DocumentKeywords = map[string][]string{
	CategoryFees:    {"fee", "tuition", "payment", "scholarship", "charges", "dues"},
	CategoryExams:   {"exam", "examination", "test", "schedule", "timetable", "assessment"},
	CategoryHostel:  {"hostel", "accommodation", "dormitory", "mess", "warden", "residential"},
	CategoryLibrary: {"library", "book", "journal", "borrow", "circulation", "catalogue"},
}

// DocumentCategoryThreshold is the minimum keyword hit count before an
// uploaded document is assigned a non-general category.
const DocumentCategoryThreshold = 5

// FallbackSentence is the single fixed reply of an unavailable provider.
const FallbackSentence = "I can provide information about the campus. Please upload university handbook PDFs in the admin panel for detailed responses."

// MinUsableReplyLen: trimmed model output at or below this length is treated
// as a non-answer and replaced by the templated response.
const MinUsableReplyLen = 20

const (
	MaxMessageLen    = 500
	MaxContextChunks = 3
	MaxHistoryTurns  = 3
	MaxSessionTurns  = 20
	ChunkPreviewLen  = 500
	GenerateTokens   = 300
)
