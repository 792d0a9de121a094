package fallback

import (
	"fmt"

	"campus-chat-be/pkg/utils"
)

// Department is the configured contact block for a category. Zero fields fall
// back to generic placeholders.
type Department struct {
	Contact  string
	Phone    string
	Location string
	Hours    string
}

// Responder emits the deterministic templated answers used whenever the
// provider is unavailable or returns a non-answer. Contacts are resolved
// per call so config updates show up in later fallbacks.
type Responder struct {
	contacts func() (email, phone string)
}

func NewResponder(contacts func() (email, phone string)) *Responder {
	if contacts == nil {
		contacts = func() (string, string) { return "", "" }
	}
	return &Responder{contacts: contacts}
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// WithContext builds the degraded answer when retrieval found chunks but the
// model produced nothing usable: a preview of the context plus contacts.
func (r *Responder) WithContext(context string, dept *Department) string {
	preview := context
	if truncated := utils.TruncateChars(preview, 400); len(truncated) < len(preview) {
		preview = truncated + "..."
	}

	response := fmt.Sprintf("Based on our university documents:\n\n%s\n\n", preview)
	if dept != nil {
		response += fmt.Sprintf("For more details, contact:\n📧 %s\n📞 %s", dept.Contact, dept.Phone)
	}
	return response
}

// Template returns the fixed per-category answer used when no context exists.
func (r *Responder) Template(intent string, dept *Department) string {
	if dept == nil {
		dept = &Department{}
	}

	switch intent {
	case "fees":
		return fmt.Sprintf("💰 **Fee Information**\n\nFor detailed fee structure and payment information:\n\n📧 Email: %s\n📞 Phone: %s\n📍 Location: %s\n\n💡 Tip: Upload fee structure PDFs in the admin panel for detailed answers!",
			orDefault(dept.Contact, "fees@university.edu"),
			orDefault(dept.Phone, "See admin office"),
			orDefault(dept.Location, "Admin Block"))
	case "exams":
		return fmt.Sprintf("📝 **Examination Information**\n\nFor exam schedules and related queries:\n\n📧 Email: %s\n📞 Phone: %s\n📍 Location: %s\n\n💡 Tip: Upload exam schedule PDFs in the admin panel!",
			orDefault(dept.Contact, "exams@university.edu"),
			orDefault(dept.Phone, "See exam cell"),
			orDefault(dept.Location, "Academic Block"))
	case "hostel":
		return fmt.Sprintf("🏠 **Hostel Information**\n\nFor hostel rules and accommodation:\n\n📧 Email: %s\n📞 Phone: %s\n📍 Location: %s\n\n💡 Tip: Upload hostel handbook PDFs for detailed information!",
			orDefault(dept.Contact, "hostel@university.edu"),
			orDefault(dept.Phone, "See hostel office"),
			orDefault(dept.Location, "Hostel Office"))
	case "library":
		return fmt.Sprintf("📚 **Library Information**\n\nFor library services and timings:\n\n📧 Email: %s\n📞 Phone: %s\n📍 Location: %s\n⏰ Hours: %s\n\n💡 Tip: Upload library handbook PDFs for complete details!",
			orDefault(dept.Contact, "library@university.edu"),
			orDefault(dept.Phone, "See library desk"),
			orDefault(dept.Location, "Central Library"),
			orDefault(dept.Hours, "Mon-Sat: 8 AM - 10 PM"))
	default:
		email, phone := r.contacts()
		return fmt.Sprintf("I'd be happy to help! I can assist with:\n\n💰 Fee Structure\n📝 Exam Schedules\n🏠 Hostel Information\n📚 Library Services\n\nPlease ask a specific question, or contact the administration office:\n📧 %s\n📞 %s",
			email, phone)
	}
}

// RelatedAction is a suggested follow-up query for a category.
type RelatedAction struct {
	Label string
	Query string
}

var relatedActions = map[string][]RelatedAction{
	"fees": {
		{Label: "💳 Payment Methods", Query: "What payment methods are available?"},
		{Label: "🎓 Scholarships", Query: "Tell me about scholarships"},
		{Label: "📋 Fee Breakdown", Query: "Show detailed fee breakdown"},
	},
	"exams": {
		{Label: "📅 Full Schedule", Query: "Show complete exam schedule"},
		{Label: "📊 Results", Query: "How to check results?"},
		{Label: "📝 Revaluation", Query: "Revaluation process"},
	},
	"hostel": {
		{Label: "🍽️ Mess Info", Query: "Tell me about mess facilities"},
		{Label: "🚪 Room Allocation", Query: "How is room allocation done?"},
		{Label: "📋 Rules", Query: "What are the hostel rules?"},
	},
	"library": {
		{Label: "⏰ Timings", Query: "Library timings?"},
		{Label: "📖 Borrowing", Query: "How to borrow books?"},
		{Label: "💻 E-Resources", Query: "Available e-resources?"},
	},
	"general": {
		{Label: "📞 Contacts", Query: "How to contact departments?"},
		{Label: "📅 Calendar", Query: "Academic calendar"},
		{Label: "🗺️ Campus Info", Query: "Tell me about the campus"},
	},
}

// RelatedActions returns the static follow-up suggestions for a category.
func RelatedActions(intent string) []RelatedAction {
	if actions, ok := relatedActions[intent]; ok {
		return actions
	}
	return relatedActions["general"]
}
