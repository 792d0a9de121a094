package intent

import (
	"testing"

	"campus-chat-be/internal/constant"

	"github.com/stretchr/testify/assert"
)

func newTestClassifier() *Classifier {
	return NewClassifier(constant.Categories, constant.IntentKeywords)
}

func TestClassifySingleCategory(t *testing.T) {
	c := newTestClassifier()

	cases := map[string]string{
		"What is the tuition this year?":    "fees",
		"When is the examination held?":     "exams",
		"Tell me about the hostel warden":   "hostel",
		"How do I borrow a journal?":        "library",
		"What are the office timings?":      "general",
	}

	for message, want := range cases {
		assert.Equal(t, want, c.Classify(message), "message: %s", message)
	}
}

func TestClassifySubstringMatch(t *testing.T) {
	c := newTestClassifier()

	// "examination" contains the keyword "exam"
	assert.Equal(t, "exams", c.Classify("examination"))
}

func TestClassifyDefaultsToGeneral(t *testing.T) {
	c := newTestClassifier()

	assert.Equal(t, "general", c.Classify(""))
	assert.Equal(t, "general", c.Classify("xyz nonsense"))
}

func TestClassifyTieBreaksByOrder(t *testing.T) {
	c := newTestClassifier()

	// One fees keyword and one hostel keyword: fees comes first in the
	// category order, so it wins the tie.
	assert.Equal(t, "fees", c.Classify("tuition warden"))
}

func TestClassifyHighestCountWins(t *testing.T) {
	c := newTestClassifier()

	// Two hostel keywords against one fees keyword
	assert.Equal(t, "hostel", c.Classify("tuition for the hostel mess"))
}

func TestClassifyFeeBeatsHostel(t *testing.T) {
	c := newTestClassifier()

	// "fee" (fees) and "hostel" (hostel) both hit once; fees is earlier
	assert.Equal(t, "fees", c.Classify("What is the hostel fee?"))
}
