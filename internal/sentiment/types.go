// Package sentiment classifies hackathon feedback and correlates its tone with
// the submitting team's judged score.
package sentiment

import "strings"

// Category is the kind of remark a piece of feedback makes.
type Category string

const (
	CategoryActionableInsight Category = "actionable insight"
	CategoryGeneralComment    Category = "general comment"
	CategorySuggestion        Category = "suggestion"
	CategoryQuestion          Category = "question"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryActionableInsight,
	CategoryGeneralComment,
	CategorySuggestion,
	CategoryQuestion,
}

// ParseCategory maps free-form classifier output onto a known category.
// Anything unrecognised becomes a general comment.
func ParseCategory(s string) Category {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)
	for _, c := range Categories {
		if normalized == string(c) {
			return c
		}
	}
	return CategoryGeneralComment
}

// Classification is the classifier's verdict for one feedback text.
type Classification struct {
	SentimentScore float64  `json:"sentimentScore"`
	Category       Category `json:"category"`
}

// Neutral is the classification used when no usable verdict exists.
func Neutral() Classification {
	return Classification{SentimentScore: 0, Category: CategoryGeneralComment}
}

// AnalysisPoint is one feedback item joined with its team's score.
type AnalysisPoint struct {
	Email          string   `json:"email" bson:"email"`
	FeedbackText   string   `json:"feedback_text" bson:"feedback_text"`
	SentimentScore float64  `json:"sentiment_score" bson:"sentiment_score"`
	Category       Category `json:"category" bson:"category"`
	TeamScore      float64  `json:"team_score" bson:"team_score"`
}
