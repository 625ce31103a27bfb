package sentiment

// Sentiment above PositiveThreshold is positive, below NegativeThreshold is
// negative. Both boundaries are neutral.
const (
	PositiveThreshold = 0.2
	NegativeThreshold = -0.2
)

type Bucket string

const (
	BucketPositive Bucket = "positive"
	BucketNeutral  Bucket = "neutral"
	BucketNegative Bucket = "negative"
)

func BucketOf(score float64) Bucket {
	switch {
	case score > PositiveThreshold:
		return BucketPositive
	case score < NegativeThreshold:
		return BucketNegative
	default:
		return BucketNeutral
	}
}

// BucketCounts tallies points per sentiment bucket.
type BucketCounts struct {
	Positive int `json:"positive" bson:"positive"`
	Neutral  int `json:"neutral" bson:"neutral"`
	Negative int `json:"negative" bson:"negative"`
}

func CountBuckets(points []AnalysisPoint) BucketCounts {
	var c BucketCounts
	for _, p := range points {
		switch BucketOf(p.SentimentScore) {
		case BucketPositive:
			c.Positive++
		case BucketNegative:
			c.Negative++
		default:
			c.Neutral++
		}
	}
	return c
}

// CountCategories tallies points per category. Every category is present,
// zero or not, so dashboards can render a stable chart.
func CountCategories(points []AnalysisPoint) map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		counts[c] = 0
	}
	for _, p := range points {
		counts[ParseCategory(string(p.Category))]++
	}
	return counts
}
