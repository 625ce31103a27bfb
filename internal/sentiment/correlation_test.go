package sentiment_test

import (
	"errors"
	"testing"

	"hackfest-backend/internal/sentiment"

	. "github.com/smartystreets/goconvey/convey"
)

func pt(x, y float64) sentiment.AnalysisPoint {
	return sentiment.AnalysisPoint{SentimentScore: x, TeamScore: y}
}

func TestPearson(t *testing.T) {
	Convey("Given the Pearson correlation", t, func() {
		Convey("When y = 2x + 1 over distinct x", func() {
			points := []sentiment.AnalysisPoint{pt(-0.5, 0), pt(0.1, 1.2), pt(0.4, 1.8), pt(0.9, 2.8)}
			r, n, err := sentiment.Pearson(points)

			Convey("Then r is 1", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 4)
				So(r, ShouldAlmostEqual, 1.0, 1e-9)
			})
		})

		Convey("When one variable is negated", func() {
			points := []sentiment.AnalysisPoint{pt(0.8, 42), pt(-0.3, 18), pt(0.1, 30), pt(0.6, 25), pt(-0.9, 12)}
			negated := make([]sentiment.AnalysisPoint, len(points))
			for i, p := range points {
				negated[i] = pt(-p.SentimentScore, p.TeamScore)
			}
			r, _, err := sentiment.Pearson(points)
			rn, _, errn := sentiment.Pearson(negated)

			Convey("Then r flips sign", func() {
				So(err, ShouldBeNil)
				So(errn, ShouldBeNil)
				So(rn, ShouldAlmostEqual, -r, 1e-12)
			})
		})

		Convey("When the points are reordered", func() {
			a := []sentiment.AnalysisPoint{pt(0.2, 10), pt(0.7, 35), pt(-0.4, 20)}
			b := []sentiment.AnalysisPoint{a[2], a[0], a[1]}
			ra, _, _ := sentiment.Pearson(a)
			rb, _, _ := sentiment.Pearson(b)

			Convey("Then r is unchanged", func() {
				So(ra, ShouldAlmostEqual, rb, 1e-12)
			})
		})

		Convey("When neither variable varies", func() {
			r, n, err := sentiment.Pearson([]sentiment.AnalysisPoint{pt(0.5, 40), pt(0.5, 40), pt(0.5, 40)})

			Convey("Then r is clamped to 0 rather than NaN", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 3)
				So(r, ShouldEqual, 0)
			})
		})

		Convey("When only one variable varies", func() {
			r, _, err := sentiment.Pearson([]sentiment.AnalysisPoint{pt(0.1, 40), pt(0.1, 20), pt(0.1, 30)})

			Convey("Then r is 0", func() {
				So(err, ShouldBeNil)
				So(r, ShouldEqual, 0)
			})
		})

		Convey("When every point is (0, 0)", func() {
			points := make([]sentiment.AnalysisPoint, 25)
			_, n, err := sentiment.Pearson(points)

			Convey("Then there is insufficient data", func() {
				So(errors.Is(err, sentiment.ErrInsufficientData), ShouldBeTrue)
				So(n, ShouldEqual, 0)
			})
		})

		Convey("When a single usable point remains after filtering", func() {
			_, n, err := sentiment.Pearson([]sentiment.AnalysisPoint{pt(0, 0), pt(0.3, 20), pt(0, 0)})

			Convey("Then there is insufficient data", func() {
				So(errors.Is(err, sentiment.ErrInsufficientData), ShouldBeTrue)
				So(n, ShouldEqual, 1)
			})
		})

		Convey("When (0, 0) points are mixed with real ones", func() {
			with, _, _ := sentiment.Pearson([]sentiment.AnalysisPoint{pt(0.2, 10), pt(0, 0), pt(0.8, 40), pt(-0.1, 15)})
			without, _, _ := sentiment.Pearson([]sentiment.AnalysisPoint{pt(0.2, 10), pt(0.8, 40), pt(-0.1, 15)})

			Convey("Then they do not affect r", func() {
				So(with, ShouldAlmostEqual, without, 1e-12)
			})
		})

		Convey("When sentiment is 0 but the team score is not", func() {
			_, n, err := sentiment.Pearson([]sentiment.AnalysisPoint{pt(0, 30), pt(0.5, 20)})

			Convey("Then the point still counts", func() {
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 2)
			})
		})
	})
}

func TestStrengthAndDirection(t *testing.T) {
	Convey("Given correlation labels", t, func() {
		cases := []struct {
			r        float64
			strength string
		}{
			{0, sentiment.StrengthNegligible},
			{0.099, sentiment.StrengthNegligible},
			{0.1, sentiment.StrengthWeak},
			{-0.29, sentiment.StrengthWeak},
			{0.3, sentiment.StrengthModerate},
			{-0.5, sentiment.StrengthStrong},
			{0.69, sentiment.StrengthStrong},
			{0.7, sentiment.StrengthVeryStrong},
			{-1, sentiment.StrengthVeryStrong},
		}
		for _, c := range cases {
			So(sentiment.StrengthOf(c.r), ShouldEqual, c.strength)
		}

		So(sentiment.DirectionOf(0.01), ShouldEqual, sentiment.DirectionPositive)
		So(sentiment.DirectionOf(0), ShouldEqual, sentiment.DirectionNegative)
		So(sentiment.DirectionOf(-0.4), ShouldEqual, sentiment.DirectionNegative)
	})
}

func TestCorrelate(t *testing.T) {
	Convey("Given Correlate", t, func() {
		Convey("When data is sufficient", func() {
			c := sentiment.Correlate([]sentiment.AnalysisPoint{pt(-0.5, 0), pt(0.1, 1.2), pt(0.4, 1.8)})

			Convey("Then r is defined and explained with two decimals", func() {
				So(c.Defined(), ShouldBeTrue)
				So(*c.R, ShouldAlmostEqual, 1.0, 1e-9)
				So(c.Strength, ShouldEqual, sentiment.StrengthVeryStrong)
				So(c.Direction, ShouldEqual, sentiment.DirectionPositive)
				So(c.Explanation, ShouldContainSubstring, "r = 1.00")
				So(c.Explanation, ShouldContainSubstring, "very strong positive")
			})
		})

		Convey("When data is insufficient", func() {
			c := sentiment.Correlate([]sentiment.AnalysisPoint{pt(0, 0), pt(0, 0)})

			Convey("Then r is undefined rather than zero", func() {
				So(c.Defined(), ShouldBeFalse)
				So(c.R, ShouldBeNil)
				So(c.Strength, ShouldBeEmpty)
				So(c.Explanation, ShouldContainSubstring, "Not enough feedback")
			})
		})
	})
}
