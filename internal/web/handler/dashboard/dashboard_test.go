package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tablecraft/tablecraft/internal/db/models"
)

func TestRankChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		previous int
		want     RankChange
	}{
		{
			name:     "moving from 3 to 2 is an improvement of 1",
			current:  2,
			previous: 3,
			want:     RankChange{Type: RankChangeUp, Value: 1},
		},
		{
			name:     "moving from 4 to 5 is a drop of 1",
			current:  5,
			previous: 4,
			want:     RankChange{Type: RankChangeDown, Value: 1},
		},
		{
			name:     "unchanged rank",
			current:  4,
			previous: 4,
			want:     RankChange{Type: RankChangeSame, Value: 0},
		},
		{
			name:     "large improvement",
			current:  1,
			previous: 12,
			want:     RankChange{Type: RankChangeUp, Value: 11},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rankChange(tt.current, tt.previous))
		})
	}
}

func testReviews() []models.Review {
	return []models.Review{
		{ID: 1, Author: "Tanaka", Rating: 5, Text: "とても美味しかったです", PostedAt: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Author: "Suzuki", Rating: 2, Text: "Service was slow", PostedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Reply: "申し訳ありません"},
		{ID: 3, Author: "Kim", Rating: 4, Text: "Great ramen", PostedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestFilterReviews(t *testing.T) {
	tests := []struct {
		name      string
		search    string
		minRating int
		wantIDs   []uint64
	}{
		{
			name:    "no filters keeps everything",
			wantIDs: []uint64{1, 2, 3},
		},
		{
			name:      "minimum rating excludes low ratings",
			minRating: 4,
			wantIDs:   []uint64{1, 3},
		},
		{
			name:    "search matches review text case-insensitively",
			search:  "RAMEN",
			wantIDs: []uint64{3},
		},
		{
			name:    "search matches author name",
			search:  "suzuki",
			wantIDs: []uint64{2},
		},
		{
			name:      "combined filters",
			search:    "ramen",
			minRating: 5,
			wantIDs:   []uint64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterReviews(testReviews(), tt.search, tt.minRating)

			gotIDs := make([]uint64, 0, len(got))
			for _, r := range got {
				gotIDs = append(gotIDs, r.ID)
			}

			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestSortReviews(t *testing.T) {
	reviews := testReviews()

	sortReviews(reviews, "posted", "desc")
	assert.Equal(t, uint64(2), reviews[0].ID)
	assert.Equal(t, uint64(3), reviews[2].ID)

	sortReviews(reviews, "posted", "asc")
	assert.Equal(t, uint64(3), reviews[0].ID)

	sortReviews(reviews, "rating", "desc")
	assert.Equal(t, 5, reviews[0].Rating)

	sortReviews(reviews, "rating", "asc")
	assert.Equal(t, 2, reviews[0].Rating)
}

func TestPaginateReviews(t *testing.T) {
	reviews := make([]models.Review, 25)
	for i := range reviews {
		reviews[i].ID = uint64(i + 1)
	}

	page, totalPages, actualPage := paginateReviews(reviews, 1, 10)
	assert.Len(t, page, 10)
	assert.Equal(t, 3, totalPages)
	assert.Equal(t, 1, actualPage)

	page, _, actualPage = paginateReviews(reviews, 3, 10)
	assert.Len(t, page, 5)
	assert.Equal(t, 3, actualPage)

	// out-of-range page clamps to the last page
	page, _, actualPage = paginateReviews(reviews, 9, 10)
	assert.Len(t, page, 5)
	assert.Equal(t, 3, actualPage)

	page, totalPages, actualPage = paginateReviews(nil, 1, 10)
	assert.Empty(t, page)
	assert.Equal(t, 1, totalPages)
	assert.Equal(t, 1, actualPage)
}

func TestAverageRating(t *testing.T) {
	assert.InDelta(t, 3.6666, averageRating(testReviews()), 0.001)
	assert.Zero(t, averageRating(nil))
}

func TestCountUnanswered(t *testing.T) {
	assert.Equal(t, 2, countUnanswered(testReviews()))
}
