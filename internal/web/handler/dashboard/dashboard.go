// Package dashboard provides the tenant dashboard with review management and
// search rank analytics.
package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/tablecraft/tablecraft/internal/auth"
	"github.com/tablecraft/tablecraft/internal/config"
	"github.com/tablecraft/tablecraft/internal/db/controller/review"
	"github.com/tablecraft/tablecraft/internal/db/controller/tenant"
	"github.com/tablecraft/tablecraft/internal/db/models"
	"github.com/tablecraft/tablecraft/internal/web/handler"
	"github.com/tablecraft/tablecraft/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/dashboard"

	// DefaultPageSize is the default number of reviews per page.
	DefaultPageSize = 10

	// TabReviews represents the review management tab.
	TabReviews = "reviews"

	// TabRanks represents the search rank analytics tab.
	TabRanks = "ranks"

	desc = "desc"
)

// RankChangeUp, RankChangeDown and RankChangeSame classify a keyword's rank
// movement between the previous and current measurement.
const (
	RankChangeUp   = "up"
	RankChangeDown = "down"
	RankChangeSame = "same"
)

// RankChange describes a keyword's rank movement. Lower rank numbers are
// better, so a drop in number is an improvement.
type RankChange struct {
	Type  string
	Value int
}

// RankRow is a keyword rank for template rendering.
type RankRow struct {
	Keyword      string
	CurrentRank  int
	PreviousRank int
	Change       RankChange
	CheckedAt    time.Time
}

// QueryParams holds the review query and pagination parameters.
type QueryParams struct {
	Page        int
	PageSize    int
	SearchQuery string
	MinRating   int
	SortField   string
	SortOrder   string
}

// ReviewTab represents the review tab data including pagination.
type ReviewTab struct {
	Reviews     []models.Review
	CurrentPage int
	PageSize    int
	TotalItems  int
	TotalPages  int
	HasPrevPage bool
	HasNextPage bool
	PrevPage    int
	NextPage    int
	SearchQuery string
	MinRating   int
	SortField   string
	SortOrder   string
}

// Data represents the complete dashboard data.
type Data struct {
	ActiveTab     string
	ReviewTab     ReviewTab
	Ranks         []RankRow
	AverageRating float64
	Unanswered    int
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg  *config.Config
	db   *gorm.DB
	auth *auth.Service
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.auth = auth.NewService(db)

	app.Get(Path, s.Get)
	app.Post(Path+"/reviews/:id/reply", s.Reply)
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	user := auth.SessionUser(c)

	tenantID, err := s.auth.ActingTenant(user)
	if err != nil || tenantID == 0 {
		log.Warn().Err(err).Msg("no acting tenant for dashboard")
		return c.Status(fiber.StatusBadRequest).SendString("no tenant selected")
	}

	t, err := tenant.Get(s.db, tenantID)
	if err != nil {
		log.Error().Err(err).Uint64("tenant_id", tenantID).Msg("failed to load tenant")
		return c.Status(fiber.StatusInternalServerError).SendString("internal server error")
	}

	nav := navigation.NewContext("Dashboard", "dashboard", "dashboard").
		WithTenant(t.Name).
		AddBreadcrumb("Home", Path, false).
		AddBreadcrumb("Dashboard", Path, true)

	activeTab := c.Query("tab", TabReviews)
	if activeTab != TabReviews && activeTab != TabRanks {
		activeTab = TabReviews
	}

	params := QueryParams{
		Page:        c.QueryInt("page", 1),
		PageSize:    c.QueryInt("pageSize", DefaultPageSize),
		SearchQuery: c.Query("search", ""),
		MinRating:   c.QueryInt("minRating", 0),
		SortField:   c.Query("sort", "posted"),
		SortOrder:   c.Query("order", desc),
	}

	if params.Page < 1 {
		params.Page = 1
	}

	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = DefaultPageSize
	}

	if params.MinRating < 0 || params.MinRating > 5 {
		params.MinRating = 0
	}

	reviews, err := review.GetAll(s.db, tenantID)
	if err != nil {
		log.Error().Err(err).Uint64("tenant_id", tenantID).Msg("failed to load reviews")
		return c.Status(fiber.StatusInternalServerError).SendString("internal server error")
	}

	data := Data{
		ActiveTab:     activeTab,
		AverageRating: averageRating(reviews),
		Unanswered:    countUnanswered(reviews),
	}

	filtered := filterReviews(reviews, params.SearchQuery, params.MinRating)
	sortReviews(filtered, params.SortField, params.SortOrder)

	paginated, totalPages, actualPage := paginateReviews(filtered, params.Page, params.PageSize)
	params.Page = actualPage

	data.ReviewTab = ReviewTab{
		Reviews:     paginated,
		CurrentPage: params.Page,
		PageSize:    params.PageSize,
		TotalItems:  len(filtered),
		TotalPages:  totalPages,
		HasPrevPage: params.Page > 1,
		HasNextPage: params.Page < totalPages,
		PrevPage:    params.Page - 1,
		NextPage:    params.Page + 1,
		SearchQuery: params.SearchQuery,
		MinRating:   params.MinRating,
		SortField:   params.SortField,
		SortOrder:   params.SortOrder,
	}

	if activeTab == TabRanks {
		var ranks []models.KeywordRank
		if result := s.db.Where("tenant_id = ?", tenantID).Order("keyword ASC").Find(&ranks); result.Error != nil {
			log.Error().Err(result.Error).Uint64("tenant_id", tenantID).Msg("failed to load keyword ranks")
			return c.Status(fiber.StatusInternalServerError).SendString("internal server error")
		}

		data.Ranks = buildRankRows(ranks)
	}

	log.Debug().
		Uint64("tenant_id", tenantID).
		Str("active_tab", activeTab).
		Int("reviews", len(reviews)).
		Int("filtered", len(filtered)).
		Int("page", params.Page).
		Msg("dashboard rendered")

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Data":       data,
	}, handler.BaseLayout)
}

// replyRequest is the review reply form payload.
type replyRequest struct {
	Text string `form:"text" json:"text"`
}

// Reply stores the owner's reply on a review.
func (s *Service) Reply(c *fiber.Ctx) error {
	user := auth.SessionUser(c)
	if !auth.IsAdmin(user) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "forbidden"})
	}

	tenantID, err := s.auth.ActingTenant(user)
	if err != nil || tenantID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no tenant selected"})
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid review id"})
	}

	req := new(replyRequest)
	if err = c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if _, err = review.Reply(s.db, tenantID, uint64(id), req.Text, time.Now()); err != nil {
		switch {
		case err == review.ErrReviewNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case err == review.ErrReplyEmpty:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			log.Error().Err(err).Uint64("tenant_id", tenantID).Int("review_id", id).
				Msg("failed to store reply")

			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
		}
	}

	return c.Redirect(Path)
}

// rankChange classifies the movement between previous and current rank.
// Lower numbers are better positions.
func rankChange(current, previous int) RankChange {
	switch {
	case current < previous:
		return RankChange{Type: RankChangeUp, Value: previous - current}
	case current > previous:
		return RankChange{Type: RankChangeDown, Value: current - previous}
	default:
		return RankChange{Type: RankChangeSame, Value: 0}
	}
}

func buildRankRows(ranks []models.KeywordRank) []RankRow {
	rows := make([]RankRow, 0, len(ranks))

	for i := range ranks {
		rows = append(rows, RankRow{
			Keyword:      ranks[i].Keyword,
			CurrentRank:  ranks[i].CurrentRank,
			PreviousRank: ranks[i].PreviousRank,
			Change:       rankChange(ranks[i].CurrentRank, ranks[i].PreviousRank),
			CheckedAt:    ranks[i].CheckedAt,
		})
	}

	return rows
}

// filterReviews applies search and minimum rating filters.
func filterReviews(reviews []models.Review, searchQuery string, minRating int) []models.Review {
	if searchQuery != "" {
		filtered := make([]models.Review, 0)

		for _, r := range reviews {
			text := strings.ToLower(r.Text + " " + r.Author)
			if strings.Contains(text, strings.ToLower(searchQuery)) {
				filtered = append(filtered, r)
			}
		}

		reviews = filtered
	}

	if minRating > 0 {
		filtered := make([]models.Review, 0)

		for _, r := range reviews {
			if r.Rating >= minRating {
				filtered = append(filtered, r)
			}
		}

		reviews = filtered
	}

	return reviews
}

// sortReviews sorts reviews by the specified field and order.
func sortReviews(reviews []models.Review, sortField, sortOrder string) {
	switch sortField {
	case "rating":
		sort.Slice(reviews, func(i, j int) bool {
			if sortOrder == desc {
				return reviews[i].Rating > reviews[j].Rating
			}

			return reviews[i].Rating < reviews[j].Rating
		})
	default: // posted
		sort.Slice(reviews, func(i, j int) bool {
			if sortOrder == desc {
				return reviews[i].PostedAt.After(reviews[j].PostedAt)
			}

			return reviews[i].PostedAt.Before(reviews[j].PostedAt)
		})
	}
}

// paginateReviews slices reviews for the requested page, clamping the page
// into the valid range. Returns the page slice, total pages and the actual
// page used.
func paginateReviews(reviews []models.Review, page, pageSize int) ([]models.Review, int, int) {
	totalPages := (len(reviews) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize

	if start >= len(reviews) {
		return []models.Review{}, totalPages, page
	}

	if end > len(reviews) {
		end = len(reviews)
	}

	return reviews[start:end], totalPages, page
}

func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	return float64(sum) / float64(len(reviews))
}

func countUnanswered(reviews []models.Review) int {
	n := 0

	for _, r := range reviews {
		if r.Reply == "" {
			n++
		}
	}

	return n
}
