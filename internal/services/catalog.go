package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillbridge/skillbridge-backend/internal/apperr"
	"github.com/skillbridge/skillbridge-backend/internal/kv"
	"github.com/skillbridge/skillbridge-backend/internal/logger"
	"github.com/skillbridge/skillbridge-backend/internal/repos"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

type PriceFilter string

const (
	PriceAll    PriceFilter = "all"
	PriceFree   PriceFilter = "free"
	PricePaid   PriceFilter = "paid"
	PriceLow    PriceFilter = "low"
	PriceMedium PriceFilter = "medium"
	PriceHigh   PriceFilter = "high"
)

type DurationFilter string

const (
	DurationAll    DurationFilter = "all"
	DurationShort  DurationFilter = "short"
	DurationMedium DurationFilter = "medium"
	DurationLong   DurationFilter = "long"
)

// CourseFilter combines the free-text query with the three facet filters.
// Facets compose with AND semantics; a nil Level means no level filtering.
type CourseFilter struct {
	Query    string
	Price    PriceFilter
	Duration DurationFilter
	Level    *types.CourseLevel
}

func matchesSearch(course *types.Course, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(course.Title), q) ||
		strings.Contains(strings.ToLower(course.Description), q) ||
		strings.Contains(strings.ToLower(course.Provider), q) ||
		strings.Contains(strings.ToLower(string(course.Level)), q)
}

func matchesPrice(course *types.Course, filter PriceFilter) bool {
	switch filter {
	case PriceFree:
		return course.Price == 0
	case PricePaid:
		return course.Price > 0
	case PriceLow:
		return course.Price > 0 && course.Price <= 50
	case PriceMedium:
		return course.Price > 50 && course.Price <= 100
	case PriceHigh:
		return course.Price > 100
	}
	return true
}

func matchesDuration(course *types.Course, filter DurationFilter) bool {
	switch filter {
	case DurationShort:
		return course.DurationWeeks <= 2
	case DurationMedium:
		return course.DurationWeeks > 2 && course.DurationWeeks <= 4
	case DurationLong:
		return course.DurationWeeks > 4
	}
	return true
}

// FilterCourses returns the courses passing every active filter. The source
// slice is never mutated.
func FilterCourses(courses []*types.Course, filter CourseFilter) []*types.Course {
	result := make([]*types.Course, 0, len(courses))
	for _, course := range courses {
		if !matchesSearch(course, filter.Query) {
			continue
		}
		if !matchesPrice(course, filter.Price) {
			continue
		}
		if !matchesDuration(course, filter.Duration) {
			continue
		}
		if filter.Level != nil && course.Level != *filter.Level {
			continue
		}
		result = append(result, course)
	}
	return result
}

// skillTerms is the fixed vocabulary mixed into autocomplete suggestions.
var skillTerms = []string{"Swift", "iOS", "SwiftUI", "UIKit", "Xcode", "Git", "MVVM", "Testing", "CI/CD", "Firebase"}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// Autocomplete builds the deduplicated suggestion set for a query: title
// words with the query as a strict prefix (capitalized), provider names
// starting with the query, and vocabulary terms starting with the query.
// Empty query yields an empty list; output is sorted lexicographically.
func Autocomplete(query string, courses []*types.Course) []string {
	if query == "" {
		return []string{}
	}
	q := strings.ToLower(query)
	suggestions := map[string]struct{}{}

	for _, course := range courses {
		for _, word := range strings.Fields(strings.ToLower(course.Title)) {
			if strings.HasPrefix(word, q) && len(word) > len(q) {
				suggestions[capitalize(word)] = struct{}{}
			}
		}
	}
	for _, course := range courses {
		if strings.HasPrefix(strings.ToLower(course.Provider), q) {
			suggestions[course.Provider] = struct{}{}
		}
	}
	for _, term := range skillTerms {
		if strings.HasPrefix(strings.ToLower(term), q) {
			suggestions[term] = struct{}{}
		}
	}

	out := make([]string, 0, len(suggestions))
	for s := range suggestions {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

const favoritesKey = "favorite_courses"

type CatalogService interface {
	ListCourses(ctx context.Context, filter CourseFilter) ([]*types.Course, error)
	Suggest(ctx context.Context, query string) ([]string, error)
	Favorites(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ToggleFavorite(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
}

type catalogService struct {
	db         *gorm.DB
	log        *logger.Logger
	courseRepo repos.CourseRepo
	favorites  kv.Store
}

func NewCatalogService(db *gorm.DB, log *logger.Logger, courseRepo repos.CourseRepo, favorites kv.Store) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	return &catalogService{
		db:         db,
		log:        serviceLog,
		courseRepo: courseRepo,
		favorites:  favorites,
	}
}

func (cs *catalogService) ListCourses(ctx context.Context, filter CourseFilter) ([]*types.Course, error) {
	courses, err := cs.courseRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}
	return FilterCourses(courses, filter), nil
}

func (cs *catalogService) Suggest(ctx context.Context, query string) ([]string, error) {
	courses, err := cs.courseRepo.GetAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}
	return Autocomplete(query, courses), nil
}

func favoritesKeyFor(userID uuid.UUID) string {
	return favoritesKey + "_" + userID.String()
}

// decodeFavorites tolerates malformed stored state by treating it as empty.
func decodeFavorites(raw []byte) []uuid.UUID {
	if len(raw) == 0 {
		return nil
	}
	var idStrings []string
	if err := json.Unmarshal(raw, &idStrings); err != nil {
		return nil
	}
	out := make([]uuid.UUID, 0, len(idStrings))
	for _, s := range idStrings {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}

func (cs *catalogService) Favorites(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if userID == uuid.Nil {
		return nil, apperr.New(http.StatusUnauthorized, "unauthorized", apperr.ErrUnauthorized)
	}
	raw, err := cs.favorites.Get(ctx, favoritesKeyFor(userID))
	if err != nil {
		return nil, fmt.Errorf("error reading favorites: %w", err)
	}
	return decodeFavorites(raw), nil
}

// ToggleFavorite flips membership of the course id in the persisted set and
// reports the new state. Read-modify-write, last writer wins.
func (cs *catalogService) ToggleFavorite(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, apperr.New(http.StatusUnauthorized, "unauthorized", apperr.ErrUnauthorized)
	}
	key := favoritesKeyFor(userID)
	raw, err := cs.favorites.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("error reading favorites: %w", err)
	}
	current := decodeFavorites(raw)

	next := make([]string, 0, len(current)+1)
	nowFavorite := true
	for _, id := range current {
		if id == courseID {
			nowFavorite = false
			continue
		}
		next = append(next, id.String())
	}
	if nowFavorite {
		next = append(next, courseID.String())
	}
	sort.Strings(next)

	encoded, err := json.Marshal(next)
	if err != nil {
		return false, err
	}
	if err := cs.favorites.Set(ctx, key, encoded); err != nil {
		return false, fmt.Errorf("error saving favorites: %w", err)
	}
	return nowFavorite, nil
}
