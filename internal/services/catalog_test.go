package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge-backend/internal/kv"
	"github.com/skillbridge/skillbridge-backend/internal/repos"
	"github.com/skillbridge/skillbridge-backend/internal/types"
)

func catalogFixture() []*types.Course {
	return []*types.Course{
		{
			ID:            uuid.New(),
			Title:         "Swift Fundamentals",
			Provider:      "Coursera",
			Description:   "Learn the Swift language from scratch",
			DurationWeeks: 2,
			Price:         0,
			Level:         types.CourseLevelBeginner,
		},
		{
			ID:            uuid.New(),
			Title:         "SwiftUI Basics",
			Provider:      "Udemy",
			Description:   "Declarative UI for Apple platforms",
			DurationWeeks: 3,
			Price:         49.99,
			Level:         types.CourseLevelIntermediate,
		},
		{
			ID:            uuid.New(),
			Title:         "Unit Testing for iOS",
			Provider:      "raywenderlich",
			Description:   "XCTest and test doubles in practice",
			DurationWeeks: 3,
			Price:         59,
			Level:         types.CourseLevelIntermediate,
		},
		{
			ID:            uuid.New(),
			Title:         "Architecting with MVVM",
			Provider:      "Udemy",
			Description:   "Structure large apps around MVVM",
			DurationWeeks: 5,
			Price:         129,
			Level:         types.CourseLevelAdvanced,
		},
	}
}

func titles(courses []*types.Course) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.Title)
	}
	return out
}

func TestFilterCoursesSearch(t *testing.T) {
	courses := catalogFixture()

	got := FilterCourses(courses, CourseFilter{Query: "SWIFT"})
	assert.Equal(t, []string{"Swift Fundamentals", "SwiftUI Basics"}, titles(got))

	// Description and provider participate in the match.
	got = FilterCourses(courses, CourseFilter{Query: "xctest"})
	assert.Equal(t, []string{"Unit Testing for iOS"}, titles(got))
	got = FilterCourses(courses, CourseFilter{Query: "udemy"})
	assert.Equal(t, []string{"SwiftUI Basics", "Architecting with MVVM"}, titles(got))

	got = FilterCourses(courses, CourseFilter{Query: "no such course"})
	assert.Empty(t, got)
}

func TestFilterCoursesFacets(t *testing.T) {
	courses := catalogFixture()

	tests := []struct {
		name   string
		filter CourseFilter
		want   []string
	}{
		{name: "free", filter: CourseFilter{Price: PriceFree}, want: []string{"Swift Fundamentals"}},
		{name: "paid", filter: CourseFilter{Price: PricePaid}, want: []string{"SwiftUI Basics", "Unit Testing for iOS", "Architecting with MVVM"}},
		{name: "low includes boundary", filter: CourseFilter{Price: PriceLow}, want: []string{"SwiftUI Basics"}},
		{name: "medium", filter: CourseFilter{Price: PriceMedium}, want: []string{"Unit Testing for iOS"}},
		{name: "high", filter: CourseFilter{Price: PriceHigh}, want: []string{"Architecting with MVVM"}},
		{name: "short", filter: CourseFilter{Duration: DurationShort}, want: []string{"Swift Fundamentals"}},
		{name: "medium duration", filter: CourseFilter{Duration: DurationMedium}, want: []string{"SwiftUI Basics", "Unit Testing for iOS"}},
		{name: "long", filter: CourseFilter{Duration: DurationLong}, want: []string{"Architecting with MVVM"}},
		{name: "all passes everything", filter: CourseFilter{Price: PriceAll, Duration: DurationAll}, want: titles(courses)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, titles(FilterCourses(courses, tc.filter)))
		})
	}
}

func TestFilterCoursesComposesWithAnd(t *testing.T) {
	courses := catalogFixture()
	level := types.CourseLevelIntermediate

	got := FilterCourses(courses, CourseFilter{
		Query:    "swift",
		Price:    PricePaid,
		Duration: DurationMedium,
		Level:    &level,
	})
	assert.Equal(t, []string{"SwiftUI Basics"}, titles(got))

	// Tightening any one facet empties the result.
	got = FilterCourses(courses, CourseFilter{Query: "swift", Price: PriceHigh})
	assert.Empty(t, got)
}

func TestFilterCoursesDoesNotMutateInput(t *testing.T) {
	courses := catalogFixture()
	before := titles(courses)
	FilterCourses(courses, CourseFilter{Query: "swift", Price: PriceFree})
	assert.Equal(t, before, titles(courses))
}

func TestAutocomplete(t *testing.T) {
	courses := []*types.Course{
		{ID: uuid.New(), Title: "Swift Fundamentals", Provider: "Coursera"},
		{ID: uuid.New(), Title: "SwiftUI Basics", Provider: "Udemy"},
	}

	// Title words are capitalized after lowercasing, so "swiftui" surfaces
	// as "Swiftui" next to the vocabulary's "SwiftUI".
	got := Autocomplete("sw", courses)
	assert.Equal(t, []string{"Swift", "SwiftUI", "Swiftui"}, got)

	// Exact-length word matches are excluded: "swift" is not strictly
	// longer than the query.
	got = Autocomplete("swift", courses)
	assert.Equal(t, []string{"Swift", "SwiftUI", "Swiftui"}, got)

	// Provider names keep their original casing.
	got = Autocomplete("cou", courses)
	assert.Equal(t, []string{"Coursera"}, got)

	// Vocabulary-only hit.
	got = Autocomplete("fire", nil)
	assert.Equal(t, []string{"Firebase"}, got)

	assert.Empty(t, Autocomplete("", courses))
	assert.Empty(t, Autocomplete("zzz", courses))
}

func TestCatalogServiceListCourses(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	log := testLogger()
	courseRepo := repos.NewCourseRepo(db, log)

	_, err := courseRepo.Create(ctx, nil, catalogFixture())
	require.NoError(t, err)

	svc := NewCatalogService(db, log, courseRepo, kv.NewMemoryStore())

	all, err := svc.ListCourses(ctx, CourseFilter{})
	require.NoError(t, err)
	// The repo returns courses ordered by title.
	assert.Equal(t, []string{"Architecting with MVVM", "Swift Fundamentals", "SwiftUI Basics", "Unit Testing for iOS"}, titles(all))

	free, err := svc.ListCourses(ctx, CourseFilter{Price: PriceFree})
	require.NoError(t, err)
	assert.Equal(t, []string{"Swift Fundamentals"}, titles(free))
}

func TestCatalogServiceToggleFavorite(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	log := testLogger()
	store := kv.NewMemoryStore()
	svc := NewCatalogService(db, log, repos.NewCourseRepo(db, log), store)

	alice := uuid.New()
	bob := uuid.New()
	courseID := uuid.New()

	nowFavorite, err := svc.ToggleFavorite(ctx, alice, courseID)
	require.NoError(t, err)
	assert.True(t, nowFavorite)

	favs, err := svc.Favorites(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{courseID}, favs)

	// Favorites are scoped per user.
	bobFavs, err := svc.Favorites(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, bobFavs)

	nowFavorite, err = svc.ToggleFavorite(ctx, alice, courseID)
	require.NoError(t, err)
	assert.False(t, nowFavorite)

	favs, err = svc.Favorites(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestCatalogServiceFavoritesToleratesMalformedState(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	log := testLogger()
	store := kv.NewMemoryStore()
	svc := NewCatalogService(db, log, repos.NewCourseRepo(db, log), store)

	userID := uuid.New()
	require.NoError(t, store.Set(ctx, "favorite_courses_"+userID.String(), []byte("not json")))

	favs, err := svc.Favorites(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, favs)

	// Toggling resets the slot to a well-formed list.
	nowFavorite, err := svc.ToggleFavorite(ctx, userID, uuid.New())
	require.NoError(t, err)
	assert.True(t, nowFavorite)
}
