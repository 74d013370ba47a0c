// Package analytics derives the admin dashboard statistics from the live
// artwork and testimonial collections. The ratios are business-chosen
// constants, not measurements: views scale with inventory size, orders with
// testimonial volume. The magnitudes are jittered on purpose so the
// dashboard does not look frozen between data changes.
package analytics

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/yuviart/storefront/internal/mockdata"
	"github.com/yuviart/storefront/internal/models"
)

const viewsPerArtwork = 150

var chartDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Per-weekday shares of totalViews/totalOrders. Each set sums to 1.0, so the
// bucketed values add back up to the total minus flooring remainder.
var (
	viewWeights  = []float64{0.13, 0.15, 0.14, 0.16, 0.15, 0.17, 0.10}
	orderWeights = []float64{0.13, 0.15, 0.14, 0.17, 0.15, 0.18, 0.08}
)

// Fallbacks shown when a view bucket computes to zero.
const (
	defaultTodayViews   = 52
	defaultWeeklyViews  = 336
	defaultMonthlyViews = 1365
)

// Engine computes DashboardStats snapshots. The random source is injected so
// tests can pin the jitter; New seeds from the clock for production use.
// One engine is shared across request goroutines, and rand.Rand is not
// concurrency-safe, so draws go through the mutex.
type Engine struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func New() *Engine {
	return NewWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewWithSource(rnd *rand.Rand) *Engine {
	return &Engine{rnd: rnd}
}

// Compute builds a full statistics snapshot. It is a pure function of its
// inputs and the engine's random source; nothing is cached or mutated.
func (e *Engine) Compute(artworks []models.Artwork, testimonials []models.Testimonial) models.DashboardStats {
	totalArtworkCount := len(artworks) + mockdata.ArtworkCount
	totalTestimonialCount := len(testimonials) + mockdata.TestimonialCount

	revenue := float64(mockdata.ArtworkCount * mockdata.AvgPrice)
	ratingSum := 0
	for _, a := range artworks {
		revenue += a.Price
		ratingSum += a.Rating
	}

	avgRating := 4.8
	if len(artworks) > 0 && ratingSum > 0 {
		avgRating = math.Round(float64(ratingSum)/float64(len(artworks))*10) / 10
	}

	counts, order := categoryBreakdown(artworks)

	baseViews := totalArtworkCount * viewsPerArtwork
	totalViews := baseViews
	if bound := totalArtworkCount * 50; bound > 0 {
		e.mu.Lock()
		totalViews += e.rnd.Intn(bound)
		e.mu.Unlock()
	}

	totalOrders := floorFrac(totalTestimonialCount, 0.65) + floorFrac(totalArtworkCount, 0.15)
	pendingOrders := floorFrac(totalOrders, 0.12)

	stats := models.DashboardStats{
		TotalArtworks:     totalArtworkCount,
		TotalRevenue:      revenue,
		TotalTestimonials: totalTestimonialCount,
		AvgRating:         avgRating,
		TotalViews:        totalViews,
		TodayViews:        fallback(floorFrac(totalViews, 0.025), defaultTodayViews),
		WeeklyViews:       fallback(floorFrac(totalViews, 0.16), defaultWeeklyViews),
		MonthlyViews:      fallback(floorFrac(totalViews, 0.65), defaultMonthlyViews),
		TotalOrders:       totalOrders,
		PendingOrders:     pendingOrders,
		CompletedOrders:   totalOrders - pendingOrders,
		ActiveUsers:       floorFrac(totalViews, 0.04),
		ChartData:         chartData(totalViews, totalOrders),
		CategoryViews:     categoryViews(counts, order, totalViews),
	}
	return stats
}

// categoryBreakdown counts live artworks by primary category and adds the
// baseline offsets on top. The returned slice preserves insertion order,
// which later breaks percentage ties.
func categoryBreakdown(artworks []models.Artwork) (map[string]int, []string) {
	counts := make(map[string]int)
	var order []string

	add := func(cat string, n int) {
		if _, seen := counts[cat]; !seen {
			order = append(order, cat)
		}
		counts[cat] += n
	}

	for _, a := range artworks {
		add(a.Category.Primary(), 1)
	}

	add("paintings", mockdata.PaintingsOffset)
	add("sketches", mockdata.SketchesOffset)
	add("custom", mockdata.CustomOffset)
	add("portraits", mockdata.PortraitsOffset)

	return counts, order
}

func chartData(totalViews, totalOrders int) []models.DayActivity {
	data := make([]models.DayActivity, len(chartDays))
	for i, day := range chartDays {
		data[i] = models.DayActivity{
			Day:    day,
			Views:  floorFrac(totalViews, viewWeights[i]),
			Orders: floorFrac(totalOrders, orderWeights[i]),
		}
	}
	return data
}

func categoryViews(counts map[string]int, order []string, totalViews int) []models.CategoryViews {
	if len(order) == 0 {
		return []models.CategoryViews{{Category: "No Data", Views: 0, Percentage: 0}}
	}

	total := 0
	for _, cat := range order {
		total += counts[cat]
	}
	if total == 0 {
		total = 1
	}

	rows := make([]models.CategoryViews, 0, len(order))
	for _, cat := range order {
		percentage := counts[cat] * 100 / total
		rows = append(rows, models.CategoryViews{
			Category:   capitalize(cat),
			Views:      totalViews * percentage / 100,
			Percentage: percentage,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Percentage > rows[j].Percentage
	})
	return rows
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func floorFrac(n int, frac float64) int {
	return int(math.Floor(float64(n) * frac))
}

func fallback(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
