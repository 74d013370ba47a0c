// Package mockdata holds the hardcoded fallback dataset served when the
// backend is unreachable, plus the baseline constants the dashboard
// analytics are anchored on. The offsets mirror the category distribution
// of the fallback artworks; treat the values as product-owned constants.
package mockdata

import "github.com/yuviart/storefront/internal/models"

const (
	ArtworkCount     = 14
	TestimonialCount = 3
	AvgPrice         = 2500
)

// Baseline category offsets added on top of the live category breakdown.
const (
	PaintingsOffset = 5
	SketchesOffset  = 7
	CustomOffset    = 6
	PortraitsOffset = 4
)

func Artworks() []models.Artwork {
	return []models.Artwork{
		{ID: 1, Title: "Shree Krishn", Category: models.CategoryList{"paintings"}, Price: 2000, ImageURL: "/images/shreeKrishn.jpg", Description: "A soulful depiction of Lord Krishna radiating divine charm, serenity, and eternal love.", Rating: 5, Available: true},
		{ID: 2, Title: "Shree Radha Rani", Category: models.CategoryList{"sketches"}, Price: 2000, ImageURL: "/images/radharani.jpg", Description: "Graceful and divine, this sketch captures Radha Rani's ethereal beauty and pure devotion.", Rating: 5, Available: true},
		{ID: 3, Title: "Mahadev", Category: models.CategoryList{"paintings"}, Price: 3000, ImageURL: "/images/Mahadev.jpg", Description: "A powerful portrayal of Lord Shiva, symbolizing calm amidst chaos and supreme strength.", Rating: 5, Available: true},
		{ID: 4, Title: "Horses", Category: models.CategoryList{"sketches"}, Price: 2000, ImageURL: "/images/hourses.jpg", Description: "Dynamic sketch showcasing the grace, freedom, and raw energy of galloping horses.", Rating: 4, Available: true},
		{ID: 5, Title: "Shree Narshing Bhagwan", Category: models.CategoryList{"custom"}, Price: 2000, ImageURL: "/images/Narshing.jpg", Description: "Mythical and divine, capturing Lord Narasimha's fierce power protecting his devotee Prahlad.", Rating: 5, Available: true},
		{ID: 6, Title: "Durga Maa", Category: models.CategoryList{"paintings"}, Price: 3000, ImageURL: "/images/Durgamaa.jpg", Description: "A stunning artwork of Goddess Durga, symbolizing courage, strength, and divine motherhood.", Rating: 5, Available: true},
		{ID: 7, Title: "Gentle Man", Category: models.CategoryList{"sketches", "custom", "portraits"}, Price: 2000, ImageURL: "/images/custom.jpg", Description: "A refined pencil portrait capturing sophistication, confidence, and quiet strength.", Rating: 4, Available: true},
		{ID: 8, Title: "Guru Maharaj", Category: models.CategoryList{"sketches", "custom", "portraits"}, Price: 3000, ImageURL: "/images/guru.jpg", Description: "Spiritual portrait radiating peace, wisdom, and the timeless aura of a revered Guru.", Rating: 5, Available: true},
		{ID: 9, Title: "Sharswati Maa", Category: models.CategoryList{"paintings"}, Price: 4000, ImageURL: "/images/Sharswatimaa.jpg", Description: "An elegant painting of Goddess Saraswati, the divine muse of wisdom, art, and purity.", Rating: 4, Available: true},
		{ID: 10, Title: "Love Birds", Category: models.CategoryList{"sketches", "custom"}, Price: 2500, ImageURL: "/images/Couple.jpg", Description: "A tender sketch of two love birds symbolizing unity, affection, and eternal companionship.", Rating: 5, Available: true},
		{ID: 11, Title: "Mother and Child", Category: models.CategoryList{"sketches", "custom"}, Price: 2000, ImageURL: "/images/mother.jpg", Description: "Heartwarming sketch depicting the pure, unconditional bond between a mother and her child.", Rating: 5, Available: true},
		{ID: 12, Title: "Cutie", Category: models.CategoryList{"sketches", "custom", "portraits"}, Price: 2000, ImageURL: "/images/child.jpg", Description: "Adorable portrait of a cheerful child, full of innocence, laughter, and pure joy.", Rating: 5, Available: true},
		{ID: 13, Title: "Lord Ganesh", Category: models.CategoryList{"sketches"}, Price: 2000, ImageURL: "/images/ganesh.jpg", Description: "Delicate sketch of Lord Ganesha bringing wisdom, peace, and auspicious beginnings.", Rating: 4, Available: true},
		{ID: 14, Title: "Lord Vishnu", Category: models.CategoryList{"paintings"}, Price: 3000, ImageURL: "/images/LordVishnu.jpg", Description: "A divine portrayal of Lord Vishnu exuding calmness, balance, and supreme protection.", Rating: 5, Available: true},
	}
}

func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{ID: 1, Name: "Priya Sharma", Rating: 5, Text: "Absolutely breathtaking! Every stroke tells a story. The portrait exceeded my wildest expectations.", Approved: true},
		{ID: 2, Name: "Rahul Verma", Rating: 5, Text: "Exceptional talent and professionalism. The attention to detail is simply remarkable.", Approved: true},
		{ID: 3, Name: "Anita Desai", Rating: 5, Text: "A true artist with an incredible gift. The custom piece brought tears to my eyes.", Approved: true},
	}
}
