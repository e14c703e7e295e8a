package catalog

import (
	"fmt"
	"math/rand/v2"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/devkeshravani/engagewise-commerce-76/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	palette = []string{"Black", "White", "Navy", "Gray", "Beige", "Blue", "Red", "Green", "Purple", "Pink"}

	tagPool = []string{
		"bestseller", "new arrival", "limited edition", "sustainable",
		"organic", "hand-crafted", "exclusive", "premium", "eco-friendly",
		"fair trade", "vegan", "luxury", "designer", "classic", "trending",
	}

	descriptions = []string{
		"This premium piece features a tailored fit with exceptional attention to detail. Crafted from high-quality materials, it offers both comfort and style for everyday wear.",
		"Elevate your wardrobe with this meticulously crafted piece. The luxurious fabric drapes beautifully and features subtle detailing that sets it apart.",
		"Designed with the modern individual in mind, this piece combines contemporary styling with timeless appeal and a flattering fit for all body types.",
		"This statement piece showcases exceptional craftsmanship. The premium materials ensure durability and comfort throughout the day.",
		"Embrace elegance with this carefully designed wardrobe essential. The comfortable fit ensures you'll reach for it again and again.",
		"This sophisticated piece offers the perfect blend of comfort and style, with expert tailoring for a flattering silhouette.",
	}

	reviewTemplates = []models.Review{
		{Author: "Sarah M.", Rating: 5, Comment: "Absolutely love this piece! The quality is exceptional, and it fits perfectly.", Helpful: 12},
		{Author: "James T.", Rating: 4, Comment: "Great product overall. Sizing runs a bit large, would recommend sizing down.", Helpful: 8},
		{Author: "Emma L.", Rating: 5, Comment: "The color is even more beautiful in person. Shipping was fast too!", Helpful: 15},
		{Author: "Michael K.", Rating: 3, Comment: "Decent product but not as pictured. The material isn't as soft as expected.", Helpful: 4},
		{Author: "Rebecca W.", Rating: 5, Comment: "My third purchase from this brand and they never disappoint.", Helpful: 9},
		{Author: "David P.", Rating: 2, Comment: "The stitching came loose after just two wears. Not worth the price.", Helpful: 11},
		{Author: "Jennifer A.", Rating: 4, Comment: "Versatile piece that can be dressed up or down. Good value for the price.", Helpful: 6},
	}
)

// Generate builds a deterministic demo catalog of count products spread
// evenly over the registry. The same seed always yields the same catalog.
func Generate(registry *Registry, count int, seed uint64) []models.Product {
	categories := registry.Categories()
	if count <= 0 || len(categories) == 0 {
		return []models.Product{}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	perCategory := (count + len(categories) - 1) / len(categories)
	base := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	products := make([]models.Product, 0, count)

	for _, category := range categories {
		for i := 0; i < perCategory && len(products) < count; i++ {
			n := len(products) + 1
			sub := pick(rng, category.Subcategories)

			price := decimal.NewFromFloat(29.99).Add(decimal.NewFromInt(rng.Int64N(100)))
			p := models.Product{
				ID:          fmt.Sprintf("product-%d", n),
				Name:        strings.TrimSpace(sub + " " + strings.TrimSuffix(category.Name, "s")),
				Description: pick(rng, descriptions),
				Price:       price,
				Category:    category.Name,
				Subcategory: sub,
				Featured:    rng.Float64() > 0.7,
				Rating:      decimal.NewFromFloat(3 + rng.Float64()*2).Round(1).InexactFloat64(),
				Colors:      distinct(rng, palette, 2+rng.IntN(3)),
				Sizes:       slices.Clone(models.CanonicalSizes[:3+rng.IntN(3)]),
				Tags:        distinct(rng, tagPool, 2+rng.IntN(3)),
				CreatedAt:   base.Add(time.Duration(n) * 24 * time.Hour),
			}
			if rng.Float64() > 0.7 {
				original := price.Add(decimal.NewFromInt(10 + rng.Int64N(30)))
				p.OriginalPrice = &original
			}
			for j := 0; j < 1+rng.IntN(2); j++ {
				p.Images = append(p.Images, imageURL(category.Name, rng.IntN(1000)))
			}
			for k := 0; k < 1+rng.IntN(3); k++ {
				review := reviewTemplates[rng.IntN(len(reviewTemplates))]
				review.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(fmt.Sprintf("%s/review/%d", p.ID, k)))
				review.ProductID = p.ID
				review.CreatedAt = p.CreatedAt.Add(time.Duration(k+1) * 72 * time.Hour)
				p.Reviews = append(p.Reviews, review)
			}
			products = append(products, p)
		}
	}
	return products
}

func imageURL(category string, sig int) string {
	return fmt.Sprintf("https://source.unsplash.com/random/600x800?%s&sig=%d", url.QueryEscape(strings.ToLower(category)), sig)
}

func pick(rng *rand.Rand, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[rng.IntN(len(values))]
}

// distinct draws n values from pool without repeats.
func distinct(rng *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, 0, n)
	for _, i := range rng.Perm(len(pool))[:n] {
		out = append(out, pool[i])
	}
	return out
}
