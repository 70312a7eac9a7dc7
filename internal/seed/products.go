package seed

import (
	"time"

	"glowmart/internal/domain/model"

	"github.com/google/uuid"
)

func offer(v float64) *float64 {
	return &v
}

// SampleProducts は初期投入用の固定カタログを返す
// IDと作成時刻は呼び出しのたびに新しく振られる
func SampleProducts() []model.Product {
	now := time.Now()

	return []model.Product{
		// Skincare
		{
			ID:          uuid.NewString(),
			Name:        "Vitamin C Brightening Serum",
			Description: "A powerful brightening serum enriched with 20% Vitamin C to reduce dark spots and even skin tone.",
			Price:       899,
			OfferPrice:  offer(699),
			Category:    "skincare",
			Concern:     "dark_spots",
			Images:      []string{"https://images.unsplash.com/photo-1613803745799-ba6c10aace85"},
			Rating:      4.7,
			ReviewCount: 234,
			Ingredients: "Vitamin C, Hyaluronic Acid, Niacinamide",
			HowToUse:    "Apply 2-3 drops on clean face, massage gently. Use morning and night.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Hyaluronic Acid Hydrating Cream",
			Description: "Deep moisturizing cream with hyaluronic acid for plump, hydrated skin.",
			Price:       749,
			OfferPrice:  offer(599),
			Category:    "skincare",
			Concern:     "dry_skin",
			Images:      []string{"https://images.unsplash.com/photo-1580870069867-74c57ee1bb07"},
			Rating:      4.6,
			ReviewCount: 189,
			Ingredients: "Hyaluronic Acid, Glycerin, Ceramides",
			HowToUse:    "Apply on damp skin after cleansing. Use twice daily.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Tea Tree Acne Control Serum",
			Description: "Combat acne with this powerful tea tree oil based serum. Reduces breakouts and blemishes.",
			Price:       649,
			OfferPrice:  offer(499),
			Category:    "skincare",
			Concern:     "acne",
			Images:      []string{"https://images.unsplash.com/photo-1591130901921-3f0652bb3915"},
			Rating:      4.5,
			ReviewCount: 156,
			Ingredients: "Tea Tree Oil, Salicylic Acid, Witch Hazel",
			HowToUse:    "Apply on affected areas after cleansing. Use at night.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Retinol Anti-Aging Night Cream",
			Description: "Clinically proven retinol formula to reduce fine lines and wrinkles.",
			Price:       1299,
			OfferPrice:  offer(999),
			Category:    "skincare",
			Concern:     "aging",
			Images:      []string{"https://images.pexels.com/photos/19797381/pexels-photo-19797381.jpeg"},
			Rating:      4.8,
			ReviewCount: 312,
			Ingredients: "Retinol, Peptides, Vitamin E",
			HowToUse:    "Apply at night on clean skin. Use sunscreen during day.",
			InStock:     true,
			CreatedAt:   now,
		},
		// Haircare
		{
			ID:          uuid.NewString(),
			Name:        "Biotin Hair Growth Shampoo",
			Description: "Strengthen hair and promote growth with biotin-enriched formula.",
			Price:       599,
			OfferPrice:  offer(449),
			Category:    "haircare",
			Concern:     "hair_fall",
			Images:      []string{"https://images.unsplash.com/photo-1647920155220-538f9bf35586"},
			Rating:      4.5,
			ReviewCount: 278,
			Ingredients: "Biotin, Keratin, Argan Oil",
			HowToUse:    "Apply on wet hair, massage, rinse thoroughly. Use 2-3 times weekly.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Anti-Dandruff Tea Tree Shampoo",
			Description: "Natural tea tree oil formula to eliminate dandruff and soothe scalp.",
			Price:       549,
			OfferPrice:  offer(399),
			Category:    "haircare",
			Concern:     "dandruff",
			Images:      []string{"https://images.unsplash.com/photo-1624939461078-66a124b3539c"},
			Rating:      4.6,
			ReviewCount: 201,
			Ingredients: "Tea Tree Oil, Salicylic Acid, Menthol",
			HowToUse:    "Apply on scalp, massage for 2 minutes, rinse. Use regularly.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Argan Oil Hair Serum",
			Description: "Lightweight serum for smooth, shiny, frizz-free hair.",
			Price:       799,
			OfferPrice:  offer(649),
			Category:    "haircare",
			Concern:     "frizzy_hair",
			Images:      []string{"https://images.unsplash.com/photo-1734892494600-c0b59a3f7cdb"},
			Rating:      4.7,
			ReviewCount: 167,
			Ingredients: "Argan Oil, Vitamin E, Coconut Oil",
			HowToUse:    "Apply 2-3 drops on damp or dry hair. Style as usual.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Deep Conditioning Hair Mask",
			Description: "Intensive repair treatment for damaged and dry hair.",
			Price:       699,
			OfferPrice:  offer(549),
			Category:    "haircare",
			Concern:     "damaged_hair",
			Images:      []string{"https://images.pexels.com/photos/3738341/pexels-photo-3738341.jpeg"},
			Rating:      4.8,
			ReviewCount: 245,
			Ingredients: "Shea Butter, Coconut Oil, Protein Complex",
			HowToUse:    "Apply on damp hair, leave for 15 minutes, rinse. Use weekly.",
			InStock:     true,
			CreatedAt:   now,
		},
		// Body Care
		{
			ID:          uuid.NewString(),
			Name:        "Coconut Body Butter",
			Description: "Rich, creamy body butter for ultra-soft, moisturized skin.",
			Price:       849,
			OfferPrice:  offer(699),
			Category:    "bodycare",
			Concern:     "dry_skin",
			Images:      []string{"https://images.unsplash.com/photo-1610551745215-1a4b5f36de8f"},
			Rating:      4.7,
			ReviewCount: 198,
			Ingredients: "Coconut Oil, Shea Butter, Vitamin E",
			HowToUse:    "Apply on clean skin after shower. Massage gently.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Vitamin E Body Lotion",
			Description: "Lightweight daily moisturizer with vitamin E for healthy skin.",
			Price:       599,
			OfferPrice:  offer(449),
			Category:    "bodycare",
			Concern:     "dull_skin",
			Images:      []string{"https://images.unsplash.com/photo-1598662957563-ee4965d4d72c"},
			Rating:      4.5,
			ReviewCount: 134,
			Ingredients: "Vitamin E, Aloe Vera, Glycerin",
			HowToUse:    "Apply daily on body after bath.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Coffee Body Scrub",
			Description: "Exfoliating scrub to remove dead skin and reveal smooth, glowing skin.",
			Price:       549,
			OfferPrice:  offer(399),
			Category:    "bodycare",
			Concern:     "dull_skin",
			Images:      []string{"https://images.unsplash.com/photo-1526947425960-945c6e72858f"},
			Rating:      4.6,
			ReviewCount: 223,
			Ingredients: "Coffee Grounds, Coconut Oil, Sugar",
			HowToUse:    "Apply on wet skin, scrub gently, rinse. Use 2-3 times weekly.",
			InStock:     true,
			CreatedAt:   now,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Lavender Bath Salts",
			Description: "Relaxing bath salts infused with lavender for ultimate relaxation.",
			Price:       499,
			OfferPrice:  offer(349),
			Category:    "bodycare",
			Concern:     "stress",
			Images:      []string{"https://images.pexels.com/photos/4202325/pexels-photo-4202325.jpeg"},
			Rating:      4.8,
			ReviewCount: 145,
			Ingredients: "Lavender Essential Oil, Epsom Salt, Sea Salt",
			HowToUse:    "Add to warm bath water. Soak for 20 minutes.",
			InStock:     true,
			CreatedAt:   now,
		},
	}
}
