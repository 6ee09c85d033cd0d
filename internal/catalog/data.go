package catalog

import "github.com/Veraticus/nichewise/internal/model"

// Version identifies the static data set. Bump when rates or entries change.
const Version = "2025.08"

// defaultCategories is the static rate table. Long-form RPMs are monthly
// averages for US-skewed audiences; shorts are priced flat platform-wide.
var defaultCategories = []model.CategoryRate{
	{
		ID:              "finance",
		DisplayName:     "Finance & Investing",
		Description:     "Personal finance, investing, markets, and money management",
		LongFormRPMUSD:  22.0,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
	{
		ID:              "business",
		DisplayName:     "Business & Entrepreneurship",
		Description:     "Startups, entrepreneurship, marketing, and online business",
		LongFormRPMUSD:  18.0,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
	{
		ID:              "technology",
		DisplayName:     "Technology",
		Description:     "Software, hardware, AI, and consumer electronics",
		LongFormRPMUSD:  15.0,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
	{
		ID:              "education",
		DisplayName:     "Education",
		Description:     "Tutorials, explainers, study skills, and academic content",
		LongFormRPMUSD:  12.0,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
	{
		ID:              "health",
		DisplayName:     "Health & Fitness",
		Description:     "Fitness training, nutrition, and general wellness",
		LongFormRPMUSD:  10.0,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
	{
		ID:              "beauty",
		DisplayName:     "Beauty & Fashion",
		Description:     "Makeup, skincare, and style content",
		LongFormRPMUSD:  8.0,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
	{
		ID:              "travel",
		DisplayName:     "Travel",
		Description:     "Destination guides, travel vlogs, and trip planning",
		LongFormRPMUSD:  7.5,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
	{
		ID:              "food",
		DisplayName:     "Food & Cooking",
		Description:     "Recipes, cooking technique, and food culture",
		LongFormRPMUSD:  6.5,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
	{
		ID:              "lifestyle",
		DisplayName:     "Lifestyle & Vlogs",
		Description:     "Daily vlogs, productivity, and lifestyle design",
		LongFormRPMUSD:  5.5,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
	{
		ID:              "entertainment",
		DisplayName:     "Entertainment",
		Description:     "Commentary, reactions, movie talk, and general entertainment",
		LongFormRPMUSD:  4.5,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
	{
		ID:              "gaming",
		DisplayName:     "Gaming",
		Description:     "Gameplay, esports, and game culture",
		LongFormRPMUSD:  4.0,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
	{
		ID:              "music",
		DisplayName:     "Music",
		Description:     "Performance, production, and music commentary",
		LongFormRPMUSD:  3.5,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
	{
		ID:              model.GeneralCategoryID,
		DisplayName:     "General",
		Description:     "Catch-all for content that fits no specific category",
		LongFormRPMUSD:  3.0,
		ShortFormRPMUSD: model.ShortFormRPMUSD,
	},
}

// defaultNiches is the granular niche catalog. Declaration order matters:
// partial and fuzzy ties resolve to whichever entry appears first here.
var defaultNiches = []model.NicheEntry{
	// Finance
	{
		ID:             "personal-finance",
		DisplayName:    "Personal Finance",
		ParentCategory: "finance",
		Description:    "Budgeting, saving, and debt payoff content",
		Keywords:       []string{"personal finance", "budgeting", "saving money", "debt"},
		Aliases:        []string{"frugal living", "money management"},
		LongFormRPMUSD: 23.0,
	},
	{
		ID:             "investing",
		DisplayName:    "Investing",
		ParentCategory: "finance",
		Description:    "Stock market analysis and long-term investing",
		Keywords:       []string{"investing", "stocks", "stock market", "index funds"},
		Aliases:        []string{"dividends", "etf"},
		LongFormRPMUSD: 24.0,
	},
	{
		ID:             "crypto",
		DisplayName:    "Cryptocurrency",
		ParentCategory: "finance",
		Description:    "Crypto markets, bitcoin, and blockchain projects",
		Keywords:       []string{"crypto", "cryptocurrency", "bitcoin", "ethereum"},
		Aliases:        []string{"web3", "defi"},
		LongFormRPMUSD: 20.0,
	},
	{
		ID:             "real-estate",
		DisplayName:    "Real Estate",
		ParentCategory: "finance",
		Description:    "Property investing and housing market analysis",
		Keywords:       []string{"real estate", "property investing", "housing market"},
		Aliases:        []string{"landlord", "house flipping"},
		LongFormRPMUSD: 21.0,
	},

	// Business
	{
		ID:             "entrepreneurship",
		DisplayName:    "Entrepreneurship",
		ParentCategory: "business",
		Description:    "Building and scaling companies",
		Keywords:       []string{"entrepreneurship", "startup", "business advice"},
		Aliases:        []string{"founder", "small business"},
		LongFormRPMUSD: 18.5,
	},
	{
		ID:             "ecommerce",
		DisplayName:    "E-commerce",
		ParentCategory: "business",
		Description:    "Online stores, dropshipping, and marketplaces",
		Keywords:       []string{"ecommerce", "dropshipping", "shopify", "amazon fba"},
		Aliases:        []string{"online store"},
		LongFormRPMUSD: 17.5,
	},

	// Technology
	{
		ID:             "programming",
		DisplayName:    "Programming",
		ParentCategory: "technology",
		Description:    "Coding tutorials and software engineering",
		Keywords:       []string{"programming", "coding", "software development"},
		Aliases:        []string{"web development", "python tutorials"},
		LongFormRPMUSD: 16.0,
	},
	{
		ID:             "artificial-intelligence",
		DisplayName:    "Artificial Intelligence",
		ParentCategory: "technology",
		Description:    "AI tools, machine learning, and automation",
		Keywords:       []string{"artificial intelligence", "machine learning", "ai tools"},
		Aliases:        []string{"ai", "chatbots"},
		LongFormRPMUSD: 17.0,
	},
	{
		ID:             "gadget-reviews",
		DisplayName:    "Gadget Reviews",
		ParentCategory: "technology",
		Description:    "Consumer electronics reviews and unboxings",
		Keywords:       []string{"gadgets", "gadget reviews", "unboxing", "smartphone reviews"},
		Aliases:        []string{"tech reviews"},
		LongFormRPMUSD: 14.0,
	},

	// Education
	{
		ID:             "study-skills",
		DisplayName:    "Study Skills",
		ParentCategory: "education",
		Description:    "Study techniques and exam preparation",
		Keywords:       []string{"study tips", "studying", "exam prep"},
		Aliases:        []string{"studytube", "note taking"},
		LongFormRPMUSD: 12.5,
	},
	{
		ID:             "language-learning",
		DisplayName:    "Language Learning",
		ParentCategory: "education",
		Description:    "Learning and teaching languages",
		Keywords:       []string{"language learning", "learn english", "learn spanish"},
		Aliases:        []string{"polyglot"},
		LongFormRPMUSD: 11.5,
	},
	{
		ID:             "science-explainers",
		DisplayName:    "Science Explainers",
		ParentCategory: "education",
		Description:    "Accessible science and engineering explainers",
		Keywords:       []string{"science", "physics explained", "space"},
		Aliases:        []string{"edutainment"},
		LongFormRPMUSD: 12.0,
	},

	// Health
	{
		ID:             "fitness-training",
		DisplayName:    "Fitness Training",
		ParentCategory: "health",
		Description:    "Workout programming and gym content",
		Keywords:       []string{"fitness", "workout", "gym", "strength training"},
		Aliases:        []string{"bodybuilding", "home workouts"},
		LongFormRPMUSD: 10.5,
	},
	{
		ID:             "yoga",
		DisplayName:    "Yoga & Mobility",
		ParentCategory: "health",
		Description:    "Yoga flows, stretching, and mobility work",
		Keywords:       []string{"yoga", "stretching", "mobility"},
		Aliases:        []string{"pilates"},
		LongFormRPMUSD: 9.5,
	},
	{
		ID:             "nutrition",
		DisplayName:    "Nutrition",
		ParentCategory: "health",
		Description:    "Diet, meal prep, and healthy eating",
		Keywords:       []string{"nutrition", "healthy eating", "meal prep"},
		Aliases:        []string{"diet"},
		LongFormRPMUSD: 10.0,
	},

	// Beauty
	{
		ID:             "makeup-tutorials",
		DisplayName:    "Makeup Tutorials",
		ParentCategory: "beauty",
		Description:    "Makeup technique and product tutorials",
		Keywords:       []string{"makeup", "makeup tutorial", "cosmetics"},
		Aliases:        []string{"beauty tips"},
		LongFormRPMUSD: 8.5,
	},
	{
		ID:             "skincare",
		DisplayName:    "Skincare",
		ParentCategory: "beauty",
		Description:    "Skincare routines and product reviews",
		Keywords:       []string{"skincare", "skin care routine"},
		Aliases:        []string{"dermatology"},
		LongFormRPMUSD: 8.0,
	},

	// Travel
	{
		ID:             "budget-travel",
		DisplayName:    "Budget Travel",
		ParentCategory: "travel",
		Description:    "Low-cost travel guides and hacks",
		Keywords:       []string{"budget travel", "backpacking", "travel tips"},
		Aliases:        []string{"cheap flights"},
		LongFormRPMUSD: 7.5,
	},
	{
		ID:             "van-life",
		DisplayName:    "Van Life",
		ParentCategory: "travel",
		Description:    "Vehicle conversions and nomadic living",
		Keywords:       []string{"van life", "camper conversion", "nomad"},
		Aliases:        []string{"rv living"},
		LongFormRPMUSD: 7.0,
	},

	// Food
	{
		ID:             "cooking",
		DisplayName:    "Cooking",
		ParentCategory: "food",
		Description:    "Recipes and cooking technique",
		Keywords:       []string{"cooking", "recipes", "home cooking"},
		Aliases:        []string{"chef"},
		LongFormRPMUSD: 6.5,
	},
	{
		ID:             "baking",
		DisplayName:    "Baking",
		ParentCategory: "food",
		Description:    "Bread, pastry, and dessert baking",
		Keywords:       []string{"baking", "bread", "pastry"},
		Aliases:        []string{"sourdough"},
		LongFormRPMUSD: 6.0,
	},

	// Lifestyle
	{
		ID:             "productivity",
		DisplayName:    "Productivity",
		ParentCategory: "lifestyle",
		Description:    "Time management and productivity systems",
		Keywords:       []string{"productivity", "time management", "habits"},
		Aliases:        []string{"self improvement"},
		LongFormRPMUSD: 6.0,
	},
	{
		ID:             "minimalism",
		DisplayName:    "Minimalism",
		ParentCategory: "lifestyle",
		Description:    "Decluttering and intentional living",
		Keywords:       []string{"minimalism", "decluttering", "simple living"},
		Aliases:        []string{"slow living"},
		LongFormRPMUSD: 5.0,
	},

	// Entertainment
	{
		ID:             "movie-reviews",
		DisplayName:    "Movie Reviews",
		ParentCategory: "entertainment",
		Description:    "Film reviews and cinema commentary",
		Keywords:       []string{"movie reviews", "film analysis", "cinema"},
		Aliases:        []string{"film critic"},
		LongFormRPMUSD: 4.8,
	},
	{
		ID:             "reaction",
		DisplayName:    "Reaction Content",
		ParentCategory: "entertainment",
		Description:    "Reaction and commentary videos",
		Keywords:       []string{"reactions", "reaction videos", "commentary"},
		Aliases:        []string{"react"},
		LongFormRPMUSD: 4.0,
	},

	// Gaming
	{
		ID:             "minecraft",
		DisplayName:    "Minecraft",
		ParentCategory: "gaming",
		Description:    "Minecraft gameplay, builds, and survival series",
		Keywords:       []string{"minecraft", "minecraft gameplay", "minecraft builds"},
		Aliases:        []string{"minecraft survival"},
		LongFormRPMUSD: 4.2,
	},
	{
		ID:             "fortnite",
		DisplayName:    "Fortnite",
		ParentCategory: "gaming",
		Description:    "Fortnite gameplay and battle royale content",
		Keywords:       []string{"fortnite", "battle royale"},
		Aliases:        []string{"fortnite clips"},
		LongFormRPMUSD: 3.8,
	},
	{
		ID:             "roblox",
		DisplayName:    "Roblox",
		ParentCategory: "gaming",
		Description:    "Roblox games and community content",
		Keywords:       []string{"roblox", "roblox games"},
		Aliases:        []string{},
		LongFormRPMUSD: 3.5,
	},
	{
		ID:             "esports",
		DisplayName:    "Esports",
		ParentCategory: "gaming",
		Description:    "Competitive gaming and tournament coverage",
		Keywords:       []string{"esports", "competitive gaming", "tournaments"},
		Aliases:        []string{"pro gaming"},
		LongFormRPMUSD: 4.5,
	},
	{
		ID:             "game-reviews",
		DisplayName:    "Game Reviews",
		ParentCategory: "gaming",
		Description:    "Game reviews and critique",
		Keywords:       []string{"game reviews", "game critique"},
		Aliases:        []string{"games journalism"},
		LongFormRPMUSD: 4.8,
	},

	// Music
	{
		ID:             "music-production",
		DisplayName:    "Music Production",
		ParentCategory: "music",
		Description:    "Beat making, mixing, and production tutorials",
		Keywords:       []string{"music production", "beat making", "mixing"},
		Aliases:        []string{"producer"},
		LongFormRPMUSD: 4.0,
	},
	{
		ID:             "covers",
		DisplayName:    "Covers & Performance",
		ParentCategory: "music",
		Description:    "Song covers and live performance",
		Keywords:       []string{"song covers", "singing", "acoustic covers"},
		Aliases:        []string{"musician"},
		LongFormRPMUSD: 3.2,
	},

	// General fallback. Must stay last and must exist: the classifier's
	// default tier and the resolver's unknown-category path both land here.
	{
		ID:             model.GeneralCategoryID,
		DisplayName:    "General Content",
		ParentCategory: model.GeneralCategoryID,
		Description:    "Variety content with no dominant topic",
		Keywords:       []string{"variety", "general content"},
		Aliases:        []string{},
		LongFormRPMUSD: 3.0,
	},
}
