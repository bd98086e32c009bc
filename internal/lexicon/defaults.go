package lexicon

import "reddit-persona/internal/domain"

// Default construye el lexicon incorporado: los diez ejes con sus
// categorias y terminos. El orden de declaracion por eje importa,
// es el desempate del scorer.
func Default() (*Store, error) {
	return NewStore(defaultEntries())
}

func defaultEntries() []Entry {
	return []Entry{
		// basic_information
		{
			Dimension: domain.DimensionBasicInformation,
			Category:  "student_life",
			Trait:     "Student (18-25)",
			Terms:     []string{"college", "university", "student", "campus", "semester", "freshman"},
		},
		{
			Dimension: domain.DimensionBasicInformation,
			Category:  "working_professional",
			Trait:     "Working professional",
			Terms:     []string{"work as", "my job", "career", "profession", "employed", "coworker", "office", "salary"},
		},
		{
			Dimension: domain.DimensionBasicInformation,
			Category:  "family_household",
			Trait:     "Family-oriented household",
			Terms:     []string{"my kids", "children", "husband", "wife", "married", "my parents", "toddler"},
		},

		// interests_hobbies
		{
			Dimension: domain.DimensionInterestsHobbies,
			Category:  "gaming",
			Trait:     "Gaming enthusiast",
			Terms:     []string{"gaming", "video game", "console", "steam", "playstation", "xbox", "nintendo", "speedrun"},
		},
		{
			Dimension: domain.DimensionInterestsHobbies,
			Category:  "creative_arts",
			Trait:     "Creative hobbyist",
			Terms:     []string{"music", "drawing", "painting", "photography", "writing", "guitar", "sketch"},
		},
		{
			Dimension: domain.DimensionInterestsHobbies,
			Category:  "outdoors_sports",
			Trait:     "Outdoors and sports fan",
			Terms:     []string{"hiking", "running", "cycling", "camping", "football", "basketball", "climbing"},
		},
		{
			Dimension: domain.DimensionInterestsHobbies,
			Category:  "reading_media",
			Trait:     "Avid reader and media consumer",
			Terms:     []string{"reading", "books", "novel", "movies", "film", "series", "anime"},
		},
		{
			Dimension: domain.DimensionInterestsHobbies,
			Category:  "cooking_food",
			Trait:     "Home cook and foodie",
			Terms:     []string{"cooking", "recipe", "baking", "restaurant", "sourdough", "barbecue"},
		},

		// personality_traits
		{
			Dimension: domain.DimensionPersonalityTraits,
			Category:  "curious",
			Trait:     "Curious and inquisitive",
			Terms:     []string{"how to", "wonder", "curious", "why does", "what if", "learn"},
		},
		{
			Dimension: domain.DimensionPersonalityTraits,
			Category:  "helpful",
			Trait:     "Helpful and supportive",
			Terms:     []string{"help", "advice", "support", "recommend", "suggestion", "happy to"},
		},
		{
			Dimension: domain.DimensionPersonalityTraits,
			Category:  "analytical",
			Trait:     "Detail-oriented and analytical",
			Terms:     []string{"analysis", "detail", "research", "compare", "evidence", "in depth"},
		},
		{
			Dimension: domain.DimensionPersonalityTraits,
			Category:  "optimistic",
			Trait:     "Optimistic",
			Terms:     []string{"great", "awesome", "love", "amazing", "excellent", "fantastic"},
		},

		// communication_style
		{
			Dimension: domain.DimensionCommunicationStyle,
			Category:  "formal",
			Trait:     "Formal and structured",
			Terms:     []string{"however", "therefore", "furthermore", "moreover", "consequently"},
		},
		{
			Dimension: domain.DimensionCommunicationStyle,
			Category:  "casual",
			Trait:     "Casual and conversational",
			Terms:     []string{"lol", "omg", "tbh", "imo", "btw", "haha", "gonna"},
		},
		{
			Dimension: domain.DimensionCommunicationStyle,
			Category:  "direct",
			Trait:     "Direct and concise",
			Terms:     []string{"simply", "basically", "frankly", "honestly", "long story short"},
		},

		// values_beliefs
		{
			Dimension: domain.DimensionValuesBeliefs,
			Category:  "family",
			Trait:     "Values family",
			Terms:     []string{"family", "parents", "siblings", "relatives"},
		},
		{
			Dimension: domain.DimensionValuesBeliefs,
			Category:  "education",
			Trait:     "Values learning",
			Terms:     []string{"learning", "education", "knowledge", "degree", "studying"},
		},
		{
			Dimension: domain.DimensionValuesBeliefs,
			Category:  "health",
			Trait:     "Values health and wellness",
			Terms:     []string{"health", "fitness", "exercise", "wellness", "sleep"},
		},
		{
			Dimension: domain.DimensionValuesBeliefs,
			Category:  "environment",
			Trait:     "Environmentally conscious",
			Terms:     []string{"environment", "climate", "sustainability", "recycling"},
		},
		{
			Dimension: domain.DimensionValuesBeliefs,
			Category:  "fairness",
			Trait:     "Values fairness and rights",
			Terms:     []string{"justice", "equality", "rights", "unfair"},
		},

		// technology_usage
		{
			Dimension: domain.DimensionTechnologyUsage,
			Category:  "programming",
			Trait:     "Programmer / software developer",
			Terms:     []string{"programming", "python", "javascript", "coding", "developer", "github", "linux", "software"},
		},
		{
			Dimension: domain.DimensionTechnologyUsage,
			Category:  "hardware",
			Trait:     "PC hardware tinkerer",
			Terms:     []string{"gpu", "cpu", "mechanical keyboard", "monitor", "motherboard", "ssd", "overclock"},
		},
		{
			Dimension: domain.DimensionTechnologyUsage,
			Category:  "mobile",
			Trait:     "Mobile-first user",
			Terms:     []string{"iphone", "android", "smartphone", "ios", "mobile app"},
		},

		// social_behavior
		{
			Dimension: domain.DimensionSocialBehavior,
			Category:  "community_helper",
			Trait:     "Community-oriented helper",
			Terms:     []string{"help", "advice", "support", "welcome", "community"},
		},
		{
			Dimension: domain.DimensionSocialBehavior,
			Category:  "debater",
			Trait:     "Discussion-focused and opinionated",
			Terms:     []string{"disagree", "argument", "debate", "opinion", "unpopular"},
		},
		{
			Dimension: domain.DimensionSocialBehavior,
			Category:  "storyteller",
			Trait:     "Personal storyteller",
			Terms:     []string{"story", "happened to me", "experience", "years ago", "back when"},
		},

		// goals_aspirations
		{
			Dimension: domain.DimensionGoalsAspirations,
			Category:  "career_growth",
			Trait:     "Career advancement",
			Terms:     []string{"promotion", "interview", "resume", "new job", "professional growth"},
		},
		{
			Dimension: domain.DimensionGoalsAspirations,
			Category:  "education_goals",
			Trait:     "Further education",
			Terms:     []string{"degree", "course", "certification", "exam", "grad school"},
		},
		{
			Dimension: domain.DimensionGoalsAspirations,
			Category:  "financial",
			Trait:     "Financial security",
			Terms:     []string{"save money", "invest", "budget", "mortgage", "retirement", "debt free"},
		},
		{
			Dimension: domain.DimensionGoalsAspirations,
			Category:  "fitness_goals",
			Trait:     "Health and fitness goals",
			Terms:     []string{"lose weight", "gain muscle", "marathon", "training plan", "personal best"},
		},

		// challenges_pain_points
		{
			Dimension: domain.DimensionChallengesPainPoints,
			Category:  "work_stress",
			Trait:     "Work stress",
			Terms:     []string{"stress", "burnout", "overworked", "deadline", "pressure"},
		},
		{
			Dimension: domain.DimensionChallengesPainPoints,
			Category:  "financial_concerns",
			Trait:     "Financial concerns",
			Terms:     []string{"expensive", "afford", "broke", "bills", "paycheck"},
		},
		{
			Dimension: domain.DimensionChallengesPainPoints,
			Category:  "health_issues",
			Trait:     "Health struggles",
			Terms:     []string{"pain", "sick", "doctor", "insomnia", "chronic"},
		},
		{
			Dimension: domain.DimensionChallengesPainPoints,
			Category:  "social_anxiety",
			Trait:     "Social anxiety",
			Terms:     []string{"anxiety", "nervous", "awkward", "shy", "lonely"},
		},

		// lifestyle
		{
			Dimension: domain.DimensionLifestyle,
			Category:  "active",
			Trait:     "Active lifestyle",
			Terms:     []string{"gym", "workout", "morning run", "active", "sports"},
		},
		{
			Dimension: domain.DimensionLifestyle,
			Category:  "homebody",
			Trait:     "Homebody lifestyle",
			Terms:     []string{"staying in", "cozy", "quiet night", "at home", "indoors"},
		},
		{
			Dimension: domain.DimensionLifestyle,
			Category:  "social_butterfly",
			Trait:     "Social lifestyle",
			Terms:     []string{"friends", "party", "hangout", "meetup", "night out"},
		},
		{
			Dimension: domain.DimensionLifestyle,
			Category:  "traveler",
			Trait:     "Travel-centered lifestyle",
			Terms:     []string{"travel", "trip", "vacation", "flight", "backpacking"},
		},
	}
}
