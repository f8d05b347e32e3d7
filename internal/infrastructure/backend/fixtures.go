package backend

import "github.com/peterbuiltwl/portal/internal/core/domain"

var catalog = []domain.AppInfo{
	{ID: "blog-newsletter", Name: "Niche Blog/Newsletter Generator", Description: "Generate tailored blog and newsletter content for your audience", PricingModel: domain.SubscriptionPricing{MonthlyPriceCents: 1000}},
	{ID: "resume-optimizer", Name: "Resume Optimizer", Description: "Optimize your resume for specific job descriptions", PricingModel: domain.OneTimePricing{PriceCents: 1500}},
	{ID: "ad-copy", Name: "Ad Copy Generator", Description: "Create compelling ad copy for multiple platforms", PricingModel: domain.CreditsPricing{PricePerCreditCents: 500}},
	{ID: "blog-writer", Name: "Blog Writer", Description: "Generate full blog posts with SEO optimization", PricingModel: domain.SubscriptionPricing{MonthlyPriceCents: 2000}},
	{ID: "social-scheduler", Name: "Social Media Scheduler", Description: "Plan and generate social media content calendars", PricingModel: domain.SubscriptionPricing{MonthlyPriceCents: 2500}},
	{ID: "cover-letter", Name: "Cover Letter Builder", Description: "Create personalized cover letters for job applications", PricingModel: domain.OneTimePricing{PriceCents: 1000}},
	{ID: "faq-generator", Name: "FAQ Generator", Description: "Generate comprehensive FAQ sections for your products", PricingModel: domain.OneTimePricing{PriceCents: 800}},
	{ID: "product-description", Name: "Product Description AI", Description: "Write compelling product descriptions that convert", PricingModel: domain.CreditsPricing{PricePerCreditCents: 300}},
	{ID: "email-campaign", Name: "Email Campaign Writer", Description: "Design complete email marketing campaigns", PricingModel: domain.SubscriptionPricing{MonthlyPriceCents: 3000}},
	{ID: "presentation", Name: "Presentation Builder", Description: "Create presentation outlines and content", PricingModel: domain.OneTimePricing{PriceCents: 1200}},
	{ID: "podcast-script", Name: "Podcast Script Maker", Description: "Generate structured podcast scripts and show notes", PricingModel: domain.SubscriptionPricing{MonthlyPriceCents: 1800}},
}

var founder = domain.FounderProfile{
	Name:  "Peter Wentworth",
	Title: "Founder, ThunderValut & PETERBUILTWL",
	Bio: "Builder of AI-powered applications focused on practical automation for creators and small businesses. " +
		"Background in full-stack engineering, payments and distributed systems.",
	CoreSkills:       "AI product design, full-stack development, payment integration, system architecture, performance engineering",
	MissionStatement: "Ship transparent, production-ready tools that turn ideas into working software.",
}

var defaultGoals = []domain.ImplementationGoal{
	{
		GoalName: "Subscription Billing",
		UseCase:  "Charge recurring fees for premium AI applications",
		Example:  "Blog Generator monthly subscription through a hosted checkout session",
	},
	{
		GoalName: "Guided App Creation",
		UseCase:  "Let users describe a new AI application step by step",
		Example:  "Four-step wizard collecting basics, inputs, pricing and output format",
	},
	{
		GoalName: "Load Validation",
		UseCase:  "Prove the platform holds up before launch",
		Example:  "Stress test simulating 5,000 users across 150 applications and 177 workflow stages",
	},
}

var defaultStressTestMetrics = domain.StressTestMetrics{
	SimulatedUsers:       5000,
	ApplicationsTested:   150,
	WorkflowStagesTested: 177,
	PeakLoad:             5000,
}

var stressTestResult = domain.StressTestMetrics{
	SimulatedUsers:        5000,
	ApplicationsTested:    150,
	WorkflowStagesTested:  177,
	PeakLoad:              5000,
	ThroughputRps:         2450,
	LatencyMs:             420,
	AverageResponseTimeMs: 185,
	SuccessRate:           99,
	ErrorRate:             1,
	MemoryUsageMb:         1740,
	BottlenecksDetected:   2,
	CompletionTimeMs:      12600,
	ReportInsights: "The platform sustained 5,000 concurrent users with a 99% success rate. " +
		"Latency spikes concentrated in AI generation stages during the final ramp-up batch.",
	OptimizationRecommendations: "Cache generation prompts per application, batch payment session lookups, " +
		"and raise worker concurrency for output rendering.",
}
