package questionnaire

// Question bank derived from the Universal MVP Onboarding Template.

// Short covers all 18 sections with the essential questions of each.
var Short = []Section{
	{
		Number: 1,
		Title:  "Product/Service Fundamentals",
		Questions: []Question{
			QE("What exactly is your product or service? (Describe in one sentence)",
				"A mobile app that connects local dog walkers with busy pet owners",
				"An AI-powered code review tool that catches security vulnerabilities before deployment",
				"A subscription box service delivering curated snacks from around the world"),
			QE("What is the core functionality or primary feature?",
				"Real-time GPS tracking so pet owners can see their dog's walk route",
				"Automated scanning of pull requests with instant security alerts",
				"Monthly delivery of 15-20 unique snacks with tasting notes and origin stories"),
			QE("What makes this product/service unique or different from alternatives?",
				"We verify all walkers with background checks and require pet first-aid certification",
				"Our AI is trained on 10M+ security incidents, not just basic pattern matching",
				"Every box includes a cultural guide and video content from local producers"),
		},
	},
	{
		Number: 2,
		Title:  "Target Market & Customer",
		Questions: []Question{
			Q("Who is your primary target customer? (Be specific: demographics, role, industry)"),
			Q("What are their biggest frustrations related to your solution space?"),
			Q("What would make them switch from their current solution to yours?"),
		},
	},
	{
		Number: 3,
		Title:  "Problem & Solution Validation",
		Questions: []Question{
			Q("What specific problem are you solving? (One sentence)"),
			Q("How painful is this problem? (Scale: minor inconvenience to business-critical)"),
			Q("How does your solution address the problem better than alternatives?"),
		},
	},
	{
		Number: 4,
		Title:  "Value Proposition & Differentiation",
		Questions: []Question{
			Q("What is your core value proposition? (One sentence)"),
			Q("What are the top 3 benefits customers get from your product?"),
			Q("What is your unfair advantage or competitive moat?"),
		},
	},
	{
		Number: 5,
		Title:  "Business Model & Revenue",
		Questions: []Question{
			Q("How will you make money? (subscription, transaction, license, ads, etc.)"),
			Q("What will you charge? (specific pricing tiers)"),
			Q("What is the customer lifetime value (LTV) vs customer acquisition cost (CAC)?"),
		},
	},
	{
		Number: 6,
		Title:  "Technical Architecture & Development",
		Questions: []Question{
			Q("What technologies will you use for frontend? (React, Vue, native mobile, etc.)"),
			Q("What technologies for backend? (Node.js, Python, Ruby, etc.)"),
			Q("What database will you use? (PostgreSQL, MongoDB, etc.)"),
			Q("What is your MVP development timeline? (weeks/months)"),
		},
	},
	{
		Number: 7,
		Title:  "User Experience & Design",
		Questions: []Question{
			Q("What is the core user journey or workflow?"),
			Q("How many steps does it take for a user to get value?"),
			Q("What is your onboarding flow?"),
		},
	},
	{
		Number: 8,
		Title:  "Go-to-Market Strategy",
		Questions: []Question{
			Q("What is your launch date or target timeframe?"),
			Q("What are your top 3 customer acquisition channels?"),
			Q("Who are your early adopters or lighthouse customers?"),
		},
	},
	{
		Number: 9,
		Title:  "Marketing & Brand",
		Questions: []Question{
			Q("What is your company/product name? Why did you choose it?"),
			Q("What is your tagline or positioning statement?"),
			Q("What types of content will you create? (blog, video, podcast, etc.)"),
		},
	},
	{
		Number: 10,
		Title:  "Sales Strategy",
		Questions: []Question{
			Q("Will you use self-service, sales-assisted, or enterprise sales?"),
			Q("What is your sales cycle length?"),
			Q("What is your lead generation strategy?"),
		},
	},
	{
		Number: 11,
		Title:  "Operations & Infrastructure",
		Questions: []Question{
			Q("Where will your company be located? (physical office, remote, hybrid)"),
			Q("What channels will you offer for customer support? (email, chat, phone)"),
			Q("What is your target response time for support?"),
		},
	},
	{
		Number: 12,
		Title:  "Team & Organization",
		Questions: []Question{
			Q("Who are the founders? What are their backgrounds?"),
			Q("What are the first 3-5 hires you need to make?"),
			Q("When will you make these hires? (pre-launch, post-launch, post-funding)"),
		},
	},
	{
		Number: 13,
		Title:  "Financial Planning",
		Questions: []Question{
			Q("What are your initial startup costs?"),
			Q("How much capital do you need to reach MVP launch?"),
			Q("What are your revenue projections for years 1-3?"),
		},
	},
	{
		Number: 14,
		Title:  "Legal & Compliance",
		Questions: []Question{
			Q("What is your legal entity type? (LLC, C-Corp, etc.)"),
			Q("What regulations apply to your business? (GDPR, HIPAA, SOC 2, etc.)"),
		},
	},
	{
		Number: 15,
		Title:  "Risk Management",
		Questions: []Question{
			Q("What could cause the market to shrink or disappear?"),
			Q("What if customers don't adopt your product?"),
			Q("What is your plan for each major risk?"),
		},
	},
	{
		Number: 16,
		Title:  "Metrics & KPIs",
		Questions: []Question{
			Q("What is your customer acquisition cost (CAC)?"),
			Q("What is your churn rate target?"),
			Q("What are your daily/monthly active users (DAU/MAU) goals?"),
		},
	},
	{
		Number: 17,
		Title:  "Timeline & Milestones",
		Questions: []Question{
			Q("What is your MVP development start date?"),
			Q("What is your target MVP completion date?"),
			Q("When will you reach your first 10 customers? 100? 1,000?"),
		},
	},
	{
		Number: 18,
		Title:  "Long-term Vision & Scale",
		Questions: []Question{
			Q("What is your company's long-term vision (5-10 years)?"),
			Q("What is your ultimate exit strategy (IPO, acquisition, sustainable business)?"),
			Q("What is your revenue target for year 5?"),
		},
	},
}

// Essential is the 20-question cut used when a project only needs enough
// detail for an agency to scope and build the MVP.
var Essential = []Section{
	{
		Number: 1,
		Title:  "Product Core (5 questions)",
		Questions: []Question{
			QE("What exactly is your product or service? (Describe in one sentence)",
				"A mobile app that connects local dog walkers with busy pet owners",
				"An AI-powered code review tool that catches security vulnerabilities before deployment",
				"A subscription box service delivering curated snacks from around the world"),
			QE("What is the core functionality or primary feature?",
				"Real-time GPS tracking so pet owners can see their dog's walk route",
				"Automated scanning of pull requests with instant security alerts",
				"Monthly delivery of 15-20 unique snacks with tasting notes and origin stories"),
			QE("Who is your primary target customer? (Be specific: demographics, role, industry)",
				"Urban professionals aged 25-45 who work long hours and own dogs",
				"Engineering managers at Series A-C startups with 10-100 developers",
				"Food enthusiasts aged 30-55 with disposable income who love trying new things"),
			QE("What specific problem are you solving? (One sentence)",
				"Busy pet owners can't walk their dogs during work hours and don't trust random strangers",
				"Security vulnerabilities slip into production because manual code review misses subtle bugs",
				"People want to discover authentic international snacks but can't travel or find them locally"),
			QE("What is the core user journey or workflow?",
				"Pet owner books walker → Walker picks up dog → Real-time GPS tracking → Photo/report after walk → Payment processed",
				"Developer creates PR → AI scans code → Security issues flagged → Developer fixes → Approved for merge",
				"Subscribe → Receive box monthly → Scan QR code for info → Rate snacks → Get personalized next box"),
		},
	},
	{
		Number: 2,
		Title:  "Technical Specifications (5 questions)",
		Questions: []Question{
			QE("What technologies will you use for frontend? (React, Vue, native mobile, etc.)",
				"React Native for iOS and Android mobile apps",
				"Next.js 14 with TypeScript for web dashboard",
				"Vue.js 3 with Composition API for admin panel"),
			QE("What technologies for backend? (Node.js, Python, Ruby, etc.)",
				"Node.js with Express and TypeScript",
				"Python with FastAPI for ML model serving",
				"Ruby on Rails for rapid MVP development"),
			QE("What database will you use? (PostgreSQL, MongoDB, etc.)",
				"PostgreSQL for relational data with PostGIS extension for location features",
				"MongoDB for flexible document storage of code analysis results",
				"PostgreSQL with Redis for caching and real-time features"),
			QE("What is your MVP development timeline? (weeks/months)",
				"8 weeks to first working prototype, 12 weeks to public beta",
				"4 weeks for core features, 8 weeks for polish and testing",
				"6 weeks development, 2 weeks testing, 10 weeks total to launch"),
			QE("What regulations apply to your business? (GDPR, HIPAA, SOC 2, etc.)",
				"GDPR for EU users, background check compliance for walker verification",
				"SOC 2 Type II for enterprise customers, GDPR for code repository access",
				"GDPR for customer data, FDA food safety labeling requirements"),
		},
	},
	{
		Number: 3,
		Title:  "Features & Scope (4 questions)",
		Questions: []Question{
			QE("What makes this product/service unique or different from alternatives?",
				"We verify all walkers with background checks and require pet first-aid certification",
				"Our AI is trained on 10M+ security incidents, not just basic pattern matching",
				"Every box includes a cultural guide and video content from local producers"),
			QE("How many steps does it take for a user to get value?",
				"3 steps: Sign up → Book walker → Get walk report",
				"2 steps: Connect GitHub → See first security scan",
				"1 step: Subscribe and wait for first box delivery"),
			QE("What is your onboarding flow?",
				"Download app → Create profile → Add dog details → Verify ID → Book first walk",
				"Connect GitHub → Select repos to scan → Configure notification preferences → Done",
				"Enter shipping address → Select dietary preferences → Choose payment plan → Subscribe"),
			QE("What are the top 3 benefits customers get from your product?",
				"1) Peace of mind with certified walkers, 2) Real-time GPS tracking, 3) Happy, exercised dogs",
				"1) Catch vulnerabilities before production, 2) Save 4+ hours/week on code review, 3) Sleep better at night",
				"1) Discover authentic snacks, 2) Learn about different cultures, 3) Convenient monthly delivery"),
		},
	},
	{
		Number: 4,
		Title:  "Business Model (3 questions)",
		Questions: []Question{
			QE("How will you make money? (subscription, transaction, license, ads, etc.)",
				"Transaction fee: 20% commission on each walk booking",
				"Subscription: $49/month per team for unlimited scans",
				"Subscription: $29/month for monthly box delivery"),
			QE("What will you charge? (specific pricing tiers)",
				"$15-30 per 30-minute walk depending on area, we take $3-6 per walk",
				"Starter: $49/month (1-5 devs), Team: $199/month (6-25 devs), Enterprise: Custom pricing",
				"Monthly: $29, Quarterly: $79 ($26/month), Annual: $299 ($25/month)"),
			QE("What is your launch date or target timeframe?",
				"Private beta in 8 weeks (March 2024), public launch in 12 weeks (April 2024)",
				"Soft launch to 10 beta customers in 4 weeks, full launch in 8 weeks",
				"Launch in time for holiday season (October 2024), 6 months from now"),
		},
	},
	{
		Number: 5,
		Title:  "Success Metrics (3 questions)",
		Questions: []Question{
			QE("What is your target MVP completion date?",
				"March 15, 2024 for beta version with core booking and tracking features",
				"End of Q1 2024 with GitHub integration and basic scanning",
				"August 1, 2024 ready for first batch of 100 subscribers"),
			QE("What is your customer acquisition cost (CAC)?",
				"$30 per pet owner (Facebook/Instagram ads + referral program)",
				"$500 per team (content marketing + sales outreach)",
				"$15 per subscriber (influencer partnerships + Instagram ads)"),
			QE("What are your daily/monthly active users (DAU/MAU) goals?",
				"Year 1: 500 MAU, Year 2: 2,000 MAU with 30% DAU/MAU ratio",
				"Year 1: 100 teams (500 developers), Year 2: 500 teams (2,500 developers)",
				"Year 1: 1,000 active subscribers, Year 2: 5,000 active subscribers"),
		},
	},
}

// Full targets the complete 405-question template. The bank itself still
// carries the short set while the remaining questions are transcribed;
// TotalQuestions(full) already reports the template total.
var Full = Short
