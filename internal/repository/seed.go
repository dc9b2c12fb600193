package repository

import "github.com/spec-kit/garage-assistant/internal/domain"

func seedTickets() []domain.Ticket {
	return []domain.Ticket{
		{ID: "TKT-001", RaisedBy: "Muthamizh (Coach)", Category: "IT Support", Subject: "Laptop not connecting to WiFi", Description: "Unable to connect to office WiFi network. Getting authentication error.", Status: domain.TicketStatusOpen, Priority: domain.PriorityHigh, CreatedAt: "2025-12-05 10:30:00"},
		{ID: "TKT-002", RaisedBy: "Sarah (Parent)", Category: "Admission Query", Subject: "Admission process for Grade 5", Description: "Need information about admission requirements and deadlines for Grade 5.", Status: domain.TicketStatusInProgress, Priority: domain.PriorityMedium, CreatedAt: "2025-12-04 14:20:00"},
		{ID: "TKT-003", RaisedBy: "Praneeth (Player)", Category: "Training Schedule", Subject: "Schedule conflict with training", Description: "Training schedule conflicts with school exams. Request for rescheduling.", Status: domain.TicketStatusOpen, Priority: domain.PriorityHigh, CreatedAt: "2025-12-05 09:15:00"},
		{ID: "TKT-004", RaisedBy: "Prince (Coach)", Category: "HR Request", Subject: "Leave application for next week", Description: "Requesting leave from Dec 10-12 for personal reasons.", Status: domain.TicketStatusResolved, Priority: domain.PriorityLow, CreatedAt: "2025-12-03 11:00:00"},
		{ID: "TKT-005", RaisedBy: "Tamizh (Coach)", Category: "Facility Management", Subject: "Laptop battery not charging", Description: "Laptop battery is not charging properly and drains quickly.", Status: domain.TicketStatusOpen, Priority: domain.PriorityHigh, CreatedAt: "2025-12-05 12:10:00"},
		{ID: "TKT-006", RaisedBy: "Tamizh (Coach)", Category: "Software Access", Subject: "Cannot access MongoDB Atlas", Description: "Login showing unauthorized even after password reset.", Status: domain.TicketStatusInProgress, Priority: domain.PriorityMedium, CreatedAt: "2025-12-04 17:45:00"},
		{ID: "TKT-007", RaisedBy: "Keerthana (Coach)", Category: "Network Issue", Subject: "VPN connection drops frequently", Description: "VPN disconnects every 10 minutes, affecting remote work.", Status: domain.TicketStatusOpen, Priority: domain.PriorityHigh, CreatedAt: "2025-12-05 08:50:00"},
		{ID: "TKT-008", RaisedBy: "Priya (Coach)", Category: "Account Issue", Subject: "Unable to reset password", Description: "Password reset link not working, cannot access account.", Status: domain.TicketStatusResolved, Priority: domain.PriorityMedium, CreatedAt: "2025-12-03 15:30:00"},
		{ID: "TKT-009", RaisedBy: "Anitha (Parent)", Category: "Billing Query", Subject: "Clarification on invoice charges", Description: "Need explanation for additional charges on last invoice.", Status: domain.TicketStatusInProgress, Priority: domain.PriorityLow, CreatedAt: "2025-12-04 10:05:00"},
		{ID: "TKT-010", RaisedBy: "Karithikeyan (Player)", Category: "Equipment Request", Subject: "Request for new headphones", Description: "Current headphones are damaged, need replacement for training sessions.", Status: domain.TicketStatusOpen, Priority: domain.PriorityMedium, CreatedAt: "2025-12-05 13:25:00"},
	}
}

func seedActivities() []domain.Activity {
	return []domain.Activity{
		{ID: "ACT-001", Employee: "Priya", Task: "Implement user authentication module", Status: domain.ActivityStatusInProgress, Priority: domain.PriorityHigh, StartDate: "2025-12-01", DueDate: "2025-12-08", Progress: "70%"},
		{ID: "ACT-002", Employee: "Tamizh", Task: "Design new landing page", Status: domain.ActivityStatusToDo, Priority: domain.PriorityMedium, StartDate: "2025-12-06", DueDate: "2025-12-15", Progress: "0%"},
		{ID: "ACT-003", Employee: "Keerthana", Task: "Database optimization", Status: domain.ActivityStatusCompleted, Priority: domain.PriorityHigh, StartDate: "2025-11-28", DueDate: "2025-12-05", Progress: "100%"},
		{ID: "ACT-004", Employee: "Keerthana", Task: "Write API documentation", Status: domain.ActivityStatusInProgress, Priority: domain.PriorityMedium, StartDate: "2025-12-02", DueDate: "2025-12-10", Progress: "45%"},
		{ID: "ACT-005", Employee: "Priya", Task: "Security audit review", Status: domain.ActivityStatusToDo, Priority: domain.PriorityHigh, StartDate: "2025-12-07", DueDate: "2025-12-20", Progress: "0%"},
		{ID: "ACT-006", Employee: "Tamizh", Task: "Prepare training materials", Status: domain.ActivityStatusInProgress, Priority: domain.PriorityLow, StartDate: "2025-12-03", DueDate: "2025-12-18", Progress: "25%"},
		{ID: "ACT-007", Employee: "Keerthana", Task: "Set up CI/CD pipeline", Status: domain.ActivityStatusToDo, Priority: domain.PriorityHigh, StartDate: "2025-12-09", DueDate: "2025-12-22", Progress: "0%"},
		{ID: "ACT-008", Employee: "Priya", Task: "Client meeting preparation", Status: domain.ActivityStatusCompleted, Priority: domain.PriorityMedium, StartDate: "2025-11-30", DueDate: "2025-12-04", Progress: "100%"},
		{ID: "ACT-009", Employee: "Tamizh", Task: "Code review for new features", Status: domain.ActivityStatusInProgress, Priority: domain.PriorityHigh, StartDate: "2025-12-04", DueDate: "2025-12-12", Progress: "60%"},
	}
}

func seedCompany() domain.CompanyProfile {
	return domain.CompanyProfile{
		Name:         "Technology-Garage",
		Founded:      "2023",
		Headquarters: "Dallas, Texas, USA",
		Description:  "Technology-Garage is a revolutionary gamified learning and coaching platform that transforms technology education into an engaging, game-like experience. We coach aspiring tech professionals and students through interactive challenges, level-based progression, and real-world project simulations.",
		Services: []string{
			"Gamified Coding Bootcamps",
			"Interactive Tech Skill Challenges",
			"AI-Powered Personalized Learning Paths",
			"Level-Based Technology Certification Programs",
			"Real-World Project Simulations",
			"One-on-One Tech Coaching",
			"Team-Based Hackathon Training",
			"Achievement & Badge System for Skill Mastery",
			"Career Transition Coaching in Tech",
			"Competitive Programming Leagues",
		},
		TeamSize:         "50+ coaches",
		IndustriesServed: []string{"Education Technology", "Professional Development", "Career Coaching", "Tech Training", "E-Learning"},
		Vision:           "Making technology mastery accessible and fun through gamified learning experiences",
		Mission:          "To coach and empower the next generation of tech professionals through engaging, game-based learning that turns skill-building into an adventure",
		Values:           []string{"Playful Learning", "Continuous Growth", "Community Support", "Achievement Recognition", "Real-World Impact"},
		Clients:          []string{"Academy", "University", "Institute", "League", "Training"},
		LearningApproach: domain.LearningApproach{
			GamificationElements: []string{"Experience Points (XP)", "Level Progression", "Skill Badges", "Leaderboards", "Daily Quests", "Challenges"},
			CoachingStyle:        "Personalized Coaching with AI-assisted progress tracking",
			SkillTracks:          []string{"Full-Stack Development", "Data Science & AI", "Cloud Architecture", "Robotics", "Embedded Systems", "VR"},
			SuccessMetrics:       "1000+ students coached, 100% student satisfaction",
		},
	}
}

func p(dimension, value string) domain.PriceField {
	return domain.PriceField{Dimension: dimension, Value: value}
}

func seedCostSheets() []domain.ProviderCostSheet {
	return []domain.ProviderCostSheet{
		{
			Provider:             "AWS",
			TotalMonthlyEstimate: "$200-300",
			Services: []domain.ServiceLineItem{
				{Name: "EC2 t3.medium", Category: "Compute", Prices: []domain.PriceField{p("price_per_hour", "$0.0416"), p("price_per_month", "$30.40")}, Specs: "2 vCPU, 4 GB RAM", Region: "us-east-1"},
				{Name: "RDS MySQL db.t3.small", Category: "Database", Prices: []domain.PriceField{p("price_per_hour", "$0.034"), p("price_per_month", "$24.82")}, Specs: "2 vCPU, 2 GB RAM", Region: "us-east-1"},
				{Name: "S3 Standard Storage", Category: "Storage", Prices: []domain.PriceField{p("price_per_gb_month", "$0.023"), p("price_for_100gb", "$2.30")}, Specs: "First 50 TB / month", Region: "us-east-1"},
				{Name: "Lambda", Category: "Serverless", Prices: []domain.PriceField{p("price_per_million_requests", "$0.20"), p("price_per_gb_second", "$0.0000166667")}, Specs: "First 1M requests free", Region: "us-east-1"},
				{Name: "CloudFront", Category: "CDN", Prices: []domain.PriceField{p("price_per_gb", "$0.085"), p("price_for_1tb", "$87.00")}, Specs: "Data Transfer Out", Region: "Global"},
				{Name: "Elasticache Redis", Category: "Cache", Prices: []domain.PriceField{p("price_per_month", "$18.00")}, Specs: "cache.t2.micro", Region: "us-east-1"},
				{Name: "Route 53", Category: "DNS", Prices: []domain.PriceField{p("price_per_month", "$0.50")}, Specs: "Hosted zone", Region: "Global"},
				{Name: "Elastic Load Balancer", Category: "Networking", Prices: []domain.PriceField{p("price_per_hour", "$0.0225"), p("price_per_gb_data_processed", "$0.008")}, Specs: "Classic Load Balancer", Region: "us-east-1"},
				{Name: "EBS General Purpose SSD", Category: "Storage", Prices: []domain.PriceField{p("price_per_gb_month", "$0.10"), p("price_for_100gb", "$10.00")}, Specs: "gp2 volume", Region: "us-east-1"},
			},
		},
		{
			Provider:             "Azure",
			TotalMonthlyEstimate: "$230-320",
			Services: []domain.ServiceLineItem{
				{Name: "Virtual Machine B2s", Category: "Compute", Prices: []domain.PriceField{p("price_per_hour", "$0.0416"), p("price_per_month", "$30.37")}, Specs: "2 vCPU, 4 GB RAM", Region: "East US"},
				{Name: "Azure SQL Database", Category: "Database", Prices: []domain.PriceField{p("price_per_month", "$54.77")}, Specs: "Standard S1: 20 DTUs", Region: "East US"},
				{Name: "Blob Storage", Category: "Storage", Prices: []domain.PriceField{p("price_per_gb_month", "$0.018"), p("price_for_100gb", "$1.80")}, Specs: "Hot tier, LRS", Region: "East US"},
				{Name: "Functions", Category: "Serverless", Prices: []domain.PriceField{p("price_per_million_executions", "$0.20")}, Specs: "First 1M free", Region: "East US"},
				{Name: "CDN Standard", Category: "CDN", Prices: []domain.PriceField{p("price_per_gb", "$0.081"), p("price_for_1tb", "$83.00")}, Specs: "Standard tier", Region: "Global"},
				{Name: "Redis Cache C1", Category: "Cache", Prices: []domain.PriceField{p("price_per_month", "$16.00")}, Specs: "250 MB", Region: "East US"},
				{Name: "DNS Zone", Category: "DNS", Prices: []domain.PriceField{p("price_per_month", "$0.50")}, Specs: "First 25 zones", Region: "Global"},
				{Name: "Load Balancer Basic", Category: "Networking", Prices: []domain.PriceField{p("price_per_hour", "$0.025"), p("price_per_gb_data_processed", "$0.008")}, Specs: "Basic Load Balancer", Region: "East US"},
				{Name: "Managed Disks Standard SSD", Category: "Storage", Prices: []domain.PriceField{p("price_per_gb_month", "$0.10"), p("price_for_100gb", "$10.00")}, Specs: "Standard SSD", Region: "East US"},
			},
		},
		{
			Provider:             "Google Cloud",
			TotalMonthlyEstimate: "$210-300",
			Services: []domain.ServiceLineItem{
				{Name: "Compute Engine n1-standard-1", Category: "Compute", Prices: []domain.PriceField{p("price_per_hour", "$0.0475"), p("price_per_month", "$34.67")}, Specs: "1 vCPU, 3.75 GB RAM", Region: "us-central1"},
				{Name: "Cloud SQL MySQL", Category: "Database", Prices: []domain.PriceField{p("price_per_month", "$46.55")}, Specs: "db-n1-standard-1", Region: "us-central1"},
				{Name: "Cloud Storage Standard", Category: "Storage", Prices: []domain.PriceField{p("price_per_gb_month", "$0.020"), p("price_for_100gb", "$2.00")}, Specs: "Standard storage", Region: "us-central1"},
				{Name: "Cloud Functions", Category: "Serverless", Prices: []domain.PriceField{p("price_per_million_invocations", "$0.40")}, Specs: "First 2M free", Region: "us-central1"},
				{Name: "Cloud CDN", Category: "CDN", Prices: []domain.PriceField{p("price_per_gb", "$0.08"), p("price_for_1tb", "$82.00")}, Specs: "Cache egress", Region: "Global"},
				{Name: "Memorystore Redis Basic", Category: "Cache", Prices: []domain.PriceField{p("price_per_month", "$12.50")}, Specs: "1 GB", Region: "us-central1"},
				{Name: "Cloud DNS", Category: "DNS", Prices: []domain.PriceField{p("price_per_month", "$0.50")}, Specs: "Hosted zone", Region: "Global"},
				{Name: "Load Balancing", Category: "Networking", Prices: []domain.PriceField{p("price_per_hour", "$0.025"), p("price_per_gb_data_processed", "$0.008")}, Specs: "Global Load Balancer", Region: "us-central1"},
				{Name: "Persistent Disk Standard", Category: "Storage", Prices: []domain.PriceField{p("price_per_gb_month", "$0.04"), p("price_for_100gb", "$4.00")}, Specs: "Standard PD", Region: "us-central1"},
			},
		},
		{
			Provider:             "Firebase",
			TotalMonthlyEstimate: "$25-150 (based on usage)",
			Services: []domain.ServiceLineItem{
				{Name: "Firestore", Category: "Database", Prices: []domain.PriceField{p("price_per_read", "$0.06 per 100K"), p("price_per_write", "$0.18 per 100K"), p("price_per_gb_storage", "$0.18/GB")}, Specs: "NoSQL database"},
				{Name: "Firebase Hosting", Category: "Hosting", Prices: []domain.PriceField{p("price_per_gb", "$0.15"), p("price_for_10gb", "$1.50")}, Specs: "10 GB free per month", Region: "Global"},
				{Name: "Cloud Functions", Category: "Serverless", Prices: []domain.PriceField{p("price_per_million_invocations", "$0.40")}, Specs: "First 2M free", Region: "us-central1"},
				{Name: "Firebase Storage", Category: "Storage", Prices: []domain.PriceField{p("price_per_gb_month", "$0.026"), p("price_for_100gb", "$2.60")}, Specs: "5 GB free", Region: "us-central1"},
				{Name: "Firebase Authentication", Category: "Authentication", Prices: []domain.PriceField{p("price", "Free")}, Specs: "Unlimited users", Region: "Global"},
				{Name: "Firebase Realtime Database", Category: "Database", Prices: []domain.PriceField{p("price_per_gb_month", "$5.00")}, Specs: "1 GB free", Region: "us-central1"},
				{Name: "Firebase Cloud Messaging", Category: "Messaging", Prices: []domain.PriceField{p("price", "Free")}, Specs: "Unlimited messages", Region: "Global"},
				{Name: "Firebase Remote Config", Category: "Configuration", Prices: []domain.PriceField{p("price", "Free")}, Specs: "Unlimited parameters", Region: "Global"},
			},
		},
		{
			Provider:             "DigitalOcean",
			TotalMonthlyEstimate: "$50-150",
			Services: []domain.ServiceLineItem{
				{Name: "Droplet Basic", Category: "Compute", Prices: []domain.PriceField{p("price_per_month", "$18.00")}, Specs: "2 GB RAM, 1 vCPU, 50 GB SSD", Region: "NYC1"},
				{Name: "Managed Database MySQL", Category: "Database", Prices: []domain.PriceField{p("price_per_month", "$15.00")}, Specs: "1 GB RAM, 1 vCPU, 10 GB disk", Region: "NYC1"},
				{Name: "Spaces Object Storage", Category: "Storage", Prices: []domain.PriceField{p("price_per_month", "$5.00")}, Specs: "250 GB storage, 1 TB transfer", Region: "NYC3"},
				{Name: "Load Balancer", Category: "Networking", Prices: []domain.PriceField{p("price_per_month", "$12.00")}, Specs: "Load balancing", Region: "NYC1"},
				{Name: "CDN", Category: "CDN", Prices: []domain.PriceField{p("price_per_gb", "$0.01"), p("price_for_1tb", "$10.00")}, Specs: "Beyond 1 TB free", Region: "Global"},
			},
		},
		{
			Provider:             "Vercel",
			TotalMonthlyEstimate: "$20-80",
			Services: []domain.ServiceLineItem{
				{Name: "Pro Plan", Category: "Hosting", Prices: []domain.PriceField{p("price_per_month", "$20.00")}, Specs: "Unlimited websites, 100 GB bandwidth", Region: "Global"},
				{Name: "Serverless Functions", Category: "Serverless", Prices: []domain.PriceField{p("price", "Included in Pro")}, Specs: "1000 GB-hours", Region: "Global"},
				{Name: "Edge Network", Category: "CDN", Prices: []domain.PriceField{p("price", "Included")}, Specs: "Global CDN", Region: "Global"},
			},
		},
		{
			Provider:             "Heroku",
			TotalMonthlyEstimate: "$20-50",
			Services: []domain.ServiceLineItem{
				{Name: "Eco Dyno", Category: "Compute", Prices: []domain.PriceField{p("price_per_month", "$5.00")}, Specs: "512 MB RAM, sleeps after 30 min", Region: "US"},
				{Name: "Basic Dyno", Category: "Compute", Prices: []domain.PriceField{p("price_per_month", "$7.00")}, Specs: "512 MB RAM, never sleeps", Region: "US"},
				{Name: "Postgres Mini", Category: "Database", Prices: []domain.PriceField{p("price_per_month", "$5.00")}, Specs: "1 GB storage, 20 connections", Region: "US"},
				{Name: "Redis Mini", Category: "Cache", Prices: []domain.PriceField{p("price_per_month", "$3.00")}, Specs: "25 MB RAM", Region: "US"},
			},
		},
	}
}
